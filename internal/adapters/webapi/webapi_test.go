package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaan-tools/setsync/internal/domain"
)

func TestCredentialExchanger_Exchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "corrector01", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"github_token":"ghp_abc","github_username":"set-bot"}`))
	}))
	defer srv.Close()

	ex := NewCredentialExchanger(srv.URL, ClientOptions{Timeout: time.Second})
	cred, err := ex.Exchange(context.Background(), domain.AccountLogin{Username: "corrector01", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, domain.Credential{Username: "set-bot", Token: "ghp_abc"}, cred)
}

func TestCredentialExchanger_RejectsIncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"github_token":""}`))
	}))
	defer srv.Close()

	ex := NewCredentialExchanger(srv.URL, ClientOptions{Timeout: time.Second})
	_, err := ex.Exchange(context.Background(), domain.AccountLogin{Username: "u", Password: "p"})

	assert.Error(t, err)
}

func TestCredentialExchanger_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad login", http.StatusUnauthorized)
	}))
	defer srv.Close()

	ex := NewCredentialExchanger(srv.URL, ClientOptions{Timeout: time.Second})
	_, err := ex.Exchange(context.Background(), domain.AccountLogin{Username: "u", Password: "p"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Equal(t, "bad login", statusErr.Body)
}

func TestCredentialExchanger_NoLogin(t *testing.T) {
	ex := NewCredentialExchanger("http://127.0.0.1:1", ClientOptions{})
	_, err := ex.Exchange(context.Background(), domain.AccountLogin{})
	assert.ErrorIs(t, err, domain.ErrNoAccountLogin)
}

func TestCredentialExchanger_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ex := NewCredentialExchanger(srv.URL, ClientOptions{Timeout: 50 * time.Millisecond})
	_, err := ex.Exchange(context.Background(), domain.AccountLogin{Username: "u", Password: "p"})

	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestCommitLedger_Post(t *testing.T) {
	got := make(chan [2]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got <- [2]string{r.PostForm.Get("commit_no"), r.PostForm.Get("email")}
	}))
	defer srv.Close()

	ledger := NewCommitLedger(srv.URL, ClientOptions{Timeout: time.Second})
	require.NoError(t, ledger.Post(context.Background(), "abc123", "corrector01@example.org"))

	assert.Equal(t, [2]string{"abc123", "corrector01@example.org"}, <-got)
}

func TestCommitLedger_TLSVerification(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	strict := NewCommitLedger(srv.URL, ClientOptions{Timeout: time.Second})
	assert.Error(t, strict.Post(context.Background(), "abc", "e"), "self-signed certificate is refused by default")

	lax := NewCommitLedger(srv.URL, ClientOptions{Timeout: time.Second, InsecureSkipVerify: true})
	assert.NoError(t, lax.Post(context.Background(), "abc", "e"))
}

func TestCommitLedger_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ledger := NewCommitLedger("http://127.0.0.1:1", ClientOptions{Timeout: time.Second})
	err := ledger.Post(ctx, "abc", "e")

	assert.ErrorIs(t, err, domain.ErrCancelled)
}
