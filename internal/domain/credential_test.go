package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialStore_OnlyServesValidatedCredential(t *testing.T) {
	store := NewCredentialStore()

	_, ok := store.Cached()
	assert.False(t, ok, "empty store has nothing cached")

	store.Put(Credential{Username: "reader", Token: "t0k"})
	_, ok = store.Cached()
	assert.False(t, ok, "unvalidated credential is not served")

	pending, ok := store.Pending()
	assert.True(t, ok)
	assert.Equal(t, "reader", pending.Username)

	store.MarkValid()
	cached, ok := store.Cached()
	assert.True(t, ok)
	assert.Equal(t, Credential{Username: "reader", Token: "t0k"}, cached)
}

func TestCredentialStore_PutResetsValidity(t *testing.T) {
	store := NewCredentialStore()
	store.Put(Credential{Username: "a", Token: "1"})
	store.MarkValid()

	store.Put(Credential{Username: "b", Token: "2"})

	_, ok := store.Cached()
	assert.False(t, ok)
}

func TestCredentialStore_MarkValidOnEmptyIsNoop(t *testing.T) {
	store := NewCredentialStore()
	store.MarkValid()

	_, ok := store.Cached()
	assert.False(t, ok)
}

func TestCredentialStore_ConcurrentAccess(t *testing.T) {
	store := NewCredentialStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Put(Credential{Username: "u", Token: "t"})
			store.MarkValid()
		}()
		go func() {
			defer wg.Done()
			store.Cached()
		}()
	}
	wg.Wait()

	cached, ok := store.Cached()
	assert.True(t, ok)
	assert.Equal(t, "u", cached.Username)
}

func TestCredential_StringHidesToken(t *testing.T) {
	c := Credential{Username: "reader", Token: "secret"}
	assert.NotContains(t, c.String(), "secret")
}

func TestRole_Directories(t *testing.T) {
	assert.Equal(t, VerifierOutputDir, RoleCorrector.ProtectedDir())
	assert.Equal(t, CorrectorOutputDir, RoleVerifier.ProtectedDir())
	assert.Equal(t, CorrectorOutputDir, RoleCorrector.OutputDir())

	role, err := ParseRole("verifier")
	assert.NoError(t, err)
	assert.Equal(t, RoleVerifier, role)

	_, err = ParseRole("reviewer")
	assert.Error(t, err)

	p := Project{Path: "/sets/book", Role: RoleVerifier}
	assert.Equal(t, "/sets/book/CorrectorOutput", p.SyncDirectory())
	assert.Empty(t, Project{Path: "/sets/book"}.SyncDirectory())
}
