package domain

import "sync"

// Credential authenticates against the remote repository host
type Credential struct {
	Token    string
	Username string
}

// IsZero reports whether no credential was provided
func (c Credential) IsZero() bool {
	return c.Username == "" && c.Token == ""
}

// String never reveals the token
func (c Credential) String() string {
	if c.Token == "" {
		return c.Username
	}
	return c.Username + ":****"
}

// AccountLogin is what the user typed to log into the translation service.
// It is exchanged for a repository Credential.
type AccountLogin struct {
	Password string
	Username string
}

// IsZero reports whether the login is incomplete
func (a AccountLogin) IsZero() bool {
	return a.Username == "" || a.Password == ""
}

// CredentialStore caches the credential for the lifetime of a session.
// A credential is only served from cache after it was marked valid by a
// successful fetch or push.
type CredentialStore struct {
	credential Credential
	mu         sync.Mutex
	valid      bool
}

// NewCredentialStore creates an empty store
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Put replaces the cached credential. It stays unvalidated until MarkValid.
func (s *CredentialStore) Put(c Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = c
	s.valid = false
}

// MarkValid flags the current credential as accepted by the remote
func (s *CredentialStore) MarkValid() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.credential.IsZero() {
		s.valid = true
	}
}

// Cached returns the credential if it was validated
func (s *CredentialStore) Cached() (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.valid {
		return Credential{}, false
	}
	return s.credential, true
}

// Pending returns the current credential whether or not it was validated
func (s *CredentialStore) Pending() (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, !s.credential.IsZero()
}
