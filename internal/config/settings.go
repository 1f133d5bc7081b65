package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults for optional settings
const (
	DefaultCredentialTimeoutSeconds = 30
	DefaultFetchTimeoutSeconds      = 300
	DefaultLedgerTimeoutSeconds     = 15
	DefaultMaxAuthAttempts          = 2
	DefaultMergeMessage             = "Merge remote changes"
	DefaultPushTimeoutSeconds       = 300
)

// Settings represents the structure of ~/.setsync/settings.json
type Settings struct {
	AccountUsername          string `json:"account_username,omitempty"`
	AuthorEmail              string `json:"author_email,omitempty"`
	AuthorName               string `json:"author_name,omitempty"`
	CredentialEndpoint       string `json:"credential_endpoint,omitempty"`
	CredentialTimeoutSeconds *int   `json:"credential_timeout_seconds,omitempty"`
	Debug                    *bool  `json:"debug,omitempty"`
	FetchTimeoutSeconds      *int   `json:"fetch_timeout_seconds,omitempty"`
	LedgerEndpoint           string `json:"ledger_endpoint,omitempty"`
	LedgerInsecureSkipVerify *bool  `json:"ledger_insecure_skip_verify,omitempty"`
	LedgerTimeoutSeconds     *int   `json:"ledger_timeout_seconds,omitempty"`
	MaxAuthAttempts          *int   `json:"max_auth_attempts,omitempty"`
	MaxLogFiles              *int   `json:"max_log_files,omitempty"`
	MergeMessage             string `json:"merge_message,omitempty"`
	NotifySound              *bool  `json:"notify_sound,omitempty"`
	PushTimeoutSeconds       *int   `json:"push_timeout_seconds,omitempty"`
	RemoteName               string `json:"remote_name,omitempty"`
	RemoteURL                string `json:"remote_url,omitempty"`
	Role                     string `json:"role,omitempty"`
	SSHKnownHosts            string `json:"ssh_known_hosts,omitempty"`
}

// Timeouts groups the per-operation limits of a sync cycle
type Timeouts struct {
	Credential time.Duration
	Fetch      time.Duration
	Ledger     time.Duration
	Push       time.Duration
}

// Timeouts resolves configured timeouts, falling back to defaults.
// A nil receiver yields the defaults.
func (s *Settings) Timeouts() Timeouts {
	if s == nil {
		s = &Settings{}
	}
	return Timeouts{
		Credential: seconds(s.CredentialTimeoutSeconds, DefaultCredentialTimeoutSeconds),
		Fetch:      seconds(s.FetchTimeoutSeconds, DefaultFetchTimeoutSeconds),
		Ledger:     seconds(s.LedgerTimeoutSeconds, DefaultLedgerTimeoutSeconds),
		Push:       seconds(s.PushTimeoutSeconds, DefaultPushTimeoutSeconds),
	}
}

// AuthAttempts returns max_auth_attempts, at least 1
func (s *Settings) AuthAttempts() int {
	if s == nil || s.MaxAuthAttempts == nil {
		return DefaultMaxAuthAttempts
	}
	if *s.MaxAuthAttempts < 1 {
		return 1
	}
	return *s.MaxAuthAttempts
}

// MergeCommitMessage returns merge_message or the default
func (s *Settings) MergeCommitMessage() string {
	if s == nil || s.MergeMessage == "" {
		return DefaultMergeMessage
	}
	return s.MergeMessage
}

// SoundEnabled reports whether conflict notices should play a sound
func (s *Settings) SoundEnabled() bool {
	if s == nil || s.NotifySound == nil {
		return true
	}
	return *s.NotifySound
}

func seconds(v *int, def int) time.Duration {
	if v == nil || *v <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(*v) * time.Second
}

// LoadSettings loads settings from $SETSYNC_HOME/settings.json (or ~/.setsync/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.SSHKnownHosts != "" {
		settings.SSHKnownHosts = ExpandPath(settings.SSHKnownHosts)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SETSYNC_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
