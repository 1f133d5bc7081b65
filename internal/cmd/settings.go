package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/udaan-tools/setsync/internal/config"
	"github.com/udaan-tools/setsync/internal/domain"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show the settings currently in effect"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure setsync.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsShowCmd prints the loaded settings with defaults resolved
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	data, err := json.MarshalIndent(effectiveSettings(cli.settings), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// effectiveSettings fills unset optional fields with their defaults
func effectiveSettings(s *config.Settings) map[string]any {
	if s == nil {
		s = &config.Settings{}
	}
	timeouts := s.Timeouts()
	remoteName := s.RemoteName
	if remoteName == "" {
		remoteName = domain.DefaultRemoteName
	}
	return map[string]any{
		"account_username":            s.AccountUsername,
		"author_email":                s.AuthorEmail,
		"author_name":                 s.AuthorName,
		"credential_endpoint":         s.CredentialEndpoint,
		"credential_timeout_seconds":  int(timeouts.Credential.Seconds()),
		"fetch_timeout_seconds":       int(timeouts.Fetch.Seconds()),
		"ledger_endpoint":             s.LedgerEndpoint,
		"ledger_insecure_skip_verify": s.LedgerInsecureSkipVerify != nil && *s.LedgerInsecureSkipVerify,
		"ledger_timeout_seconds":      int(timeouts.Ledger.Seconds()),
		"max_auth_attempts":           s.AuthAttempts(),
		"merge_message":               s.MergeCommitMessage(),
		"notify_sound":                s.SoundEnabled(),
		"push_timeout_seconds":        int(timeouts.Push.Seconds()),
		"remote_name":                 remoteName,
		"remote_url":                  s.RemoteURL,
		"role":                        s.Role,
		"settings_file":               config.GetSettingsPath(),
		"ssh_known_hosts":             s.SSHKnownHosts,
	}
}
