package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/ports"
)

// Prompter implements ports.CredentialPrompter with huh forms on the terminal
type Prompter struct {
	interactive bool
}

// Verify interface compliance at compile time
var _ ports.CredentialPrompter = (*Prompter)(nil)

// NewPrompter creates a new Prompter. A non-interactive prompter never
// blocks: prompts are cancelled and warnings are only logged.
func NewPrompter(interactive bool) *Prompter {
	return &Prompter{interactive: interactive}
}

// PromptCredential asks for the git hosting username and password
func (p *Prompter) PromptCredential(ctx context.Context) (domain.Credential, error) {
	if !p.interactive {
		logging.Logger.Warn("Credential prompt skipped, no terminal")
		return domain.Credential{}, fmt.Errorf("%w: no terminal to prompt on", domain.ErrAuthCancelled)
	}

	var username, password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(required("password")),
		).Title("Github Login"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			logging.Logger.Info("Credential prompt cancelled")
			return domain.Credential{}, domain.ErrAuthCancelled
		}
		return domain.Credential{}, fmt.Errorf("credential prompt failed: %w", err)
	}

	return domain.Credential{Token: password, Username: strings.TrimSpace(username)}, nil
}

// Warn shows a message the user acknowledges before continuing
func (p *Prompter) Warn(ctx context.Context, title, message string) error {
	logging.Logger.Warn(message, "title", title)
	if !p.interactive {
		return nil
	}
	return acknowledge(ctx, title, message)
}

func acknowledge(ctx context.Context, title, message string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(message).
				Next(true).
				NextLabel("OK"),
		),
	)
	if err := form.RunWithContext(ctx); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	return nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", field)
		}
		return nil
	}
}
