package ports

import (
	"context"

	"github.com/udaan-tools/setsync/internal/domain"
)

// CredentialExchanger trades an account login for a repository credential
type CredentialExchanger interface {
	Exchange(ctx context.Context, login domain.AccountLogin) (domain.Credential, error)
}

// CredentialPrompter asks the user directly
type CredentialPrompter interface {
	// PromptCredential returns domain.ErrAuthCancelled when the user cancels
	PromptCredential(ctx context.Context) (domain.Credential, error)
	// Warn shows a message the user must acknowledge before the next prompt
	Warn(ctx context.Context, title, message string) error
}
