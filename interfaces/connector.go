package interfaces

import (
	"github.com/jeff-nasseri/mailharvest/internal/models"
)

// EmailConnector owns one mail-server connection: Disconnected →
// Connect() → Connected → Disconnect() → Disconnected. Disconnect is
// best-effort and safe to call on any state.
type EmailConnector interface {
	Connect() error
	FetchEmails(opts FetchOptions) ([]models.EmailRecord, error)
	Disconnect()
}

type FetchOptions struct {
	// Limit keeps only the most recent N messages when positive.
	Limit int
	// PlainTextOnly skips HTML bodies during content accumulation.
	PlainTextOnly bool
	// Exclusions drops messages whose decoded sender matches.
	Exclusions *models.ExclusionList
}
