package domain

import (
	"context"

	repdom "incstats/internal/services/report/domain"
)

// WorkflowPort is the chat-facing surface of the intake workflow.
// The transport adapter calls it; it never imports the transport
type WorkflowPort interface {
	// HandleMessage turns a channel message into a category prompt.
	// Thread replies yield a nil prompt: they never become reports
	HandleMessage(ctx context.Context, msg Message) (*Prompt, error)

	// HandleOptions refreshes the option list for an open dropdown,
	// filtered case-insensitively by the typed substring
	HandleOptions(ctx context.Context, actionID, filter string) ([]string, error)

	// HandleSelection resolves a pending report: decode the action id,
	// then file the incident under the chosen category
	HandleSelection(ctx context.Context, sel Selection) error

	// AddCategory handles the category slash command
	AddCategory(ctx context.Context, raw string) (AddCategoryResult, error)

	// Stats handles the reporting slash command. The first integer in
	// rawText is the day window; none means everything
	Stats(ctx context.Context, rawText string) (repdom.Overview, error)
}
