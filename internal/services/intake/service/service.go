// Package service implements the intake workflow state machine.
// A report moves Reported -> AwaitingSelection -> Resolved; the middle state
// has no persisted representation, it rides inside the encoded action id
package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"incstats/internal/core/correlate"
	"incstats/internal/platform/logger"
	catdom "incstats/internal/services/categories/domain"
	incdom "incstats/internal/services/incidents/domain"
	"incstats/internal/services/intake/domain"
	repdom "incstats/internal/services/report/domain"
)

var firstInt = regexp.MustCompile(`\d+`)

// Service implements domain.WorkflowPort
type Service struct {
	categories catdom.ReaderPort
	catWriter  catdom.WriterPort
	incidents  incdom.UpserterPort
	reports    repdom.QueryPort
	log        *logger.Logger
}

// New constructs a new intake service
func New(
	categories catdom.ReaderPort,
	catWriter catdom.WriterPort,
	incidents incdom.UpserterPort,
	reports repdom.QueryPort,
) *Service {
	return &Service{
		categories: categories,
		catWriter:  catWriter,
		incidents:  incidents,
		reports:    reports,
		log:        logger.Named("intake"),
	}
}

// HandleMessage implements domain.WorkflowPort
func (s *Service) HandleMessage(ctx context.Context, msg domain.Message) (*domain.Prompt, error) {
	if msg.ThreadReply {
		return nil, nil
	}
	if strings.TrimSpace(msg.Text) == "" {
		return nil, nil
	}

	// a broken category store must not block the interaction: prompt with an
	// empty option set and let the dropdown refresh try again
	names, err := s.categories.Names(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("category list unavailable, prompting with empty options")
		names = nil
	}

	return &domain.Prompt{
		ActionID: correlate.ActionID(msg.Text),
		Options:  names,
	}, nil
}

// HandleOptions implements domain.WorkflowPort. The action id is not needed
// here; the prompt's token already pins the report text
func (s *Service) HandleOptions(ctx context.Context, _ string, filter string) ([]string, error) {
	names, err := s.categories.Filter(ctx, filter)
	if err != nil {
		s.log.Warn().Err(err).Msg("category filter unavailable, returning empty options")
		return nil, nil
	}
	return names, nil
}

// HandleSelection implements domain.WorkflowPort. A malformed action id means
// the report text is unrecoverable: surface the codec error, write nothing
func (s *Service) HandleSelection(ctx context.Context, sel domain.Selection) error {
	text, err := correlate.TextFromActionID(sel.ActionID)
	if err != nil {
		return err
	}
	return s.incidents.Upsert(ctx, sel.Reporter, text, sel.Choice)
}

// AddCategory implements domain.WorkflowPort
func (s *Service) AddCategory(ctx context.Context, raw string) (domain.AddCategoryResult, error) {
	name := strings.TrimSpace(raw)
	created, err := s.catWriter.Add(ctx, name)
	if err != nil {
		return domain.AddCategoryResult{}, err
	}
	return domain.AddCategoryResult{Name: name, Created: created}, nil
}

// Stats implements domain.WorkflowPort
func (s *Service) Stats(ctx context.Context, rawText string) (repdom.Overview, error) {
	return s.reports.Overview(ctx, SinceDays(rawText))
}

// SinceDays extracts the day window from free-form command text: the first
// run of digits wins, anything else means no cutoff
func SinceDays(rawText string) *int {
	m := firstInt.FindString(rawText)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}
