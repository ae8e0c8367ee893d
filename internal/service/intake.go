package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetwise/internal/logger"
	"meetwise/internal/model"

	"github.com/google/uuid"
)

// TranscriptStore is what the orchestrator needs from persistence.
type TranscriptStore interface {
	Create(ctx context.Context, t *model.Transcript) error
	ListByOwner(ctx context.Context, userID string) ([]model.Transcript, error)
}

// Provider produces the summary and action items for a transcript.
type Provider interface {
	Summarize(ctx context.Context, transcript string) (*SummaryResult, error)
}

// IntakeService runs the submit pipeline: validate text, summarize,
// assemble the record, persist. Any failure aborts with nothing
// written; resubmitting identical text creates a new record.
type IntakeService struct {
	provider    Provider
	transcripts TranscriptStore
}

func NewIntakeService(provider Provider, transcripts TranscriptStore) *IntakeService {
	return &IntakeService{provider: provider, transcripts: transcripts}
}

func (s *IntakeService) Submit(ctx context.Context, userID, rawText string, source model.SourceKind) (*model.Transcript, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, fmt.Errorf("%w: transcript text is empty", model.ErrInvalidInput)
	}
	if source == "" {
		source = model.SourceManual
	}

	result, err := s.provider.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}

	t := &model.Transcript{
		ID:          newTranscriptID(),
		UserID:      userID,
		Source:      source,
		RawText:     text,
		Summary:     result.Summary,
		ActionItems: result.ActionItems,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.transcripts.Create(ctx, t); err != nil {
		return nil, err
	}
	logger.Info("transcript.created", "id", t.ID, "uid", userID, "source", source, "items", len(t.ActionItems))
	return t, nil
}

func (s *IntakeService) List(ctx context.Context, userID string) ([]model.Transcript, error) {
	return s.transcripts.ListByOwner(ctx, userID)
}

func newTranscriptID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
