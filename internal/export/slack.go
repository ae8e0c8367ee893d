package export

import (
	"context"
	"fmt"
	"strings"

	"meetwise/internal/model"

	"github.com/go-resty/resty/v2"
)

// Slack posts the summary to a configured incoming webhook.
type Slack struct {
	webhook string
	client  *resty.Client
}

func NewSlack(webhook string) *Slack {
	return &Slack{webhook: webhook, client: resty.New()}
}

func (s *Slack) Export(ctx context.Context, req model.ExportRequest) error {
	if s.webhook == "" {
		return fmt.Errorf("%w: slack webhook url", model.ErrNotConfigured)
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"text": slackText(req)}).
		Post(s.webhook)
	if err != nil {
		return fmt.Errorf("slack post: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("slack status %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}

func slackText(req model.ExportRequest) string {
	var sb strings.Builder
	sb.WriteString("*Meeting Summary*\n")
	sb.WriteString(req.Summary)
	sb.WriteString("\n\n*Action Items*\n")
	var lines []string
	for _, item := range req.ActionItems {
		line := fmt.Sprintf("• %s _(Assignee: %s", item.Task, dash(item.Assignee))
		if item.Deadline != nil {
			line += ", Due: " + *item.Deadline
		}
		lines = append(lines, line+")_")
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}
