package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetwise/internal/model"

	"github.com/go-resty/resty/v2"
)

const (
	notionAPI     = "https://api.notion.com/v1"
	notionVersion = "2022-06-28"
)

// Notion creates one page in the configured database: title + summary
// property, then a heading and one bulleted block per action item.
type Notion struct {
	token      string
	databaseID string
	base       string
	client     *resty.Client
}

func NewNotion(token, databaseID string) *Notion {
	return &Notion{token: token, databaseID: databaseID, base: notionAPI, client: resty.New()}
}

func (n *Notion) Export(ctx context.Context, req model.ExportRequest) error {
	if n.token == "" || n.databaseID == "" {
		return fmt.Errorf("%w: notion token/database id", model.ErrNotConfigured)
	}

	children := []map[string]any{{
		"object": "block",
		"type":   "heading_2",
		"heading_2": map[string]any{
			"rich_text": []map[string]any{textBlock("Action Items")},
		},
	}}
	for _, item := range req.ActionItems {
		line := item.Task
		if item.Assignee != "" {
			line += " - " + item.Assignee
		}
		if item.Deadline != nil {
			line += " (Due: " + *item.Deadline + ")"
		}
		children = append(children, map[string]any{
			"object": "block",
			"type":   "bulleted_list_item",
			"bulleted_list_item": map[string]any{
				"rich_text": []map[string]any{textBlock(strings.TrimSpace(line))},
			},
		})
	}

	body := map[string]any{
		"parent": map[string]any{"database_id": n.databaseID},
		"properties": map[string]any{
			"Name": map[string]any{
				"title": []map[string]any{textBlock("Meeting note - " + time.Now().Format("1/2/2006"))},
			},
			"Summary": map[string]any{
				"rich_text": []map[string]any{textBlock(req.Summary)},
			},
		},
		"children": children,
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetAuthToken(n.token).
		SetHeader("Notion-Version", notionVersion).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(n.base + "/pages")
	if err != nil {
		return fmt.Errorf("notion create page: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("notion status %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}

func textBlock(content string) map[string]any {
	return map[string]any{
		"type": "text",
		"text": map[string]any{"content": content},
	}
}
