package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"meetwise/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultTask     = "No task specified"
	defaultAssignee = "Unassigned"
)

const summarizePrompt = `You are an advanced meeting assistant. Given the following transcript, perform the following:

1. Provide a concise, human-like meeting summary. Do NOT include any speaker names or tags; just give a general summary of the whole meeting.
2. Extract action items. For each action item, include:
   - task: A clear description of the action.
   - assignee: The person responsible (infer from context, e.g., "Let's have John lead this").
   - deadline: The deadline (infer from context, e.g., "by Friday", "before next call").
   - tone: The tone of the request (e.g., urgent, casual, critical, optional, etc.).
   - importance: Rate the importance (high, medium, low) based on context and language cues.
3. If any of the above cannot be determined, set the value to null.

Transcript:
"""
%s
"""

Respond in JSON with:
{
  "summary": "...",
  "actionItems": [
    {"task": "...", "assignee": "...", "deadline": "...", "tone": "...", "importance": "..."}
  ]
}`

// chatClient is the slice of the OpenAI client the summarizer needs.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Summarizer turns raw transcript text into a summary plus normalized
// action items via the chat-completion provider.
type Summarizer struct {
	cli   chatClient
	model string
}

func NewSummarizer(apiKey, baseURL, modelName string) *Summarizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Summarizer{cli: openai.NewClientWithConfig(cfg), model: modelName}
}

type SummaryResult struct {
	Summary     string
	ActionItems []model.ActionItem
}

func (s *Summarizer) Summarize(ctx context.Context, transcript string) (*SummaryResult, error) {
	resp, err := s.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(summarizePrompt, transcript)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   800,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", model.ErrMalformedOutput)
	}
	return parseModelOutput(resp.Choices[0].Message.Content)
}

// rawOutput is the untrusted provider shape. RawMessage keeps a missing
// actionItems distinguishable from a present-but-wrong one.
type rawOutput struct {
	Summary     *string         `json:"summary"`
	ActionItems json.RawMessage `json:"actionItems"`
}

type rawActionItem struct {
	Task       *string `json:"task"`
	Assignee   *string `json:"assignee"`
	Deadline   *string `json:"deadline"`
	Tone       *string `json:"tone"`
	Importance *string `json:"importance"`
}

// parseModelOutput is the validation boundary: nothing dynamic crosses
// it. A missing summary or a non-array actionItems aborts the intake.
func parseModelOutput(content string) (*SummaryResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty content", model.ErrMalformedOutput)
	}
	var raw rawOutput
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedOutput, err)
	}
	if raw.Summary == nil || strings.TrimSpace(*raw.Summary) == "" {
		return nil, fmt.Errorf("%w: missing summary", model.ErrMalformedOutput)
	}

	items := []rawActionItem{}
	if len(raw.ActionItems) > 0 && string(raw.ActionItems) != "null" {
		if err := json.Unmarshal(raw.ActionItems, &items); err != nil {
			return nil, fmt.Errorf("%w: actionItems is not a sequence", model.ErrMalformedOutput)
		}
	}

	result := &SummaryResult{Summary: *raw.Summary, ActionItems: make([]model.ActionItem, 0, len(items))}
	for _, it := range items {
		result.ActionItems = append(result.ActionItems, normalizeItem(it))
	}
	return result, nil
}

// normalizeItem applies the mandatory field defaults before anything is
// persisted.
func normalizeItem(it rawActionItem) model.ActionItem {
	item := model.ActionItem{
		Task:       defaultTask,
		Assignee:   defaultAssignee,
		Deadline:   emptyToNil(it.Deadline),
		Tone:       emptyToNil(it.Tone),
		Importance: emptyToNil(it.Importance),
	}
	if it.Task != nil && *it.Task != "" {
		item.Task = *it.Task
	}
	if it.Assignee != nil && *it.Assignee != "" {
		item.Assignee = *it.Assignee
	}
	return item
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
