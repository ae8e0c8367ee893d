// Package export holds the stateless adapters that translate a
// {summary, action items} payload into external representations. Each
// adapter is independent and never reads storage.
package export

import (
	"fmt"
	"strings"

	"meetwise/internal/model"
)

// Markdown renders the clipboard payload. Pure formatting, same input
// always yields the same string.
func Markdown(req model.ExportRequest) string {
	var sb strings.Builder
	sb.WriteString("## Meeting Summary\n\n")
	sb.WriteString(req.Summary)
	sb.WriteString("\n\n## Action Items\n")
	if len(req.ActionItems) == 0 {
		sb.WriteString("\nNone.\n")
		return sb.String()
	}
	sb.WriteByte('\n')
	for _, item := range req.ActionItems {
		sb.WriteString(fmt.Sprintf("- **%s**%s\n", item.Task, itemMeta(item)))
	}
	return sb.String()
}

func itemMeta(item model.ActionItem) string {
	var parts []string
	if item.Assignee != "" {
		parts = append(parts, "Assignee: "+item.Assignee)
	}
	if item.Deadline != nil {
		parts = append(parts, "Due: "+*item.Deadline)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
