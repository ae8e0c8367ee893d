package export

import (
	"fmt"
	"strings"
	"time"

	"meetwise/internal/model"
)

type EmailResult struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Email produces a subject/body pair for the caller's mail composer.
// It never sends mail itself.
func Email(req model.ExportRequest) EmailResult {
	return emailAt(req, time.Now())
}

func emailAt(req model.ExportRequest, now time.Time) EmailResult {
	var items string
	if len(req.ActionItems) == 0 {
		items = "None."
	} else {
		var lines []string
		for i, item := range req.ActionItems {
			line := fmt.Sprintf("%d. %s (Assignee: %s", i+1, item.Task, dash(item.Assignee))
			if item.Deadline != nil {
				line += ", Due: " + *item.Deadline
			}
			lines = append(lines, line+")")
		}
		items = strings.Join(lines, "\n")
	}

	return EmailResult{
		Subject: "Meeting Summary & Action Items - " + now.Format("1/2/2006"),
		Body: fmt.Sprintf("Hello,\n\nHere is the summary and action items from our recent meeting:\n\n---\n\nSummary:\n%s\n\nAction Items:\n%s\n\n---\n\nBest regards,\nAI Meeting Agent",
			req.Summary, items),
	}
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
