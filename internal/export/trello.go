package export

import (
	"context"
	"fmt"
	"time"

	"meetwise/internal/model"

	"github.com/go-resty/resty/v2"
)

const trelloAPI = "https://api.trello.com/1"

// Trello creates one card for the summary and one card per action item
// on the configured list. The first card failure aborts the batch;
// already-created cards are not rolled back.
type Trello struct {
	key    string
	token  string
	listID string
	base   string
	client *resty.Client
}

func NewTrello(key, token, listID string) *Trello {
	return &Trello{key: key, token: token, listID: listID, base: trelloAPI, client: resty.New()}
}

type trelloCard struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

func (t *Trello) Export(ctx context.Context, req model.ExportRequest) error {
	if t.key == "" || t.token == "" || t.listID == "" {
		return fmt.Errorf("%w: trello key/token/list id", model.ErrNotConfigured)
	}

	cards := []trelloCard{{
		Name: fmt.Sprintf("Meeting Summary (%s)", time.Now().Format("1/2/2006")),
		Desc: req.Summary,
	}}
	for _, item := range req.ActionItems {
		desc := ""
		if item.Assignee != "" {
			desc = "Assignee: " + item.Assignee
		}
		if item.Deadline != nil {
			if desc != "" {
				desc += "\n"
			}
			desc += "Deadline: " + *item.Deadline
		}
		cards = append(cards, trelloCard{Name: item.Task, Desc: desc})
	}

	for i, card := range cards {
		resp, err := t.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{"key": t.key, "token": t.token, "idList": t.listID}).
			SetHeader("Content-Type", "application/json").
			SetBody(card).
			Post(t.base + "/cards")
		if err != nil {
			return fmt.Errorf("%w: card %d/%d: %v", model.ErrPartialFailure, i+1, len(cards), err)
		}
		if !resp.IsSuccess() {
			return fmt.Errorf("%w: card %d/%d: status %d", model.ErrPartialFailure, i+1, len(cards), resp.StatusCode())
		}
	}
	return nil
}
