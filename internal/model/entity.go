package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Transcript struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	UserID      string      `gorm:"index;size:64" json:"user_id"`
	Source      SourceKind  `gorm:"size:32" json:"source"`
	RawText     string      `gorm:"type:text" json:"raw_text"`
	Summary     string      `gorm:"type:text" json:"summary"`
	ActionItems ActionItems `gorm:"type:json" json:"action_items"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ActionItem is a single task inferred from the transcript. Fields the
// model could not determine stay null; task and assignee are defaulted
// before persistence.
type ActionItem struct {
	Task       string  `json:"task"`
	Assignee   string  `json:"assignee"`
	Deadline   *string `json:"deadline"`
	Tone       *string `json:"tone"`
	Importance *string `json:"importance"`
}

// ActionItems is stored as a JSON column.
type ActionItems []ActionItem

func (a ActionItems) Value() (driver.Value, error) {
	if a == nil {
		a = ActionItems{}
	}
	return json.Marshal(a)
}

func (a *ActionItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = ActionItems{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("scan action items: unexpected type %T", src)
	}
}

func (User) TableName() string       { return "users" }
func (Transcript) TableName() string { return "transcripts" }
