package repo

import (
	"context"
	"testing"
	"time"

	"meetwise/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Transcript{}))
	return db
}

func seed(t *testing.T, r *Transcripts, id, owner string, createdAt time.Time) {
	t.Helper()
	deadline := "Friday"
	err := r.Create(context.Background(), &model.Transcript{
		ID:      id,
		UserID:  owner,
		Source:  model.SourceManual,
		RawText: "raw " + id,
		Summary: "summary " + id,
		ActionItems: model.ActionItems{
			{Task: "task " + id, Assignee: "Bob", Deadline: &deadline},
		},
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestListByOwnerNewestFirst(t *testing.T) {
	r := NewTranscripts(newTestDB(t))

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	// Inserted out of creation order on purpose.
	seed(t, r, "t2", "a", base.Add(1*time.Hour))
	seed(t, r, "t3", "a", base.Add(2*time.Hour))
	seed(t, r, "t1", "a", base)

	got, err := r.ListByOwner(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t3", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
	assert.Equal(t, "t1", got[2].ID)
}

func TestListByOwnerScoped(t *testing.T) {
	r := NewTranscripts(newTestDB(t))

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seed(t, r, "a1", "a", base)
	seed(t, r, "b1", "b", base.Add(time.Minute))
	seed(t, r, "a2", "a", base.Add(2*time.Minute))

	got, err := r.ListByOwner(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, tr := range got {
		assert.Equal(t, "a", tr.UserID)
	}

	got, err = r.ListByOwner(context.Background(), "b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)

	got, err = r.ListByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByOwnerRoundTripsActionItems(t *testing.T) {
	r := NewTranscripts(newTestDB(t))
	seed(t, r, "t1", "a", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))

	got, err := r.ListByOwner(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].ActionItems, 1)
	item := got[0].ActionItems[0]
	assert.Equal(t, "task t1", item.Task)
	assert.Equal(t, "Bob", item.Assignee)
	require.NotNil(t, item.Deadline)
	assert.Equal(t, "Friday", *item.Deadline)
	assert.Nil(t, item.Tone)
}

func TestCreateDuplicateID(t *testing.T) {
	r := NewTranscripts(newTestDB(t))

	now := time.Now().UTC()
	seed(t, r, "dup", "a", now)
	err := r.Create(context.Background(), &model.Transcript{
		ID:        "dup",
		UserID:    "a",
		Source:    model.SourceManual,
		RawText:   "raw",
		Summary:   "summary",
		CreatedAt: now,
	})
	assert.ErrorIs(t, err, model.ErrPersistence)
}

func TestUsersCreateAndFind(t *testing.T) {
	r := NewUsers(newTestDB(t))

	u := &model.User{ID: "u1", Email: "alice@example.com", Password: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, r.Create(context.Background(), u))

	got, err := r.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	got, err = r.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}
