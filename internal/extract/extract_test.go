package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetwise/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want model.SourceKind
	}{
		{"meeting.txt", model.SourceTextFile},
		{"meeting.TXT", model.SourceTextFile},
		{"notes.csv", model.SourceCSVFile},
		{"deck.pdf", model.SourcePDFFile},
		{"minutes.docx", model.SourceDocxFile},
	}
	for _, tt := range tests {
		kind, err := Classify(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, kind, tt.name)
	}

	for _, name := range []string{"sheet.xlsx", "archive.zip", "noext", "image.png"} {
		_, err := Classify(name)
		assert.ErrorIs(t, err, model.ErrUnsupportedFormat, name)
	}
}

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		want model.SourceKind
	}{
		{"https://example.com/minutes.txt", model.SourceTextURL},
		{"https://example.com/report.csv?dl=1", model.SourceCSVURL},
		{"https://example.com/deck.pdf#page=2", model.SourcePDFURL},
		{"https://example.com/notes.docx", model.SourceDocxURL},
		{"https://example.com/raw-transcript", model.SourceTextURL},
	}
	for _, tt := range tests {
		kind, err := ClassifyURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, kind, tt.url)
	}

	_, err := ClassifyURL("https://example.com/sheet.xlsx")
	assert.ErrorIs(t, err, model.ErrUnsupportedFormat)
}

func TestFileText(t *testing.T) {
	text, kind, err := File([]byte("Alice: hello\nBob: hi"), "standup.txt")
	require.NoError(t, err)
	assert.Equal(t, model.SourceTextFile, kind)
	assert.Equal(t, "Alice: hello\nBob: hi", text)

	text, kind, err = File([]byte("speaker,line\nAlice,hello"), "standup.csv")
	require.NoError(t, err)
	assert.Equal(t, model.SourceCSVFile, kind)
	assert.Equal(t, "speaker,line\nAlice,hello", text)
}

func TestFileUnsupported(t *testing.T) {
	_, _, err := File([]byte("whatever"), "standup.xlsx")
	assert.ErrorIs(t, err, model.ErrUnsupportedFormat)
}

func TestFileCorruptBinary(t *testing.T) {
	_, _, err := File([]byte("definitely not a pdf"), "standup.pdf")
	assert.ErrorIs(t, err, model.ErrExtractionFailed)

	_, _, err = File([]byte("definitely not a zip"), "standup.docx")
	assert.ErrorIs(t, err, model.ErrExtractionFailed)
}

func TestFetcherURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/minutes.txt":
			w.Write([]byte("Alice: ship it"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := NewFetcher()
	text, kind, err := f.URL(context.Background(), srv.URL+"/minutes.txt")
	require.NoError(t, err)
	assert.Equal(t, model.SourceTextURL, kind)
	assert.Equal(t, "Alice: ship it", text)

	_, _, err = f.URL(context.Background(), srv.URL+"/gone.txt")
	assert.ErrorIs(t, err, model.ErrFetchFailed)
}

func TestFetcherRejectsBeforeFetch(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	f := NewFetcher()
	_, _, err := f.URL(context.Background(), srv.URL+"/sheet.xlsx")
	assert.ErrorIs(t, err, model.ErrUnsupportedFormat)
	assert.Zero(t, hits, "unsupported suffix must be rejected before any fetch")
}
