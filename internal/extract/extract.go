// Package extract normalizes user-supplied transcript sources (uploaded
// files, remote URLs) to plain text.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"meetwise/internal/model"

	"github.com/fumiama/go-docx"
	"github.com/go-resty/resty/v2"
	"github.com/ledongthuc/pdf"
)

// Classify maps a filename suffix to its source kind. It is the single
// place extension sniffing happens.
func Classify(filename string) (model.SourceKind, error) {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "txt":
		return model.SourceTextFile, nil
	case "csv":
		return model.SourceCSVFile, nil
	case "pdf":
		return model.SourcePDFFile, nil
	case "docx":
		return model.SourceDocxFile, nil
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnsupportedFormat, path.Ext(filename))
	}
}

// ClassifyURL is Classify for remote resources. A URL without a
// recognizable suffix is treated as plain text.
func ClassifyURL(rawurl string) (model.SourceKind, error) {
	trimmed := rawurl
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(trimmed), "."))
	switch ext {
	case "", "txt":
		return model.SourceTextURL, nil
	case "csv":
		return model.SourceCSVURL, nil
	case "pdf":
		return model.SourcePDFURL, nil
	case "docx":
		return model.SourceDocxURL, nil
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnsupportedFormat, "."+ext)
	}
}

// File extracts plain text from an uploaded payload. The caller owns
// any on-disk artifact the bytes came from.
func File(data []byte, filename string) (string, model.SourceKind, error) {
	kind, err := Classify(filename)
	if err != nil {
		return "", "", err
	}
	text, err := byKind(data, kind)
	if err != nil {
		return "", "", err
	}
	return text, kind, nil
}

func byKind(data []byte, kind model.SourceKind) (string, error) {
	switch kind {
	case model.SourceTextFile, model.SourceCSVFile, model.SourceTextURL, model.SourceCSVURL:
		return string(data), nil
	case model.SourcePDFFile, model.SourcePDFURL:
		return pdfText(data)
	case model.SourceDocxFile, model.SourceDocxURL:
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %q", model.ErrUnsupportedFormat, kind)
	}
}

// pdfText extracts page text in page order, one newline between pages.
func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", model.ErrExtractionFailed, err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: pdf page %d: %v", model.ErrExtractionFailed, i, err)
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// docxText extracts the document's raw text, formatting dropped.
func docxText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read docx: %v", model.ErrExtractionFailed, err)
	}
	var sb strings.Builder
	for _, it := range doc.Document.Body.Items {
		switch o := it.(type) {
		case *docx.Paragraph:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(o.String())
		case *docx.Table:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(o.String())
		}
	}
	return sb.String(), nil
}

// Fetcher pulls remote transcripts over HTTP.
type Fetcher struct {
	client *resty.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: resty.New()}
}

// URL classifies the suffix first (unsupported formats are rejected
// before any network call), fetches the resource, and extracts text.
func (f *Fetcher) URL(ctx context.Context, rawurl string) (string, model.SourceKind, error) {
	kind, err := ClassifyURL(rawurl)
	if err != nil {
		return "", "", err
	}
	resp, err := f.client.R().SetContext(ctx).Get(rawurl)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	if !resp.IsSuccess() {
		return "", "", fmt.Errorf("%w: status %d", model.ErrFetchFailed, resp.StatusCode())
	}
	text, err := byKind(resp.Body(), kind)
	if err != nil {
		return "", "", err
	}
	return text, kind, nil
}
