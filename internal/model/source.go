package model

// SourceKind tags how a transcript's raw text was obtained.
type SourceKind string

const (
	SourceManual   SourceKind = "manual-paste"
	SourceTextFile SourceKind = "text-file"
	SourceCSVFile  SourceKind = "csv-file"
	SourcePDFFile  SourceKind = "pdf-file"
	SourceDocxFile SourceKind = "docx-file"
	SourceTextURL  SourceKind = "text-url"
	SourceCSVURL   SourceKind = "csv-url"
	SourcePDFURL   SourceKind = "pdf-url"
	SourceDocxURL  SourceKind = "docx-url"
)
