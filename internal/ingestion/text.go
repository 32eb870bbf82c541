package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	newlineRuns    = regexp.MustCompile(`\n+`)
	blankRuns      = regexp.MustCompile(`[ \t]+`)
	disallowedRune = regexp.MustCompile(`[^\p{L}\p{N}_\s\-@.,():/]`)
)

// CleanText normalizes extracted text: line endings become LF, runs of newlines and of
// spaces collapse to one, characters outside letters, digits, whitespace and -@.,():/
// are removed, and the result is trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = newlineRuns.ReplaceAllString(content, "\n")
	content = blankRuns.ReplaceAllString(content, " ")
	content = disallowedRune.ReplaceAllString(content, "")

	return strings.TrimSpace(content)
}

// Document is an ingested résumé with its text and provenance.
type Document struct {
	Text     string
	Metadata *Metadata
	Contact  ContactInfo
	Sections map[string]string
}

// Ingest extracts a document from memory and derives its metadata, contact details
// and sections.
func Ingest(filename string, data []byte) (*Document, error) {
	text, err := ExtractText(filename, data)
	if err != nil {
		return nil, err
	}
	format, _ := FormatFor(filename)

	return &Document{
		Text:     text,
		Metadata: NewMetadata(filepath.Base(filename), format, data, text),
		Contact:  ExtractContactInfo(text),
		Sections: ExtractSections(text),
	}, nil
}

// IngestFromFile reads a résumé from disk and ingests it.
func IngestFromFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Ingest(path, content)
}

// WriteOutput writes the cleaned text and metadata of a document to outDir.
func WriteOutput(outDir string, doc *Document) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "resume.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(doc.Text), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaPath := filepath.Join(outDir, "resume.meta.json")
	metaJSON, err := doc.Metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
