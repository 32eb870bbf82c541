package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	input := "Line    with \t multiple    spaces\n\n\n\nNext line"
	assert.Equal(t, "Line with multiple spaces\nNext line", CleanText(input))
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.NotContains(t, result, "\r")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_RemovesDisallowedCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps contact punctuation", "jane.doe@example.com (555) 123-4567", "jane.doe@example.com (555) 123-4567"},
		{"keeps urls", "github.com/jane", "github.com/jane"},
		{"drops symbols", "C++ & C# • 20% growth!", "C  C  20 growth"},
		{"keeps unicode letters", "Résumé für Zoë", "Résumé für Zoë"},
		{"keeps underscores", "snake_case", "snake_case"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_TrimsAndHandlesEmpty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\n  "))
	assert.Equal(t, "text", CleanText("\n  text  \n"))
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestIngestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "Jane Doe\njane@example.com\n\nExperience\nBuilt   services in Go\n\nSkills\nGo, Python"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\njane@example.com\nExperience\nBuilt services in Go\nSkills\nGo, Python", doc.Text)
	assert.Equal(t, "jane@example.com", doc.Contact.Email)
	assert.Equal(t, "Built services in Go", doc.Sections[SectionExperience])
	assert.Equal(t, "Go, Python", doc.Sections[SectionSkills])

	require.NotNil(t, doc.Metadata)
	assert.Equal(t, "resume.txt", doc.Metadata.Filename)
	assert.Equal(t, FormatText, doc.Metadata.Format)
	assert.Equal(t, len(content), doc.Metadata.SizeBytes)
	assert.Len(t, doc.Metadata.Hash, 64)
	assert.Equal(t, 11, doc.Metadata.WordCount)
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestWriteOutput(t *testing.T) {
	doc, err := Ingest("cv.txt", []byte("Jane Doe"))
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteOutput(outDir, doc))

	cleaned, err := os.ReadFile(filepath.Join(outDir, "resume.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", string(cleaned))

	meta, err := os.ReadFile(filepath.Join(outDir, "resume.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"filename": "cv.txt"`)
	assert.Contains(t, string(meta), `"hash": "`)
}

func TestComputeHash_Stable(t *testing.T) {
	assert.Equal(t, computeHash([]byte("abc")), computeHash([]byte("abc")))
	assert.NotEqual(t, computeHash([]byte("abc")), computeHash([]byte("abd")))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", computeHash([]byte("abc")))
}
