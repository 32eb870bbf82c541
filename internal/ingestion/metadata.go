package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// Metadata describes an ingested résumé document.
type Metadata struct {
	Filename  string `json:"filename"`
	Format    string `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the original bytes
	SizeBytes int    `json:"size_bytes"`
	WordCount int    `json:"word_count"`
}

// NewMetadata creates a Metadata instance stamped with the current time.
func NewMetadata(filename, format string, data []byte, text string) *Metadata {
	return &Metadata{
		Filename:  filename,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(data),
		SizeBytes: len(data),
		WordCount: textnorm.WordCount(text),
	}
}

func computeHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
