package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes one ingested input file
type Metadata struct {
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the raw file
	Rows      int    `json:"rows"`      // data rows, header excluded
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(path string, content []byte, rows int) *Metadata {
	return &Metadata{
		Path:      path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Rows:      rows,
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// KeyVals returns the metadata as alternating log keys and values.
func (m *Metadata) KeyVals() []any {
	return []any{"path", m.Path, "rows", m.Rows, "sha256", m.Hash, "read_at", m.Timestamp}
}
