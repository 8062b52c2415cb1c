package repository

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/Dirk1989/Ideal/internal/domain"
)

// SchemaVersion is the version written into every collection document.
const SchemaVersion = 1

// Document is the on-disk envelope of one collection.
type Document[T any] struct {
	Version   int               `json:"version"`
	Kind      domain.Collection `json:"kind"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Records   []T               `json:"records"`
}

// EncodeDocument renders records as a pretty-printed versioned document.
func EncodeDocument[T any](kind domain.Collection, records []T, now time.Time) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	doc := Document[T]{
		Version:   SchemaVersion,
		Kind:      kind,
		UpdatedAt: now.UTC(),
		Records:   records,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	return data, nil
}

// DecodeDocument parses a collection document. A bare JSON array is accepted
// as a version 0 document.
func DecodeDocument[T any](kind domain.Collection, data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode %s: empty document", kind)
	}

	if trimmed[0] == '[' {
		var records []T
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode legacy %s: %w", kind, err)
		}
		return records, nil
	}

	var doc Document[T]
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	if doc.Version < 1 || doc.Version > SchemaVersion {
		return nil, fmt.Errorf("decode %s: unsupported schema version %d", kind, doc.Version)
	}
	if doc.Kind != "" && doc.Kind != kind {
		return nil, fmt.Errorf("decode %s: document holds %s", kind, doc.Kind)
	}
	return doc.Records, nil
}
