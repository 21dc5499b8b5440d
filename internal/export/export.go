// Package export holds the raw document shape of a graph note export and
// loads it from disk.
//
// The records here are never mutated after loading; the graph package resolves
// them into linked nodes.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the top-level export file.
type Document struct {
	FormatVersion uint64 `json:"formatVersion"`
	Docs          []Doc  `json:"docs"`
}

// Doc is a single raw record keyed by ID.
type Doc struct {
	ID          string   `json:"id"`
	Props       *Props   `json:"props,omitempty"`
	TouchCounts []uint64 `json:"touchCounts,omitempty"`
	ModifiedTs  []uint64 `json:"modifiedTs,omitempty"`
	Children    []string `json:"children,omitempty"`
}

// Props are the optional properties of a raw record. Link fields hold IDs.
type Props struct {
	Created     uint64  `json:"created"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	DocType     *string `json:"_docType,omitempty"`
	OwnerID     *string `json:"_ownerId,omitempty"`
	MetaNodeID  *string `json:"_metaNodeId,omitempty"`
	SourceID    *string `json:"_sourceId,omitempty"`
}

// Decode parses an export document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &doc, nil
}

// ReadFile opens and parses the export at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
