// Package testutil provides fixture builders and assertions for tanaout tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/tanaout/internal/export"
	"github.com/aidanlsb/tanaout/internal/model"
)

// TestExport builds an export document in memory.
type TestExport struct {
	t     *testing.T
	docs  []*export.Doc
	index map[string]*export.Doc
}

// DocOption configures a fixture record.
type DocOption func(*export.Doc)

// NewTestExport creates an empty export builder.
func NewTestExport(t *testing.T) *TestExport {
	t.Helper()
	return &TestExport{
		t:     t,
		index: make(map[string]*export.Doc),
	}
}

// Name sets the record's display name.
func Name(name string) DocOption {
	return func(d *export.Doc) { d.Props.Name = &name }
}

// Description sets the record's description.
func Description(desc string) DocOption {
	return func(d *export.Doc) { d.Props.Description = &desc }
}

// Kind sets the raw _docType value.
func Kind(kind string) DocOption {
	return func(d *export.Doc) { d.Props.DocType = &kind }
}

// Owner sets the owner ID.
func Owner(id string) DocOption {
	return func(d *export.Doc) { d.Props.OwnerID = &id }
}

// Meta sets the metadata node ID.
func Meta(id string) DocOption {
	return func(d *export.Doc) { d.Props.MetaNodeID = &id }
}

// Source sets the source node ID.
func Source(id string) DocOption {
	return func(d *export.Doc) { d.Props.SourceID = &id }
}

// Children sets the ordered child IDs.
func Children(ids ...string) DocOption {
	return func(d *export.Doc) { d.Children = append(d.Children, ids...) }
}

// Bare drops the record's properties, producing a stub once resolved.
func Bare() DocOption {
	return func(d *export.Doc) { d.Props = nil }
}

// Add appends a record. Records get properties unless Bare is applied last.
func (e *TestExport) Add(id string, opts ...DocOption) *TestExport {
	e.t.Helper()
	if _, ok := e.index[id]; ok {
		e.t.Fatalf("duplicate fixture id %s", id)
	}
	d := &export.Doc{ID: id, Props: &export.Props{Created: 1}}
	for _, opt := range opts {
		opt(d)
	}
	e.docs = append(e.docs, d)
	e.index[id] = d
	return e
}

// WithTags attaches a supertag declaration to an existing record. The metadata
// node, declaration tuple, tag nodes and the marker record are generated.
func (e *TestExport) WithTags(id string, tags ...string) *TestExport {
	e.t.Helper()
	d := e.mustGet(id)
	if d.Props == nil {
		e.t.Fatalf("cannot tag bare record %s", id)
	}

	if _, ok := e.index[model.SupertagMarkerID]; !ok {
		e.Add(model.SupertagMarkerID, Name("Supertags"))
	}

	metaID := id + "_META"
	declID := id + "_TAGDECL"
	declChildren := []string{model.SupertagMarkerID}
	for i, tag := range tags {
		tagID := fmt.Sprintf("%s_TAG%d", id, i)
		e.Add(tagID, Name(tag))
		declChildren = append(declChildren, tagID)
	}
	e.Add(declID, Kind("tuple"), Owner(metaID), Children(declChildren...))
	e.Add(metaID, Owner(id), Children(declID))
	d.Props.MetaNodeID = &metaID
	return e
}

// WithField attaches a field tuple to parent: the key record named key and one
// named record per value.
func (e *TestExport) WithField(parent, key string, values ...string) *TestExport {
	e.t.Helper()
	p := e.mustGet(parent)

	tupleID := fmt.Sprintf("%s_FIELD%d", parent, len(p.Children))
	keyID := tupleID + "_KEY"
	e.Add(keyID, Name(key))
	children := []string{keyID}
	for i, v := range values {
		valueID := fmt.Sprintf("%s_VAL%d", tupleID, i)
		e.Add(valueID, Name(v))
		children = append(children, valueID)
	}
	e.Add(tupleID, Kind("tuple"), Owner(parent), Children(children...))
	p.Children = append(p.Children, tupleID)
	return e
}

// Document returns the export built so far.
func (e *TestExport) Document() *export.Document {
	doc := &export.Document{FormatVersion: 1}
	for _, d := range e.docs {
		doc.Docs = append(doc.Docs, *d)
	}
	return doc
}

// WriteFile writes the export as JSON to a fresh temp directory and returns
// the file path.
func (e *TestExport) WriteFile() string {
	e.t.Helper()
	data, err := json.MarshalIndent(e.Document(), "", "  ")
	if err != nil {
		e.t.Fatalf("failed to marshal export: %v", err)
	}
	path := filepath.Join(e.t.TempDir(), "export.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.t.Fatalf("failed to write export %s: %v", path, err)
	}
	return path
}

func (e *TestExport) mustGet(id string) *export.Doc {
	e.t.Helper()
	d, ok := e.index[id]
	if !ok {
		e.t.Fatalf("unknown fixture id %s", id)
	}
	return d
}
