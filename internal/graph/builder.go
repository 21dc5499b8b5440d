// Package graph resolves raw export records into the linked entity graph.
//
// Resolution is lazy and memoized: a node is registered as an empty stub
// before its properties and children are resolved, so reference cycles among
// owner, meta, source and child links terminate.
package graph

import (
	"slices"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/aidanlsb/tanaout/internal/export"
	"github.com/aidanlsb/tanaout/internal/model"
)

// Stats summarizes a build.
type Stats struct {
	Records  int // raw records loaded
	Nodes    int // resolved nodes
	Stubs    int // resolved nodes without properties
	Dangling int // child/owner/meta/source IDs absent from the export
}

// Builder owns the raw record table and the resolved node store.
// It is not safe for concurrent use.
type Builder struct {
	logger *log.Logger
	raw    map[string]*export.Doc
	nodes  map[string]*model.Node

	dangling int
}

// New returns an empty builder. A nil logger falls back to log.Default().
func New(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		logger: logger,
		raw:    make(map[string]*export.Doc),
		nodes:  make(map[string]*model.Node),
	}
}

// LoadFile reads the export at path and indexes its records.
func (b *Builder) LoadFile(path string) error {
	doc, err := export.ReadFile(path)
	if err != nil {
		return err
	}
	b.Load(doc)
	return nil
}

// Load indexes the document's records by ID. No nodes are resolved yet.
// A later record with a duplicate ID replaces the earlier one.
func (b *Builder) Load(doc *export.Document) {
	for i := range doc.Docs {
		d := &doc.Docs[i]
		b.raw[d.ID] = d
	}
	b.logger.Debug("loaded export", "records", len(b.raw), "format_version", doc.FormatVersion)
}

// BuildAll resolves every loaded record. Already resolved IDs are skipped.
func (b *Builder) BuildAll() {
	ids := make([]string, 0, len(b.raw))
	for id := range b.raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		b.build(b.raw[id])
	}

	st := b.Stats()
	b.logger.Debug("resolved entity graph", "nodes", st.Nodes, "stubs", st.Stubs, "dangling", st.Dangling)
}

// Get returns the resolved node for id, or nil if it has not been resolved.
func (b *Builder) Get(id string) *model.Node {
	return b.nodes[id]
}

// Contains reports whether id has been resolved.
func (b *Builder) Contains(id string) bool {
	_, ok := b.nodes[id]
	return ok
}

// Nodes returns all resolved nodes sorted by ID.
func (b *Builder) Nodes() []*model.Node {
	out := make([]*model.Node, 0, len(b.nodes))
	for _, n := range b.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of resolved nodes.
func (b *Builder) Len() int { return len(b.nodes) }

// Stats reports counts for the current state of the builder.
func (b *Builder) Stats() Stats {
	st := Stats{Records: len(b.raw), Nodes: len(b.nodes), Dangling: b.dangling}
	for _, n := range b.nodes {
		if !n.HasProps() {
			st.Stubs++
		}
	}
	return st
}

func (b *Builder) build(d *export.Doc) {
	if _, ok := b.nodes[d.ID]; ok {
		return
	}

	node := model.NewNode(d.ID)
	b.nodes[d.ID] = node

	b.buildProps(node, d)
	b.buildChildren(node, d)
}

// resolve builds the record for id if it is in the export and returns its node.
func (b *Builder) resolve(id string) *model.Node {
	d, ok := b.raw[id]
	if !ok {
		b.dangling++
		b.logger.Debug("dangling reference", "id", id)
		return nil
	}
	b.build(d)
	return b.nodes[id]
}

func (b *Builder) buildProps(node *model.Node, d *export.Doc) {
	if d.Props == nil {
		return
	}
	p := d.Props

	props := &model.Props{
		Created:     p.Created,
		Name:        p.Name,
		Description: p.Description,
	}
	if p.DocType != nil {
		props.DocType = *p.DocType
	}
	// Assign before following links so re-entrant lookups see the scalars.
	node.Props = props

	if p.OwnerID != nil {
		props.Owner = b.resolve(*p.OwnerID)
	}
	if p.MetaNodeID != nil {
		props.Meta = b.resolve(*p.MetaNodeID)
	}
	if p.SourceID != nil {
		props.Source = b.resolve(*p.SourceID)
	}
}

func (b *Builder) buildChildren(node *model.Node, d *export.Doc) {
	for _, childID := range d.Children {
		child := b.resolve(childID)
		if child == nil {
			continue
		}
		node.Children = append(node.Children, child)
	}

	// Tuples first so field declarations precede content.
	slices.SortStableFunc(node.Children, func(a, c *model.Node) int {
		at, ct := a.DocKind() == model.DocTuple, c.DocKind() == model.DocTuple
		switch {
		case at && !ct:
			return -1
		case !at && ct:
			return 1
		default:
			return 0
		}
	})
}
