// Package pages builds the page graph from the entity graph and writes one
// outline document per page.
package pages

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/aidanlsb/tanaout/internal/model"
	"github.com/aidanlsb/tanaout/internal/outline"
)

// NodeSource is the resolved entity graph. *graph.Builder implements it.
type NodeSource interface {
	Nodes() []*model.Node
	Get(id string) *model.Node
}

// Builder builds blocks lazily and memoizes them by ID.
// It is not safe for concurrent use.
type Builder struct {
	logger *log.Logger
	nodes  NodeSource
	blocks map[string]*outline.Block
}

// NewBuilder returns a builder over nodes. A nil logger falls back to
// log.Default().
func NewBuilder(nodes NodeSource, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		logger: logger,
		nodes:  nodes,
		blocks: make(map[string]*outline.Block),
	}
}

// BuildAll builds a block for every node that is not trashed, not a system
// node and has properties. Blocks already built are skipped.
func (b *Builder) BuildAll() error {
	for _, n := range b.nodes.Nodes() {
		if !eligible(n) {
			continue
		}
		if _, err := b.build(n); err != nil {
			return err
		}
	}
	b.logger.Debug("built page graph", "blocks", len(b.blocks))
	return nil
}

// Block returns the block for id, or nil.
func (b *Builder) Block(id string) *outline.Block {
	return b.blocks[id]
}

// Blocks returns every built block sorted by ID.
func (b *Builder) Blocks() []*outline.Block {
	out := make([]*outline.Block, 0, len(b.blocks))
	for _, blk := range b.blocks {
		out = append(out, blk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pages returns the blocks that qualify as pages, sorted by ID.
func (b *Builder) Pages() []*outline.Block {
	var out []*outline.Block
	for _, blk := range b.Blocks() {
		if blk.IsPage() {
			out = append(out, blk)
		}
	}
	return out
}

func eligible(n *model.Node) bool {
	return n.HasProps() && !n.InTrash() && !n.IsSystem()
}

// build registers the block before resolving its title and children, so a
// node reached again through its own references returns the partial block.
func (b *Builder) build(n *model.Node) (*outline.Block, error) {
	if blk, ok := b.blocks[n.ID]; ok {
		return blk, nil
	}

	blk := outline.NewBlock(n.ID)
	b.blocks[n.ID] = blk

	tags, err := n.TagList()
	if err != nil {
		return nil, err
	}
	blk.Tags = tags
	blk.Description = n.Description()
	blk.Kind = n.DocKind()

	if name := n.Name(); name != nil {
		title, err := b.resolveTitle(*name)
		if err != nil {
			return nil, fmt.Errorf("resolve title of %s: %w", n.ID, err)
		}
		blk.Title = title
	}

	if err := b.buildChildren(blk, n); err != nil {
		return nil, err
	}
	return blk, nil
}

func (b *Builder) buildChildren(blk *outline.Block, n *model.Node) error {
	for _, child := range n.Children {
		if !eligible(child) {
			continue
		}

		cb, err := b.build(child)
		if err != nil {
			return err
		}

		switch cb.Kind {
		case model.DocText:
			cb.RefCount++
			blk.Children = append(blk.Children, cb)
		case model.DocTuple:
			if len(cb.Children) < 2 {
				b.logger.Debug("skipping incomplete field", "tuple", cb.ID, "parent", blk.ID)
				continue
			}
			key := cb.Children[0].Title
			values := make([]*outline.Block, len(cb.Children)-1)
			copy(values, cb.Children[1:])
			blk.Fields[key] = values
		}
	}
	return nil
}
