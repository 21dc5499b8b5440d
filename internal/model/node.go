package model

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved identifiers and tag values that are part of the export's data
// contract rather than configuration.
const (
	// TrashSuffix marks a trashed node. Everything owned beneath it is trashed too.
	TrashSuffix = "_TRASH"

	// SystemPrefix marks internal nodes that are never visited as roots.
	SystemPrefix = "SYS"

	// SupertagMarkerID is the key of a metadata tuple declaring supertags.
	// The other meta kinds (SYS_A11 color, SYS_A12 locked, SYS_A14 child
	// supertag, SYS_A15 search expression) are not supported.
	SupertagMarkerID = "SYS_A13"

	TagFieldDefinition = "field-definition"
	TagSupertag        = "supertag"
	TagTodo            = "todo"
)

// ErrUnnamedSupertag is returned when a supertag declaration lists a node
// without a name.
var ErrUnnamedSupertag = errors.New("supertag declaration references a node without a name")

// Node is a resolved record in the entity graph.
//
// A node with nil Props is a stub: its ID was referenced but the raw record
// had no properties. Children are shared with other parents.
type Node struct {
	ID       string
	Children []*Node
	Props    *Props
}

// Props are a node's resolved properties. Link fields are nil when the raw
// record did not name them or named an ID absent from the export.
type Props struct {
	Created     uint64
	Name        *string
	Description *string
	DocType     string

	Owner  *Node
	Meta   *Node
	Source *Node
}

// NewNode returns an empty stub for id.
func NewNode(id string) *Node {
	return &Node{ID: id}
}

// HasProps reports whether the node was populated from a raw record with properties.
func (n *Node) HasProps() bool { return n.Props != nil }

// Name returns the display name, or nil.
func (n *Node) Name() *string {
	if n.Props == nil {
		return nil
	}
	return n.Props.Name
}

// Description returns the description, or nil.
func (n *Node) Description() *string {
	if n.Props == nil {
		return nil
	}
	return n.Props.Description
}

// Owner returns the owning node, or nil.
func (n *Node) Owner() *Node {
	if n.Props == nil {
		return nil
	}
	return n.Props.Owner
}

// Meta returns the metadata node, or nil.
func (n *Node) Meta() *Node {
	if n.Props == nil {
		return nil
	}
	return n.Props.Meta
}

// Source returns the source node, or nil.
func (n *Node) Source() *Node {
	if n.Props == nil {
		return nil
	}
	return n.Props.Source
}

// DocKind returns the node's document kind. Stubs are Text.
func (n *Node) DocKind() DocKind {
	if n.Props == nil {
		return DocText
	}
	return ParseDocKind(n.Props.DocType)
}

// IsSystem reports whether the node is an internal system node.
func (n *Node) IsSystem() bool {
	return strings.HasPrefix(n.ID, SystemPrefix)
}

// InTrash reports whether the node or any of its owners is a trash node.
//
// Owner chains are followed until they end or revisit a node, so a cycle that
// never reaches a trash node reports false.
func (n *Node) InTrash() bool {
	seen := make(map[string]struct{})
	for cur := n; cur != nil; cur = cur.Owner() {
		if strings.HasSuffix(cur.ID, TrashSuffix) {
			return true
		}
		if _, ok := seen[cur.ID]; ok {
			return false
		}
		seen[cur.ID] = struct{}{}
	}
	return false
}

// TagList returns the supertags declared in the node's metadata node.
// The first declaration found wins.
func (n *Node) TagList() ([]string, error) {
	meta := n.Meta()
	if meta == nil {
		return []string{}, nil
	}

	for _, item := range meta.Children {
		tags, ok, err := supertagsFrom(item)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
		if ok {
			return tags, nil
		}
	}
	return []string{}, nil
}

// supertagsFrom reads a supertag declaration tuple: the first child is the
// marker, the rest are the tag nodes.
func supertagsFrom(item *Node) ([]string, bool, error) {
	if item.Props == nil || ParseDocKind(item.Props.DocType) != DocTuple {
		return nil, false, nil
	}
	if len(item.Children) == 0 || item.Children[0].ID != SupertagMarkerID {
		return nil, false, nil
	}

	tags := make([]string, 0, len(item.Children)-1)
	for _, child := range item.Children[1:] {
		name := child.Name()
		if name == nil {
			return nil, false, fmt.Errorf("%w: %s in %s", ErrUnnamedSupertag, child.ID, item.ID)
		}
		tags = append(tags, *name)
	}
	return tags, true, nil
}
