// Package outline holds the page graph built from the entity graph and
// renders it as indented outline text.
//
// Each block renders as "- " bullets indented two spaces per level. A block
// that qualifies as a page renders as a standalone document headed by
// "title::" and "tags::" properties; referenced from elsewhere it collapses
// to a single link line.
package outline

import (
	"slices"
	"sort"
	"strings"

	"github.com/aidanlsb/tanaout/internal/model"
	"github.com/aidanlsb/tanaout/internal/wikilink"
)

const indentUnit = "  "

// fieldValueIndent prefixes every line rendered for a field value.
const fieldValueIndent = "    "

// Block is a node of the page graph. Children and field values are shared
// with any other block that links to them.
type Block struct {
	ID          string
	Title       string
	Description *string
	Tags        []string
	Fields      map[string][]*Block
	Children    []*Block
	Kind        model.DocKind

	// RefCount counts the blocks that attach this one as a child. It does not
	// affect rendering.
	RefCount int
}

// NewBlock returns an untitled block with an empty field map.
func NewBlock(id string) *Block {
	return &Block{
		ID:     id,
		Fields: make(map[string][]*Block),
	}
}

// IsPage reports whether the block is emitted as its own document.
func (b *Block) IsPage() bool {
	if b.Title == "" {
		return false
	}
	if slices.Contains(b.Tags, model.TagFieldDefinition) || slices.Contains(b.Tags, model.TagSupertag) {
		return false
	}
	if b.Kind != model.DocText {
		return false
	}

	for _, tag := range b.Tags {
		if tag != model.TagTodo {
			return true
		}
	}
	return len(b.Fields) > 0
}

// Link returns the block's link text.
func (b *Block) Link() string {
	return wikilink.Format(b.Title)
}

// FieldKeys returns the field names in sorted order.
func (b *Block) FieldKeys() []string {
	keys := make([]string, 0, len(b.Fields))
	for k := range b.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Content renders the block at level. A page renders in full only when
// expand is set; otherwise it renders as a link bullet.
func (b *Block) Content(level int, expand bool) []string {
	return b.content(level, expand, make(map[*Block]struct{}))
}

// content renders b; active holds the blocks on the current render path. A
// block reached again through its own descendants renders as a link bullet.
func (b *Block) content(level int, expand bool, active map[*Block]struct{}) []string {
	var lines []string
	isPage := b.IsPage()
	indent := strings.Repeat(indentUnit, level)

	if isPage && !expand {
		return append(lines, indent+"- "+b.Link())
	}
	if _, ok := active[b]; ok {
		return append(lines, indent+"- "+b.Link())
	}
	active[b] = struct{}{}
	defer delete(active, b)

	// Pages open a fresh indentation frame under their title line.
	next := level + 1
	if isPage {
		next = level
	}

	if isPage {
		lines = append(lines, indent+"title:: "+b.Title)
	}

	if len(b.Tags) > 0 {
		tags := make([]string, len(b.Tags))
		for i, tag := range b.Tags {
			tags[i] = "#" + tag
		}
		joined := strings.Join(tags, " ")
		if isPage {
			lines = append(lines, indent+"tags:: "+joined)
		} else {
			lines = append(lines, indent+"- "+joined+" "+b.Title)
		}
	} else if !isPage {
		lines = append(lines, indent+"- "+b.Title)
	}

	if b.Description != nil || len(b.Fields) > 0 {
		metaIndent := indent
		if !isPage {
			metaIndent = strings.Repeat(indentUnit, next)
		}

		lines = append(lines, metaIndent+"- Metadata")
		if b.Description != nil {
			lines = append(lines, metaIndent+"  - Description: "+*b.Description)
		}
		for _, key := range b.FieldKeys() {
			lines = append(lines, metaIndent+"  - "+key)
			for _, value := range b.Fields[key] {
				for _, line := range value.content(next, false, active) {
					lines = append(lines, fieldValueIndent+line)
				}
			}
		}
	}

	for _, child := range b.Children {
		lines = append(lines, child.content(next, false, active)...)
	}

	return lines
}

// Render returns the block's full document text.
func (b *Block) Render() string {
	return strings.Join(b.Content(0, true), "\n")
}
