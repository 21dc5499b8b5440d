package model

import (
	"errors"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func tuple(id string, children ...*Node) *Node {
	return &Node{ID: id, Props: &Props{DocType: "tuple"}, Children: children}
}

func named(id, name string) *Node {
	return &Node{ID: id, Props: &Props{Name: strPtr(name)}}
}

func TestParseDocKind(t *testing.T) {
	tests := []struct {
		in   string
		want DocKind
	}{
		{"tuple", DocTuple},
		{"codeblock", DocCodeblock},
		{"search", DocSearch},
		{"", DocText},
		{"url", DocText},
		{"Tuple", DocText},
	}
	for _, tt := range tests {
		if got := ParseDocKind(tt.in); got != tt.want {
			t.Errorf("ParseDocKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNodeDocKindStub(t *testing.T) {
	if got := NewNode("x").DocKind(); got != DocText {
		t.Errorf("stub DocKind = %v, want text", got)
	}
}

func TestIsSystem(t *testing.T) {
	if !NewNode("SYS_FOO").IsSystem() {
		t.Error("expected SYS_FOO to be a system node")
	}
	if NewNode("FOO_SYS").IsSystem() {
		t.Error("expected FOO_SYS not to be a system node")
	}
}

func TestInTrash(t *testing.T) {
	trash := &Node{ID: "ws_TRASH", Props: &Props{}}
	direct := &Node{ID: "a", Props: &Props{Owner: trash}}
	nested := &Node{ID: "b", Props: &Props{Owner: direct}}
	clean := &Node{ID: "c", Props: &Props{Owner: &Node{ID: "root", Props: &Props{}}}}

	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"trash id", trash, true},
		{"owned by trash", direct, true},
		{"transitively owned by trash", nested, true},
		{"clean owner chain", clean, false},
		{"stub", NewNode("stub"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.InTrash(); got != tt.want {
				t.Errorf("InTrash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInTrashOwnerCycle(t *testing.T) {
	a := &Node{ID: "a", Props: &Props{}}
	b := &Node{ID: "b", Props: &Props{Owner: a}}
	a.Props.Owner = b

	if a.InTrash() {
		t.Error("expected cyclic owner chain without trash to report false")
	}

	trash := &Node{ID: "x_TRASH", Props: &Props{Owner: a}}
	b.Props.Owner = trash
	if !a.InTrash() {
		t.Error("expected cycle passing through trash to report true")
	}
}

func TestTagList(t *testing.T) {
	marker := NewNode(SupertagMarkerID)

	t.Run("no meta node", func(t *testing.T) {
		tags, err := named("a", "A").TagList()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 0 {
			t.Errorf("expected no tags, got %v", tags)
		}
	})

	t.Run("supertag declaration", func(t *testing.T) {
		meta := &Node{ID: "meta", Props: &Props{}, Children: []*Node{
			tuple("other", NewNode("SYS_A11"), named("c", "red")),
			tuple("decl", marker, named("t1", "important"), named("t2", "todo")),
		}}
		n := &Node{ID: "a", Props: &Props{Meta: meta}}

		tags, err := n.TagList()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []string{"important", "todo"}; !reflect.DeepEqual(tags, want) {
			t.Errorf("TagList() = %v, want %v", tags, want)
		}
	})

	t.Run("non tuple children ignored", func(t *testing.T) {
		meta := &Node{ID: "meta", Props: &Props{}, Children: []*Node{
			{ID: "plain", Props: &Props{}, Children: []*Node{marker, named("t", "x")}},
			NewNode("stub"),
			tuple("empty"),
		}}
		n := &Node{ID: "a", Props: &Props{Meta: meta}}

		tags, err := n.TagList()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 0 {
			t.Errorf("expected no tags, got %v", tags)
		}
	})

	t.Run("unnamed tag node", func(t *testing.T) {
		meta := &Node{ID: "meta", Props: &Props{}, Children: []*Node{
			tuple("decl", marker, NewNode("nameless")),
		}}
		n := &Node{ID: "a", Props: &Props{Meta: meta}}

		_, err := n.TagList()
		if !errors.Is(err, ErrUnnamedSupertag) {
			t.Fatalf("expected ErrUnnamedSupertag, got %v", err)
		}
	})
}
