package graph

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/aidanlsb/tanaout/internal/export"
	"github.com/aidanlsb/tanaout/internal/model"
	"github.com/aidanlsb/tanaout/internal/testutil"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func build(t *testing.T, doc *export.Document) *Builder {
	t.Helper()
	b := New(quietLogger())
	b.Load(doc)
	b.BuildAll()
	return b
}

func childIDs(n *model.Node) []string {
	ids := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestBuildAllResolvesLinks(t *testing.T) {
	doc := testutil.NewTestExport(t).
		Add("root", testutil.Name("Root"), testutil.Children("a", "b")).
		Add("a", testutil.Name("A"), testutil.Owner("root"), testutil.Source("b")).
		Add("b", testutil.Name("B"), testutil.Owner("root"), testutil.Meta("m")).
		Add("m", testutil.Owner("b")).
		Document()

	b := build(t, doc)

	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}

	root := b.Get("root")
	if got := childIDs(root); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("root children = %v", got)
	}

	a := b.Get("a")
	if a.Owner() != root {
		t.Error("expected a's owner to be root")
	}
	if a.Source() != b.Get("b") {
		t.Error("expected a's source to be b")
	}
	if b.Get("b").Meta() != b.Get("m") {
		t.Error("expected b's meta to be m")
	}
	if root.Children[1] != b.Get("b") {
		t.Error("expected children to share the resolved node")
	}
}

func TestBuildAllIdempotent(t *testing.T) {
	doc := testutil.NewTestExport(t).
		Add("root", testutil.Children("a")).
		Add("a").
		Document()

	b := build(t, doc)
	b.BuildAll()

	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if got := childIDs(b.Get("root")); len(got) != 1 {
		t.Errorf("expected one child after rebuilding, got %v", got)
	}
}

func TestBuildAllOrderIndependent(t *testing.T) {
	fixture := testutil.NewTestExport(t).
		Add("z", testutil.Children("y", "missing")).
		Add("y", testutil.Owner("x"), testutil.Children("z")).
		Add("x", testutil.Meta("w")).
		Add("w", testutil.Bare()).
		Add("lonely")
	forward := fixture.Document()

	reversed := &export.Document{FormatVersion: forward.FormatVersion}
	for i := len(forward.Docs) - 1; i >= 0; i-- {
		reversed.Docs = append(reversed.Docs, forward.Docs[i])
	}

	a := build(t, forward)
	b := build(t, reversed)

	if a.Len() != 5 || b.Len() != 5 {
		t.Fatalf("Len() = %d and %d, want 5", a.Len(), b.Len())
	}
	for _, n := range a.Nodes() {
		other := b.Get(n.ID)
		if other == nil {
			t.Fatalf("node %s missing from reversed build", n.ID)
		}
		if len(other.Children) != len(n.Children) {
			t.Errorf("node %s: %d children vs %d", n.ID, len(n.Children), len(other.Children))
		}
	}
}

func TestBuildAllDanglingReferences(t *testing.T) {
	doc := testutil.NewTestExport(t).
		Add("root", testutil.Owner("gone"), testutil.Meta("gone2"), testutil.Children("a", "nope", "b")).
		Add("a").
		Add("b").
		Document()

	b := build(t, doc)

	root := b.Get("root")
	if got := childIDs(root); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("root children = %v, want [a b]", got)
	}
	if root.Owner() != nil || root.Meta() != nil {
		t.Error("expected dangling owner and meta to be unset")
	}
	if b.Contains("nope") {
		t.Error("dangling id should not be resolved")
	}
	if st := b.Stats(); st.Dangling != 3 {
		t.Errorf("Dangling = %d, want 3", st.Dangling)
	}
}

func TestBuildAllCycles(t *testing.T) {
	doc := testutil.NewTestExport(t).
		Add("a", testutil.Owner("b"), testutil.Children("b")).
		Add("b", testutil.Owner("a"), testutil.Children("a", "b")).
		Document()

	b := build(t, doc)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if got := childIDs(b.Get("b")); len(got) != 2 {
		t.Errorf("b children = %v", got)
	}
	if b.Get("a").Owner() != b.Get("b") {
		t.Error("expected a's owner to be b")
	}
}

func TestBuildAllStubs(t *testing.T) {
	doc := testutil.NewTestExport(t).
		Add("root", testutil.Children("stub")).
		Add("stub", testutil.Bare(), testutil.Children("leaf")).
		Add("leaf").
		Document()

	b := build(t, doc)

	stub := b.Get("stub")
	if stub.HasProps() {
		t.Error("expected stub to have no props")
	}
	if got := childIDs(stub); len(got) != 1 || got[0] != "leaf" {
		t.Errorf("stub children = %v, want [leaf]", got)
	}
	if st := b.Stats(); st.Stubs != 1 || st.Records != 3 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestTuplesSortFirst(t *testing.T) {
	doc := testutil.NewTestExport(t).
		Add("root", testutil.Children("t1", "x1", "t2", "x2", "c1", "t3")).
		Add("t1").
		Add("t2").
		Add("t3").
		Add("x1", testutil.Kind("tuple")).
		Add("x2", testutil.Kind("tuple")).
		Add("c1", testutil.Kind("codeblock")).
		Document()

	b := build(t, doc)

	got := childIDs(b.Get("root"))
	want := []string{"x1", "x2", "t1", "t2", "c1", "t3"}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("children = %v, want %v", got, want)
			break
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := testutil.NewTestExport(t).
		Add("a", testutil.Name("A")).
		WriteFile()

	b := New(quietLogger())
	if err := b.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.BuildAll()
	if name := b.Get("a").Name(); name == nil || *name != "A" {
		t.Errorf("unexpected name %v", name)
	}

	if err := New(nil).LoadFile(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}
