package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aidanlsb/tanaout/internal/atomicfile"
	"github.com/aidanlsb/tanaout/internal/slugs"
	"github.com/aidanlsb/tanaout/internal/wikilink"
)

// EmitOptions configures page emission.
type EmitOptions struct {
	// SlugFilenames writes slugged file names instead of the raw title.
	SlugFilenames bool
}

// Duplicate records a page skipped because an earlier page (by ID) already
// claimed its file name.
type Duplicate struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	File   string `yaml:"file"`
	KeptID string `yaml:"kept_id"`
}

// EmitResult summarizes an Emit call.
type EmitResult struct {
	Dir        string      `yaml:"dir"`
	Written    []string    `yaml:"written"`
	Duplicates []Duplicate `yaml:"duplicates,omitempty"`

	// Unresolved lists link targets in the written pages that match no page
	// title.
	Unresolved []string `yaml:"unresolved,omitempty"`
}

// Emit writes every page to dir as "<title>.md", creating dir if needed.
func (b *Builder) Emit(dir string, opts EmitOptions) (*EmitResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	pages := b.Pages()
	titles := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		titles[p.Title] = struct{}{}
	}

	res := &EmitResult{Dir: dir}
	claimed := make(map[string]string)
	unresolved := make(map[string]struct{})

	for _, p := range pages {
		name := slugs.FileName(p.Title)
		if opts.SlugFilenames {
			name = slugs.SlugFileName(p.Title)
		}

		if keptID, ok := claimed[name]; ok {
			b.logger.Warn("skipping page with duplicate file name", "id", p.ID, "file", name, "kept", keptID)
			res.Duplicates = append(res.Duplicates, Duplicate{ID: p.ID, Title: p.Title, File: name, KeptID: keptID})
			continue
		}
		claimed[name] = p.ID

		lines := p.Content(0, true)
		path := filepath.Join(dir, name)
		if err := atomicfile.WriteString(path, strings.Join(lines, "\n")); err != nil {
			return nil, fmt.Errorf("write page %s: %w", path, err)
		}
		b.logger.Debug("wrote page", "id", p.ID, "file", name, "lines", len(lines))
		res.Written = append(res.Written, name)

		for _, target := range wikilink.Targets(lines) {
			if _, ok := titles[target]; !ok {
				unresolved[target] = struct{}{}
			}
		}
	}

	for target := range unresolved {
		res.Unresolved = append(res.Unresolved, target)
	}
	sort.Strings(res.Unresolved)
	if len(res.Unresolved) > 0 {
		b.logger.Debug("links without a page", "count", len(res.Unresolved))
	}

	return res, nil
}
