// Package slugs turns page titles into file names.
//
// Two strategies exist:
//   - FileName keeps the title as written and only replaces characters that
//     cannot appear in a single path component.
//   - Slug lowercases and transliterates through gosimple/slug, for exports
//     whose titles are unfriendly to the target file system.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

const extension = ".md"

var unsafe = strings.NewReplacer("/", "-", "\\", "-", "\x00", "")

// FileName returns "<title>.md" with path separators replaced by dashes.
func FileName(title string) string {
	name := unsafe.Replace(title)
	if name == "." || name == ".." || strings.TrimSpace(name) == "" {
		name = Slug(title)
	}
	return name + extension
}

// SlugFileName returns the slugged title plus ".md".
func SlugFileName(title string) string {
	return Slug(title) + extension
}

// Slug converts a title to a URL-safe slug, falling back to a dashed
// lowercase form when gosimple/slug strips everything.
func Slug(s string) string {
	s = strings.TrimSuffix(s, extension)
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(unsafe.Replace(strings.TrimSpace(s)), " ", "-"))
	}
	if slugged == "" || slugged == "." || slugged == ".." {
		slugged = "untitled"
	}
	return slugged
}
