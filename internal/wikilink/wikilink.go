// Package wikilink formats and scans outline page links.
//
// Link grammar:
//
//	[[title]]
//
// The title is taken verbatim. A title may itself contain links
// ("See [[Target]] for details"); scanning reports the innermost ones.
package wikilink

import (
	"regexp"
	"strings"
)

// Match is a link found in a line.
type Match struct {
	Target  string
	Start   int
	End     int
	Literal string
}

// re matches innermost [[target]] links.
var re = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// Format returns the link text for a page title.
func Format(title string) string {
	return "[[" + title + "]]"
}

// IsLink reports whether s is exactly one link literal.
func IsLink(s string) bool {
	if !strings.HasPrefix(s, "[[") || !strings.HasSuffix(s, "]]") {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// FindAll returns the innermost links in line, in order.
func FindAll(line string) []Match {
	var out []Match
	for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
		out = append(out, Match{
			Target:  line[m[2]:m[3]],
			Start:   m[0],
			End:     m[1],
			Literal: line[m[0]:m[1]],
		})
	}
	return out
}

// Targets returns the distinct link targets across lines, in first-seen order.
func Targets(lines []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range lines {
		for _, m := range FindAll(line) {
			if _, ok := seen[m.Target]; ok {
				continue
			}
			seen[m.Target] = struct{}{}
			out = append(out, m.Target)
		}
	}
	return out
}
