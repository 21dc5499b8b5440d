package pages

import (
	"regexp"
	"strings"
)

// inlineRefRe matches the text before an inline reference span and the
// span's quoted node ID.
var inlineRefRe = regexp.MustCompile(`(.*?)<span data-inlineref-node=(.*?)></span>`)

// resolveTitle replaces every inline reference in name with a link to the
// referenced block, building that block first if needed. References to
// unknown nodes are left as written.
func (b *Builder) resolveTitle(name string) (string, error) {
	matches := inlineRefRe.FindAllStringSubmatchIndex(name, -1)
	if len(matches) == 0 {
		return name, nil
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(name[last:m[0]])
		last = m[1]

		prefix := name[m[2]:m[3]]
		id := unquote(name[m[4]:m[5]])

		node := b.nodes.Get(id)
		if node == nil || !node.HasProps() {
			b.logger.Debug("unresolved inline reference", "id", id)
			sb.WriteString(name[m[0]:m[1]])
			continue
		}

		ref, err := b.build(node)
		if err != nil {
			return "", err
		}
		sb.WriteString(prefix)
		sb.WriteString(ref.Link())
	}
	sb.WriteString(name[last:])
	return sb.String(), nil
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
