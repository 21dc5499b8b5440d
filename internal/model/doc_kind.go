package model

// DocKind is the closed set of document kinds a node can have.
type DocKind int

const (
	DocText DocKind = iota
	DocCodeblock
	DocSearch
	DocTuple
)

// ParseDocKind maps a raw _docType value to a DocKind. Unknown and empty
// values are Text.
func ParseDocKind(s string) DocKind {
	switch s {
	case "tuple":
		return DocTuple
	case "codeblock":
		return DocCodeblock
	case "search":
		return DocSearch
	default:
		return DocText
	}
}

func (k DocKind) String() string {
	switch k {
	case DocCodeblock:
		return "codeblock"
	case DocSearch:
		return "search"
	case DocTuple:
		return "tuple"
	default:
		return "text"
	}
}
