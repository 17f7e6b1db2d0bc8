package domain

// Document is a parsed in-memory representation of a markup source.
// It is immutable once produced by a resolver and queried read-only.
type Document interface {
	// Descendants returns every element in the document matching the tag
	// name, in document order.
	Descendants(tag string) []Element
}

// Element is a node within a Document reachable via a tag-name query.
type Element interface {
	Tag() string
	Attr(name string) (string, bool)
	Text() string
}
