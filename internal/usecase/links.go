package usecase

import "github.com/srazash/linkledger/internal/domain"

// Links returns the anchor elements of doc. The document is optional: an
// absent (nil) document yields an empty slice, not an error, so callers can
// chain a failed resolve without a separate guard.
func Links(doc domain.Document) []domain.Element {
	if doc == nil {
		return []domain.Element{}
	}
	return doc.Descendants("a")
}
