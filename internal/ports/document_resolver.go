package ports

import (
	"context"

	"github.com/srazash/linkledger/internal/domain"
)

// DocumentResolver retrieves a source (URL or file path) and parses it into
// a Document. Failures come back as error values, never panics.
type DocumentResolver interface {
	Resolve(ctx context.Context, source string) (domain.Document, error)
}
