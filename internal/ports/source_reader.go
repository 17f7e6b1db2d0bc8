package ports

import "context"

// SourceReader retrieves the raw bytes of a source without parsing them.
// Resolvers that parse markup typically also expose their retrieval step
// through this port so other consumers (e.g. JSON extraction) can share it.
type SourceReader interface {
	ReadSource(ctx context.Context, source string) ([]byte, error)
}
