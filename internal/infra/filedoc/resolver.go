// Package filedoc is the filesystem strategy of the document resolver: it
// reads a local file and parses its contents as markup.
package filedoc

import (
	"context"
	"os"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/infra/htmldoc"
	"github.com/srazash/linkledger/internal/ports"
)

type Resolver struct{}

func New() *Resolver {
	return &Resolver{}
}

var (
	_ ports.DocumentResolver = (*Resolver)(nil)
	_ ports.SourceReader     = (*Resolver)(nil)
)

func (r *Resolver) Resolve(ctx context.Context, source string) (domain.Document, error) {
	body, err := r.ReadSource(ctx, source)
	if err != nil {
		return nil, err
	}
	return htmldoc.Parse(body)
}

// ReadSource reads the whole file. The file handle is released before
// returning, success or not.
func (r *Resolver) ReadSource(_ context.Context, source string) ([]byte, error) {
	b, err := os.ReadFile(source)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "filedoc.read",
			Kind: kind,
			Path: source,
			Err:  err,
		}
	}
	return b, nil
}
