// Package webdoc is the network strategy of the document resolver: it
// fetches a URL over HTTP and parses the body as markup.
package webdoc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/infra/htmldoc"
	"github.com/srazash/linkledger/internal/ports"
)

const defaultMaxBodyBytes = 1 << 20 // 1MB

type Resolver struct {
	client       *http.Client
	maxBodyBytes int64
}

type Option func(*Resolver)

func WithMaxBodyBytes(n int64) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxBodyBytes = n
		}
	}
}

func New(client *http.Client, opts ...Option) *Resolver {
	r := &Resolver{
		client:       client,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
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

// ReadSource performs the GET and returns the (bounded) response body.
func (r *Resolver) ReadSource(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "webdoc.read",
			Kind: domain.KindInvalidConfig,
			Path: source,
			Err:  err,
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "webdoc.read",
			Kind: domain.KindExecution,
			Path: source,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.OpError{
			Op:   "webdoc.read",
			Kind: domain.KindExecution,
			Path: source,
			Err:  fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := readBounded(resp.Body, r.maxBodyBytes)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "webdoc.read",
			Kind: domain.KindExecution,
			Path: source,
			Err:  err,
		}
	}
	return body, nil
}

// readBounded reads at most maxBytes. A longer body is an error rather than
// a silent truncation, since a cut-off document would parse misleadingly.
func readBounded(r io.Reader, maxBytes int64) ([]byte, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > maxBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", maxBytes)
	}
	return b, nil
}
