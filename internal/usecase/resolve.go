package usecase

import (
	"context"
	"net/url"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/ports"
)

// IsWebSource reports whether a source string names an HTTP(S) URL rather
// than a local file path.
func IsWebSource(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ResolveDocument picks the retrieval strategy from the source shape and
// delegates to it. Both strategies satisfy the same port, so callers only
// ever see a Document or an error value.
type ResolveDocument struct {
	web  ports.DocumentResolver
	file ports.DocumentResolver
}

func NewResolveDocument(web, file ports.DocumentResolver) *ResolveDocument {
	return &ResolveDocument{web: web, file: file}
}

func (uc *ResolveDocument) Execute(ctx context.Context, source string) (domain.Document, error) {
	if IsWebSource(source) {
		return uc.web.Resolve(ctx, source)
	}
	return uc.file.Resolve(ctx, source)
}
