package usecase

import (
	"context"
	"testing"

	"github.com/srazash/linkledger/internal/domain"
)

type fakeResolver struct {
	called int
	doc    domain.Document
	err    error
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (domain.Document, error) {
	f.called++
	return f.doc, f.err
}

func TestIsWebSource(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"https://example.com/page", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"./relative/page.html", false},
		{"/abs/path/page.html", false},
		{"page.html", false},
	}

	for _, tc := range cases {
		if got := IsWebSource(tc.source); got != tc.want {
			t.Fatalf("IsWebSource(%q) = %v, want %v", tc.source, got, tc.want)
		}
	}
}

func TestResolveDocument_PicksStrategyFromSource(t *testing.T) {
	web := &fakeResolver{doc: fakeDocument{}}
	file := &fakeResolver{doc: fakeDocument{}}
	uc := NewResolveDocument(web, file)

	if _, err := uc.Execute(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if web.called != 1 || file.called != 0 {
		t.Fatalf("expected web strategy, got web=%d file=%d", web.called, file.called)
	}

	if _, err := uc.Execute(context.Background(), "local/page.html"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if web.called != 1 || file.called != 1 {
		t.Fatalf("expected file strategy, got web=%d file=%d", web.called, file.called)
	}
}

func TestResolveDocument_PropagatesErrorValue(t *testing.T) {
	wantErr := &domain.OpError{Op: "filedoc.read", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	uc := NewResolveDocument(&fakeResolver{}, &fakeResolver{err: wantErr})

	doc, err := uc.Execute(context.Background(), "missing.html")
	if doc != nil {
		t.Fatalf("expected nil document")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
