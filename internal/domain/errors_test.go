package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "test.op",
		Kind: KindParse,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindParse {
		t.Fatalf("expected kind %s, got %s", KindParse, got.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "test.op", Kind: KindEmptyAggregate, Err: ErrEmptyAggregate}

	if !IsKind(err, KindEmptyAggregate) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject a different kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected IsKind to reject a plain error")
	}
}

func TestOpErrorStringIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "filedoc.read",
		Kind: KindNotFound,
		Path: "/tmp/missing.html",
		Err:  ErrNotFound,
	}
	s := err.Error()
	if !strings.Contains(s, "filedoc.read") || !strings.Contains(s, "/tmp/missing.html") {
		t.Fatalf("unexpected error string: %s", s)
	}
}
