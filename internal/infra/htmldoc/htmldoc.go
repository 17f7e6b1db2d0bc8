// Package htmldoc adapts goquery into the domain's Document/Element model.
package htmldoc

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/srazash/linkledger/internal/domain"
)

// Parse turns raw markup into a queryable domain.Document.
func Parse(body []byte) (domain.Document, error) {
	gd, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "htmldoc.parse",
			Kind: domain.KindParse,
			Err:  err,
		}
	}
	return &document{doc: gd}, nil
}

type document struct {
	doc *goquery.Document
}

var _ domain.Document = (*document)(nil)

func (d *document) Descendants(tag string) []domain.Element {
	out := []domain.Element{}
	d.doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
		out = append(out, &element{sel: sel})
	})
	return out
}

type element struct {
	sel *goquery.Selection
}

var _ domain.Element = (*element)(nil)

func (e *element) Tag() string {
	return goquery.NodeName(e.sel)
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}
