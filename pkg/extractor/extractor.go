package extractor

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dtnitsch/item-labeler/models"
)

// ErrMissingPageTitle is returned when an item has no page title field.
var ErrMissingPageTitle = errors.New("item has no " + models.PageTitleField)

// RelevantText returns the first non-empty value among fields, in order.
// List values contribute their first element. Items without any of the
// fields fall back to their page title.
func RelevantText(item models.Item, fields []string) (string, error) {
	for _, field := range fields {
		if text, ok := textValue(item[field]); ok {
			return text, nil
		}
	}
	return PageTitle(item)
}

// PageTitle returns the item's page title as stored.
func PageTitle(item models.Item) (string, error) {
	raw, ok := item[models.PageTitleField]
	if !ok || raw == nil {
		return "", ErrMissingPageTitle
	}
	if list, isList := raw.([]any); isList {
		if len(list) == 0 {
			return "", ErrMissingPageTitle
		}
		raw = list[0]
	}
	return stringify(raw), nil
}

// textValue reports the usable text of a field value; empty strings,
// empty lists and missing fields are not usable.
func textValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return StripMarkup(v), true
	case []any:
		if len(v) == 0 {
			return "", false
		}
		return StripMarkup(stringify(v[0])), true
	case bool:
		if !v {
			return "", false
		}
		return stringify(v), true
	case float64:
		if v == 0 {
			return "", false
		}
		return stringify(v), true
	case map[string]any:
		if len(v) == 0 {
			return "", false
		}
		return stringify(v), true
	default:
		return stringify(v), true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// StripMarkup reduces HTML fragments to their text content.
// Text that is not well-formed markup made of known HTML elements, such as
// "<S24F350>" or "A<B123", is returned unchanged.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") || !isMarkup(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// isMarkup reports whether every byte of s tokenizes and every tag names a
// known HTML element.
func isMarkup(s string) bool {
	z := html.NewTokenizer(strings.NewReader(s))
	consumed := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return errors.Is(z.Err(), io.EOF) && consumed == len(s)
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == 0 {
				return false
			}
		}
		consumed += len(z.Raw())
	}
}
