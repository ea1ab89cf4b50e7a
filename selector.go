package hxattr

import "strings"

type selectorKind uint8

const (
	selectorCSS selectorKind = iota
	selectorThis
	selectorDocument
	selectorWindow
	selectorClosest
	selectorFind
	selectorNext
	selectorPrevious
)

// Selector is an HTMX extended CSS selector.
//
// HTMX accepts plain CSS anywhere a target is expected, plus a handful of
// relational keywords resolved against the element carrying the attribute:
//
//	hxattr.CSS("#results")       // #results
//	hxattr.This()                // this
//	hxattr.Closest("tr")         // closest tr
//	hxattr.Find(".error")        // find .error
//
// Selectors are values; the payload text is never escaped or validated.
// The zero Selector is plain CSS with empty text.
type Selector struct {
	kind  selectorKind
	value string
}

// CSS wraps a plain CSS selector.
func CSS(s string) Selector {
	return Selector{kind: selectorCSS, value: s}
}

// This targets the element the attribute is on.
func This() Selector {
	return Selector{kind: selectorThis}
}

// Document targets the document.
func Document() Selector {
	return Selector{kind: selectorDocument}
}

// Window targets the window.
func Window() Selector {
	return Selector{kind: selectorWindow}
}

// Closest finds the closest ancestor (or self) matching s.
func Closest(s string) Selector {
	return Selector{kind: selectorClosest, value: s}
}

// Find finds the first descendant matching s.
func Find(s string) Selector {
	return Selector{kind: selectorFind, value: s}
}

// Next scans forward in the DOM for the first element matching s.
func Next(s string) Selector {
	return Selector{kind: selectorNext, value: s}
}

// Previous scans backward in the DOM for the first element matching s.
func Previous(s string) Selector {
	return Selector{kind: selectorPrevious, value: s}
}

// String returns the selector in HTMX syntax.
func (s Selector) String() string {
	switch s.kind {
	case selectorThis:
		return "this"
	case selectorDocument:
		return "document"
	case selectorWindow:
		return "window"
	case selectorClosest:
		return "closest " + s.value
	case selectorFind:
		return "find " + s.value
	case selectorNext:
		return "next " + s.value
	case selectorPrevious:
		return "previous " + s.value
	default:
		return s.value
	}
}

// IsZero reports whether s is the zero Selector.
func (s Selector) IsZero() bool {
	return s == Selector{}
}

// Selectors joins several selectors with ", " for attributes that accept
// a selector list, such as hx-disabled-elt.
func Selectors(sels ...Selector) string {
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
