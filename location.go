package hxattr

import (
	"encoding/json"
	"maps"
)

// Location configures an HX-Location response header: a client-side
// navigation that issues an AJAX request without a full page reload.
//
// Location is an immutable builder; every With method returns a copy
// with one field replaced:
//
//	loc := hxattr.NewLocation("/dashboard").
//	    WithTarget("#main").
//	    WithSwap(hxattr.SwapInnerHTML)
//	v, err := loc.Encode()
//	// {"path":"/dashboard","target":"#main","swap":"innerHTML"}
//
// An optional field is emitted only if its setter was called, even with
// an empty value.
type Location struct {
	path      string
	source    *string
	event     *string
	handler   *string
	target    *string
	swap      *string
	values    any
	hasValues bool
	headers   *map[string]string
	selection *string
}

// locationJSON fixes the emitted field order.
type locationJSON struct {
	Path    string             `json:"path"`
	Source  *string            `json:"source,omitempty"`
	Event   *string            `json:"event,omitempty"`
	Handler *string            `json:"handler,omitempty"`
	Target  *string            `json:"target,omitempty"`
	Swap    *string            `json:"swap,omitempty"`
	Values  *json.RawMessage   `json:"values,omitempty"`
	Headers *map[string]string `json:"headers,omitempty"`
	Select  *string            `json:"select,omitempty"`
}

// NewLocation creates a Location for path with no options set.
func NewLocation(path string) Location {
	return Location{path: path}
}

// LocationPath returns the bare-path form of an HX-Location value.
func LocationPath(path string) string {
	return path
}

// Path returns the location path.
func (l Location) Path() string {
	return l.path
}

// WithSource sets the source element of the request.
func (l Location) WithSource(css string) Location {
	l.source = &css
	return l
}

// WithEvent sets the event that "triggered" the request.
func (l Location) WithEvent(name string) Location {
	l.event = &name
	return l
}

// WithHandler sets a JavaScript callback that handles the response.
func (l Location) WithHandler(fn string) Location {
	l.handler = &fn
	return l
}

// WithTarget sets the element to swap the response into.
func (l Location) WithTarget(css string) Location {
	l.target = &css
	return l
}

// WithSwap sets how the response is swapped into the target.
func (l Location) WithSwap(s SwapStrategy) Location {
	v := s.String()
	l.swap = &v
	return l
}

// WithValues sets values submitted with the request. v is encoded with
// encoding/json when the header is built.
func (l Location) WithValues(v any) Location {
	l.values = v
	l.hasValues = true
	return l
}

// WithHeaders sets headers submitted with the request.
func (l Location) WithHeaders(h map[string]string) Location {
	c := maps.Clone(h)
	if c == nil {
		c = map[string]string{}
	}
	l.headers = &c
	return l
}

// WithSelect selects the content to swap from the response.
func (l Location) WithSelect(css string) Location {
	l.selection = &css
	return l
}

// HasOptions reports whether any field beyond the path is set.
func (l Location) HasOptions() bool {
	return l.source != nil || l.event != nil || l.handler != nil ||
		l.target != nil || l.swap != nil || l.hasValues ||
		l.headers != nil || l.selection != nil
}

// Encode returns the bare path when no option is set, and the JSON
// object form otherwise.
func (l Location) Encode() (string, error) {
	if !l.HasOptions() {
		return l.path, nil
	}
	return l.EncodeJSON()
}

// EncodeJSON always returns the compact JSON object form, with fields in
// the order path, source, event, handler, target, swap, values, headers,
// select. Errors from encoding the values are returned unchanged.
func (l Location) EncodeJSON() (string, error) {
	out := locationJSON{
		Path:    l.path,
		Source:  l.source,
		Event:   l.event,
		Handler: l.handler,
		Target:  l.target,
		Swap:    l.swap,
		Headers: l.headers,
		Select:  l.selection,
	}
	if l.hasValues {
		raw, err := json.Marshal(l.values)
		if err != nil {
			return "", err
		}
		msg := json.RawMessage(raw)
		out.Values = &msg
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
