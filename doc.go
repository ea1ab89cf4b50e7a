// Package hxattr builds the strings HTMX reads from hx-* attributes and
// HX-* response headers, from typed values instead of hand-written
// micro-syntax.
//
// Every encoder is a pure function over an immutable value, so values can
// be shared and reused freely across goroutines.
//
// # Attribute values
//
// Selectors, durations, triggers, swaps and sync policies are small value
// types with a String method that renders HTMX syntax:
//
//	hxattr.On("keyup", hxattr.Changed(), hxattr.Delay(hxattr.Milliseconds(500))).String()
//	// keyup changed delay:500ms
//
//	hxattr.SwapBeforeEnd.With(hxattr.ScrollTo(hxattr.Edge(hxattr.Bottom))).String()
//	// beforeend scroll:bottom
//
//	hxattr.Syncs(hxattr.SyncDrop(hxattr.CSS("#form1")), hxattr.SyncAbort(hxattr.CSS("#form2")))
//	// #form1:drop #form2:abort
//
// Durations keep their unit: Seconds(2) is "2s", Milliseconds(2000) is
// "2000ms". Modifiers render in the order they were added.
//
// Package hx wraps each attribute as templ.Attributes.
//
// # Response headers
//
// EncodeTriggers and Location produce HX-Trigger and HX-Location values.
// Response collects every HX-* response header and writes them onto an
// http.ResponseWriter:
//
//	err := hxattr.Response{}.
//	    Trigger(hxattr.Simple("reload"), hxattr.Detailed("update", map[string]int{"count": 5})).
//	    Apply(w)
//	// HX-Trigger: {"reload":null,"update":{"count":5}}
//
// Mixing simple and detailed events forces the JSON form.
//
// # Signed values
//
// SignedVals packs server state into hx-vals as a signed (or encrypted)
// msgpack token, and DecodeVals verifies it on the next request.
//
// # Validation
//
// None. Selector text, JavaScript and raw JSON pass through verbatim; the
// closed set of constructors is the only check.
package hxattr
