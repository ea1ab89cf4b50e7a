// Package hx provides one function per HTMX attribute. Each returns
// templ.Attributes holding a single attribute, ready to spread onto an
// element:
//
//	<button { hx.Merge(
//	    hx.Post("/todos"),
//	    hx.Target(hxattr.Closest("ul")),
//	    hx.Swap(hxattr.SwapBeforeEnd),
//	)... }>Add</button>
//
// Values are encoded by package hxattr; nothing here validates them.
package hx

import (
	"maps"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/hxattr"
)

func attr(name, value string) templ.Attributes {
	return templ.Attributes{name: value}
}

// Merge combines attribute sets. Later keys win.
func Merge(attrs ...templ.Attributes) templ.Attributes {
	out := templ.Attributes{}
	for _, a := range attrs {
		maps.Copy(out, a)
	}
	return out
}

// Get issues a GET to url.
func Get(url string) templ.Attributes { return attr("hx-get", url) }

// Post issues a POST to url.
func Post(url string) templ.Attributes { return attr("hx-post", url) }

// Put issues a PUT to url.
func Put(url string) templ.Attributes { return attr("hx-put", url) }

// Patch issues a PATCH to url.
func Patch(url string) templ.Attributes { return attr("hx-patch", url) }

// Delete issues a DELETE to url.
func Delete(url string) templ.Attributes { return attr("hx-delete", url) }

// Request picks the hx-* verb attribute for an HTTP method. An empty or
// unknown method falls back to hx-get.
func Request(method, url string) templ.Attributes {
	switch strings.ToUpper(method) {
	case http.MethodPost:
		return Post(url)
	case http.MethodPut:
		return Put(url)
	case http.MethodPatch:
		return Patch(url)
	case http.MethodDelete:
		return Delete(url)
	default:
		return Get(url)
	}
}

// Trigger sets hx-trigger from one or more triggers.
func Trigger(ts ...hxattr.Trigger) templ.Attributes {
	return attr("hx-trigger", hxattr.Triggers(ts...))
}

// Target sets hx-target.
func Target(sel hxattr.Selector) templ.Attributes {
	return attr("hx-target", sel.String())
}

// Include sets hx-include.
func Include(sel hxattr.Selector) templ.Attributes {
	return attr("hx-include", sel.String())
}

// Indicator sets hx-indicator.
func Indicator(sel hxattr.Selector) templ.Attributes {
	return attr("hx-indicator", sel.String())
}

// Swap sets hx-swap.
func Swap(s hxattr.SwapStrategy) templ.Attributes {
	return attr("hx-swap", s.String())
}

// SwapOOB sets hx-swap-oob.
func SwapOOB(o hxattr.OOBSwap) templ.Attributes {
	return attr("hx-swap-oob", o.String())
}

// Select sets hx-select, optionally suffixed with swap keywords:
// "#content:innerHTML".
func Select(css string, swaps ...hxattr.Swap) templ.Attributes {
	return attr("hx-select", withSwaps(css, swaps))
}

// SelectOOB sets hx-select-oob, optionally suffixed with swap keywords.
func SelectOOB(css string, swaps ...hxattr.Swap) templ.Attributes {
	return attr("hx-select-oob", withSwaps(css, swaps))
}

func withSwaps(css string, swaps []hxattr.Swap) string {
	if len(swaps) == 0 {
		return css
	}
	parts := make([]string, len(swaps))
	for i, s := range swaps {
		parts[i] = string(s)
	}
	return css + ":" + strings.Join(parts, ",")
}

// Sync sets hx-sync.
func Sync(syncs ...hxattr.Sync) templ.Attributes {
	return attr("hx-sync", hxattr.Syncs(syncs...))
}

// Vals sets hx-vals.
func Vals(j hxattr.JSON) templ.Attributes {
	return attr("hx-vals", j.String())
}

// Headers sets hx-headers.
func Headers(j hxattr.JSON) templ.Attributes {
	return attr("hx-headers", j.String())
}

// PushURL toggles pushing the request URL into history.
func PushURL(on bool) templ.Attributes {
	return attr("hx-push-url", strconv.FormatBool(on))
}

// PushURLTo pushes url into history instead of the request URL.
func PushURLTo(url string) templ.Attributes {
	return attr("hx-push-url", url)
}

// ReplaceURL toggles replacing the current history entry.
func ReplaceURL(on bool) templ.Attributes {
	return attr("hx-replace-url", strconv.FormatBool(on))
}

// Boost toggles hx-boost.
func Boost(on bool) templ.Attributes {
	return attr("hx-boost", strconv.FormatBool(on))
}

// Validate toggles form validation before the request.
func Validate(on bool) templ.Attributes {
	return attr("hx-validate", strconv.FormatBool(on))
}

// Confirm shows a confirm() dialog before the request.
func Confirm(text string) templ.Attributes {
	return attr("hx-confirm", text)
}

// Prompt shows a prompt() before the request; the answer is sent in
// the HX-Prompt header.
func Prompt(text string) templ.Attributes {
	return attr("hx-prompt", text)
}

// DisabledElt disables the matching elements while a request is in flight.
func DisabledElt(sels ...hxattr.Selector) templ.Attributes {
	return attr("hx-disabled-elt", hxattr.Selectors(sels...))
}

// DisabledEltAll is a shorthand for hx-disabled-elt="*".
func DisabledEltAll() templ.Attributes {
	return attr("hx-disabled-elt", "*")
}

// Disinherit stops the named attributes from being inherited. With no
// names, every attribute is disinherited ("*").
func Disinherit(names ...string) templ.Attributes {
	return attr("hx-disinherit", nameList(names))
}

// Inherit explicitly enables inheritance of the named attributes, or of
// all of them ("*") when none are given.
func Inherit(names ...string) templ.Attributes {
	return attr("hx-inherit", nameList(names))
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "*"
	}
	return strings.Join(names, " ")
}

// Hyperscript sets the _ attribute read by hyperscript.
func Hyperscript(script string) templ.Attributes {
	return attr("_", script)
}

// On handles event with inline script: hx-on:<event>.
func On(event, script string) templ.Attributes {
	return attr("hx-on:"+event, script)
}
