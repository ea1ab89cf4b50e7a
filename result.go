package hxattr

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
)

// Response collects HTMX response headers.
//
// Response is a fluent builder with value semantics: every method returns
// a modified copy and the zero value is ready to use. Headers are encoded
// when Headers or Apply is called.
//
//	resp := hxattr.Response{}.
//	    Trigger(hxattr.Simple("reload"), hxattr.Detailed("item:saved", item)).
//	    Retarget(hxattr.CSS("#list")).
//	    Reswap(hxattr.SwapBeforeEnd)
//	if err := resp.Apply(w); err != nil {
//	    return err
//	}
type Response struct {
	redirect           string
	refresh            bool
	pushURL            *string
	replaceURL         *string
	reswap             SwapStrategy
	retarget           *Selector
	reselect           string
	location           *Location
	trigger            []TriggerEvent
	triggerAfterSwap   []TriggerEvent
	triggerAfterSettle []TriggerEvent
	headers            [][2]string
}

// Redirect makes the client navigate to url with a full page load.
func (r Response) Redirect(url string) Response {
	r.redirect = url
	return r
}

// Refresh makes the client reload the page.
func (r Response) Refresh() Response {
	r.refresh = true
	return r
}

// PushURL pushes url onto the browser history.
func (r Response) PushURL(url string) Response {
	r.pushURL = &url
	return r
}

// NoPushURL prevents the history update an hx-push-url attribute would make.
func (r Response) NoPushURL() Response {
	v := strconv.FormatBool(false)
	r.pushURL = &v
	return r
}

// ReplaceURL replaces the current location in the browser history.
func (r Response) ReplaceURL(url string) Response {
	r.replaceURL = &url
	return r
}

// Reswap overrides the element's hx-swap.
func (r Response) Reswap(s SwapStrategy) Response {
	r.reswap = s
	return r
}

// Retarget overrides the element's hx-target.
func (r Response) Retarget(sel Selector) Response {
	r.retarget = &sel
	return r
}

// Reselect overrides the element's hx-select.
func (r Response) Reselect(css string) Response {
	r.reselect = css
	return r
}

// Location performs a client-side navigation without a full reload.
func (r Response) Location(loc Location) Response {
	r.location = &loc
	return r
}

// Trigger fires events as soon as the response is received. Repeated
// calls accumulate events in call order.
func (r Response) Trigger(events ...TriggerEvent) Response {
	r.trigger = appendEvents(r.trigger, events)
	return r
}

// TriggerAfterSwap fires events after the swap step.
func (r Response) TriggerAfterSwap(events ...TriggerEvent) Response {
	r.triggerAfterSwap = appendEvents(r.triggerAfterSwap, events)
	return r
}

// TriggerAfterSettle fires events after the settle step.
func (r Response) TriggerAfterSettle(events ...TriggerEvent) Response {
	r.triggerAfterSettle = appendEvents(r.triggerAfterSettle, events)
	return r
}

// Header sets an arbitrary response header. Later values for the same
// key win.
func (r Response) Header(key, value string) Response {
	r.headers = append(slices.Clip(r.headers), [2]string{key, value})
	return r
}

// appendEvents never writes into a backing array shared with another copy.
func appendEvents(dst, events []TriggerEvent) []TriggerEvent {
	return append(slices.Clip(dst), events...)
}

// Headers encodes every header that has been set.
func (r Response) Headers() (http.Header, error) {
	h := make(http.Header)

	for _, kv := range r.headers {
		h.Set(kv[0], kv[1])
	}
	if r.redirect != "" {
		h.Set(HeaderRedirect, r.redirect)
	}
	if r.refresh {
		h.Set(HeaderRefresh, "true")
	}
	if r.pushURL != nil {
		h.Set(HeaderPushURL, *r.pushURL)
	}
	if r.replaceURL != nil {
		h.Set(HeaderReplaceURL, *r.replaceURL)
	}
	if r.reswap != nil {
		h.Set(HeaderReswap, r.reswap.String())
	}
	if r.retarget != nil {
		h.Set(HeaderRetarget, r.retarget.String())
	}
	if r.reselect != "" {
		h.Set(HeaderReselect, r.reselect)
	}
	if r.location != nil {
		v, err := r.location.Encode()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", HeaderLocation, err)
		}
		h.Set(HeaderLocation, v)
	}

	triggers := []struct {
		name   string
		events []TriggerEvent
	}{
		{HeaderTrigger, r.trigger},
		{HeaderTriggerAfterSwap, r.triggerAfterSwap},
		{HeaderTriggerAfterSettle, r.triggerAfterSettle},
	}
	for _, t := range triggers {
		if len(t.events) == 0 {
			continue
		}
		v, err := EncodeTriggers(t.events...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
		h.Set(t.name, v)
	}

	return h, nil
}

// Apply writes the headers onto w. Nothing is written if encoding fails.
// Call Apply before w.WriteHeader or the first Write.
func (r Response) Apply(w http.ResponseWriter) error {
	h, err := r.Headers()
	if err != nil {
		return err
	}
	dst := w.Header()
	for k, v := range h {
		dst[k] = v
	}
	return nil
}
