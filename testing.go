package hxattr

import (
	"net/http"
	"net/http/httptest"
	"slices"
)

// TestResult holds the headers a Response produced, for assertions in
// handler tests.
type TestResult struct {
	Headers           http.Header
	TriggeredEvents   []string
	AfterSwapEvents   []string
	AfterSettleEvents []string
	RedirectURL       string
	LocationHeader    string
}

// RecordResponse applies resp to an httptest.ResponseRecorder and parses
// the result:
//
//	result, err := hxattr.RecordResponse(resp)
//	if !result.HasEvent("item:saved") {
//	    t.Fatal("missing event")
//	}
func RecordResponse(resp Response) (*TestResult, error) {
	rec := httptest.NewRecorder()
	if err := resp.Apply(rec); err != nil {
		return nil, err
	}
	return ParseResponse(rec.Result()), nil
}

// ParseResponse extracts HTMX headers from a recorded response.
func ParseResponse(res *http.Response) *TestResult {
	h := res.Header
	return &TestResult{
		Headers:           h,
		TriggeredEvents:   ParseTriggerNames(h.Get(HeaderTrigger)),
		AfterSwapEvents:   ParseTriggerNames(h.Get(HeaderTriggerAfterSwap)),
		AfterSettleEvents: ParseTriggerNames(h.Get(HeaderTriggerAfterSettle)),
		RedirectURL:       h.Get(HeaderRedirect),
		LocationHeader:    h.Get(HeaderLocation),
	}
}

// HasEvent checks if event appears in HX-Trigger.
func (r *TestResult) HasEvent(event string) bool {
	return slices.Contains(r.TriggeredEvents, event)
}

// WasRedirected checks if HX-Redirect was set.
func (r *TestResult) WasRedirected() bool {
	return r.RedirectURL != ""
}

// HasHeader checks if a header has a specific value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}
