package hxattr

import (
	"encoding/json"
	"net/http"

	"github.com/pthm/hxattr/lib/encoding"
)

// JSON is an hx-vals or hx-headers value: literal JSON text, or a
// JavaScript expression evaluated on the client (rendered with a "js:"
// prefix).
type JSON struct {
	text string
	js   bool
}

// MarshalJSON encodes v with encoding/json. Encoding errors are returned
// unchanged.
func MarshalJSON(v any) (JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return JSON{}, err
	}
	return JSON{text: string(data)}, nil
}

// RawJSON uses s verbatim. It is not validated.
func RawJSON(s string) JSON {
	return JSON{text: s}
}

// JS evaluates expr on the client: js:{lastKey: event.key}.
func JS(expr string) JSON {
	return JSON{text: expr, js: true}
}

// IsJS reports whether the value is evaluated client-side.
func (j JSON) IsJS() bool {
	return j.js
}

// String returns the attribute value.
func (j JSON) String() string {
	if j.js {
		return "js:" + j.text
	}
	return j.text
}

// SignedVals encodes v into a tamper-proof token and wraps it as
// {"<key>":"<token>"}, ready for hx-vals. The server reads it back with
// DecodeVals.
//
// Signed tokens are visible but tamper-proof; sensitive tokens are
// encrypted and opaque to clients.
func SignedVals(codec *encoding.Codec, key string, v any, sensitive bool) (JSON, error) {
	token, err := codec.Encode(v, sensitive)
	if err != nil {
		return JSON{}, wrapEncodingError(err)
	}
	return MarshalJSON(map[string]string{key: token})
}

// DecodeVals reads the token posted under key and decodes it into v.
// Returns ErrInvalidFormat if the value is missing.
func DecodeVals(codec *encoding.Codec, r *http.Request, key string, sensitive bool, v any) error {
	token := r.FormValue(key)
	if token == "" {
		return ErrInvalidFormat
	}
	return wrapEncodingError(codec.Decode(token, sensitive, v))
}
