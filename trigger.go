package hxattr

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TriggerEvent is a client-side event fired by an HX-Trigger family
// response header. It is either a bare name (Simple) or a name with a
// detail payload (Detailed).
type TriggerEvent struct {
	name     string
	detail   any
	detailed bool
}

// Simple fires name with no detail.
func Simple(name string) TriggerEvent {
	return TriggerEvent{name: name}
}

// Detailed fires name with payload as evt.detail. The payload is
// encoded with encoding/json; a json.RawMessage is embedded as-is.
func Detailed(name string, payload any) TriggerEvent {
	return TriggerEvent{name: name, detail: payload, detailed: true}
}

// Name returns the event name.
func (e TriggerEvent) Name() string {
	return e.name
}

// IsDetailed reports whether the event carries a payload.
func (e TriggerEvent) IsDetailed() bool {
	return e.detailed
}

// EncodeTriggers builds an HX-Trigger header value.
//
// Supports three cases:
//  1. No events: ""
//  2. Only simple events: names joined with ", " -> "reload, clearForm"
//  3. Any detailed event: one JSON object keyed by name, in input order,
//     with null for simple events -> {"reload":null,"update":{"count":5}}
//
// Mixing simple and detailed events always yields the JSON form. Payload
// encoding errors are returned unchanged.
func EncodeTriggers(events ...TriggerEvent) (string, error) {
	if len(events) == 0 {
		return "", nil
	}

	detailed := false
	for _, e := range events {
		if e.detailed {
			detailed = true
			break
		}
	}

	if !detailed {
		names := make([]string, len(events))
		for i, e := range events {
			names[i] = e.name
		}
		return strings.Join(names, ", "), nil
	}

	// Built by hand because map marshalling would sort the keys.
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range events {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.name)
		if err != nil {
			return "", err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if !e.detailed {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(e.detail)
		if err != nil {
			return "", err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// ParseTriggerNames extracts event names from an HX-Trigger header value,
// accepting both the JSON-object and the comma-separated forms. JSON
// names keep their header order.
func ParseTriggerNames(header string) []string {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	if strings.HasPrefix(header, "{") {
		dec := json.NewDecoder(strings.NewReader(header))
		if _, err := dec.Token(); err != nil {
			return nil
		}
		var names []string
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return names
			}
			name, ok := tok.(string)
			if !ok {
				return names
			}
			names = append(names, name)
			// Skip the value.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return names
			}
		}
		return names
	}

	parts := strings.Split(header, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}
