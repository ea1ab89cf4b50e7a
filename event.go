package hxattr

import (
	"slices"
	"strings"
)

// QueueKind selects which events are queued while a request is in flight.
type QueueKind string

const (
	QueueFirst QueueKind = "first" // Queue the first event
	QueueLast  QueueKind = "last"  // Queue the last event (HTMX default)
	QueueAll   QueueKind = "all"   // Queue every event
)

type modifierKind uint8

const (
	modOnce modifierKind = iota + 1
	modChanged
	modDelay
	modThrottle
	modFrom
	modTarget
	modConsume
	modQueue
)

// Modifier is a single hx-trigger event modifier.
//
// Modifiers are only built through Once, Changed, Delay, Throttle, From,
// Target, Consume, Queue and QueueNone; the zero Modifier renders empty
// and is skipped.
type Modifier struct {
	kind     modifierKind
	duration Duration
	from     Selector
	target   string
	queue    QueueKind
}

// Once fires the trigger only once.
func Once() Modifier { return Modifier{kind: modOnce} }

// Changed fires only when the element's value has changed.
func Changed() Modifier { return Modifier{kind: modChanged} }

// Delay waits d before issuing the request, resetting on every new event.
func Delay(d Duration) Modifier { return Modifier{kind: modDelay, duration: d} }

// Throttle drops events for d after one fires.
func Throttle(d Duration) Modifier { return Modifier{kind: modThrottle, duration: d} }

// From listens for the event on another element.
func From(sel Selector) Modifier { return Modifier{kind: modFrom, from: sel} }

// Target filters events to those whose target matches the CSS selector.
func Target(css string) Modifier { return Modifier{kind: modTarget, target: css} }

// Consume stops the event from triggering requests on parent elements.
func Consume() Modifier { return Modifier{kind: modConsume} }

// Queue sets how events arriving during an in-flight request are queued.
func Queue(k QueueKind) Modifier { return Modifier{kind: modQueue, queue: k} }

// QueueNone discards events arriving during an in-flight request.
func QueueNone() Modifier { return Modifier{kind: modQueue} }

// String returns the modifier fragment, e.g. "delay:500ms".
func (m Modifier) String() string {
	switch m.kind {
	case modOnce:
		return "once"
	case modChanged:
		return "changed"
	case modDelay:
		return "delay:" + m.duration.String()
	case modThrottle:
		return "throttle:" + m.duration.String()
	case modFrom:
		return "from:" + m.from.String()
	case modTarget:
		return "target:" + m.target
	case modConsume:
		return "consume"
	case modQueue:
		if m.queue == "" {
			return "queue:none"
		}
		return "queue:" + string(m.queue)
	default:
		return ""
	}
}

// Trigger is one entry in an hx-trigger list: an Event or a Poll.
type Trigger interface {
	String() string
	trigger()
}

// Event is a trigger specification: an event name, an optional filter
// expression and an ordered list of modifiers.
//
//	hxattr.On("keyup", hxattr.Changed(), hxattr.Delay(hxattr.Milliseconds(500)))
//	// keyup changed delay:500ms
//
// Modifiers render in the order they were added. Events are values;
// With and Filter return a copy and leave the receiver unchanged.
type Event struct {
	name      string
	filter    string
	modifiers []Modifier
}

// On creates an event trigger with the given modifiers.
func On(name string, mods ...Modifier) Event {
	return Event{name: name, modifiers: slices.Clone(mods)}
}

// With returns a copy of e with mods appended after the existing modifiers.
func (e Event) With(mods ...Modifier) Event {
	out := e
	out.modifiers = make([]Modifier, 0, len(e.modifiers)+len(mods))
	out.modifiers = append(out.modifiers, e.modifiers...)
	out.modifiers = append(out.modifiers, mods...)
	return out
}

// Filter returns a copy of e with a JavaScript filter expression,
// rendered as name[expr].
func (e Event) Filter(expr string) Event {
	e.filter = expr
	return e
}

// Name returns the event name.
func (e Event) Name() string {
	return e.name
}

// Modifiers returns a copy of the event's modifiers.
func (e Event) Modifiers() []Modifier {
	return slices.Clone(e.modifiers)
}

// String returns the trigger specification.
func (e Event) String() string {
	var sb strings.Builder
	sb.WriteString(e.name)
	if e.filter != "" {
		sb.WriteString("[")
		sb.WriteString(e.filter)
		sb.WriteString("]")
	}
	for _, m := range e.modifiers {
		s := m.String()
		if s == "" {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(s)
	}
	return sb.String()
}

func (Event) trigger() {}

// Poll is a polling trigger: "every 2s" or "load every 2s".
type Poll struct {
	interval Duration
	onLoad   bool
	filter   string
}

// Every polls at the given interval.
func Every(d Duration) Poll {
	return Poll{interval: d}
}

// LoadEvery polls once after load, then after each response, with the
// given delay. It is HTMX's load-polling form.
func LoadEvery(d Duration) Poll {
	return Poll{interval: d, onLoad: true}
}

// Filter returns a copy of p that only polls while expr is truthy.
func (p Poll) Filter(expr string) Poll {
	p.filter = expr
	return p
}

// String returns the polling trigger.
func (p Poll) String() string {
	s := "every " + p.interval.String()
	if p.onLoad {
		s = "load " + s
	}
	if p.filter != "" {
		s += " [" + p.filter + "]"
	}
	return s
}

func (Poll) trigger() {}

// Triggers joins triggers with ", " for use as an hx-trigger value.
//
//	hxattr.Triggers(hxattr.On("click"), hxattr.On("keyup", hxattr.Once()))
//	// click, keyup once
func Triggers(ts ...Trigger) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		if t == nil {
			continue
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ", ")
}
