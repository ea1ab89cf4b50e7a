package hxattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mod    Modifier
		expect string
	}{
		{"once", Once(), "once"},
		{"changed", Changed(), "changed"},
		{"delay", Delay(Seconds(2)), "delay:2s"},
		{"throttle", Throttle(Milliseconds(300)), "throttle:300ms"},
		{"from selector", From(Closest("form")), "from:closest form"},
		{"from document", From(Document()), "from:document"},
		{"target", Target(".row"), "target:.row"},
		{"consume", Consume(), "consume"},
		{"queue first", Queue(QueueFirst), "queue:first"},
		{"queue last", Queue(QueueLast), "queue:last"},
		{"queue all", Queue(QueueAll), "queue:all"},
		{"queue none has no stray space", QueueNone(), "queue:none"},
		{"zero value", Modifier{}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.mod.String())
		})
	}
}

func TestEventString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		event  Event
		expect string
	}{
		{"bare", On("click"), "click"},
		{"once", On("keyup", Once()), "keyup once"},
		{
			"modifiers keep construction order",
			On("keyup", Changed(), Delay(Milliseconds(500)), From(CSS("#search"))),
			"keyup changed delay:500ms from:#search",
		},
		{
			"With appends in call order",
			On("input").With(Changed()).With(Throttle(Seconds(1)), Queue(QueueLast)),
			"input changed throttle:1s queue:last",
		},
		{"filter", On("click").Filter("ctrlKey").With(Once()), "click[ctrlKey] once"},
		{"zero modifiers skipped", On("click", Modifier{}, Once()), "click once"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.event.String())
		})
	}
}

func TestEventIsImmutable(t *testing.T) {
	t.Parallel()

	base := On("click", Once())
	a := base.With(Delay(Seconds(1)))
	b := base.With(Consume())
	filtered := base.Filter("shiftKey")

	assert.Equal(t, "click once", base.String())
	assert.Equal(t, "click once delay:1s", a.String())
	assert.Equal(t, "click once consume", b.String())
	assert.Equal(t, "click[shiftKey] once", filtered.String())
}

func TestOnCopiesModifiers(t *testing.T) {
	t.Parallel()

	mods := []Modifier{Once(), Changed()}
	e := On("change", mods...)
	mods[0] = Consume()

	assert.Equal(t, "change once changed", e.String())

	got := e.Modifiers()
	got[1] = Consume()
	assert.Equal(t, "change once changed", e.String())
	assert.Equal(t, "change", e.Name())
}

func TestPollString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "every 2s", Every(Seconds(2)).String())
	assert.Equal(t, "load every 500ms", LoadEvery(Milliseconds(500)).String())
	assert.Equal(t, "every 1s [someCondition]", Every(Seconds(1)).Filter("someCondition").String())
	assert.Equal(t, "load every 5s [!done]", LoadEvery(Seconds(5)).Filter("!done").String())
}

func TestTriggers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		triggers []Trigger
		expect   string
	}{
		{"empty", nil, ""},
		{"single", []Trigger{On("click")}, "click"},
		{"events", []Trigger{On("click"), On("keyup", Once())}, "click, keyup once"},
		{"event and poll", []Trigger{On("load"), Every(Seconds(10))}, "load, every 10s"},
		{"nil skipped", []Trigger{nil, On("submit")}, "submit"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Triggers(tt.triggers...))
		})
	}
}

func TestEventStringIsIdempotent(t *testing.T) {
	t.Parallel()

	e := On("keyup", Changed(), Delay(Seconds(1)))
	assert.Equal(t, e.String(), e.String())
}
