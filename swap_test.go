package hxattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		swap   Swap
		expect string
	}{
		{SwapInnerHTML, "innerHTML"},
		{SwapOuterHTML, "outerHTML"},
		{SwapTextContent, "textContent"},
		{SwapBeforeBegin, "beforebegin"},
		{SwapAfterBegin, "afterbegin"},
		{SwapBeforeEnd, "beforeend"},
		{SwapAfterEnd, "afterend"},
		{SwapDelete, "delete"},
		{SwapNone, "none"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expect, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.swap.String())
			assert.Equal(t, tt.expect, tt.swap.With().String())
		})
	}
}

func TestSwapModifierString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mod    SwapModifier
		expect string
	}{
		{"transition on", Transition(true), "transition:true"},
		{"transition off", Transition(false), "transition:false"},
		{"swap timing", SwapTiming(Milliseconds(100)), "swap:100ms"},
		{"settle", Settle(Seconds(1)), "settle:1s"},
		{"ignore title", IgnoreTitle(true), "ignoreTitle:true"},
		{"scroll self", ScrollTo(Edge(Bottom)), "scroll:bottom"},
		{"scroll selector", ScrollTo(EdgeOf("#log", Top)), "scroll:#log:top"},
		{"scroll window", ScrollTo(WindowEdge(Top)), "scroll:window:top"},
		{"show self", Show(Edge(Top)), "show:top"},
		{"show selector", Show(EdgeOf(".msg", Bottom)), "show:.msg:bottom"},
		{"show window", Show(WindowEdge(Bottom)), "show:window:bottom"},
		{"show none", ShowNone(), "show:none"},
		{"focus scroll", FocusScroll(false), "focus-scroll:false"},
		{"zero value", SwapModifier{}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.mod.String())
		})
	}
}

func TestSwapSpec(t *testing.T) {
	t.Parallel()

	t.Run("swap with config", func(t *testing.T) {
		t.Parallel()
		spec := SwapBeforeEnd.With(ScrollTo(Edge(Bottom)))
		assert.Equal(t, "beforeend scroll:bottom", spec.String())
		assert.Equal(t, SwapBeforeEnd, spec.Swap())
	})

	t.Run("several modifiers keep order", func(t *testing.T) {
		t.Parallel()
		spec := SwapOuterHTML.With(SwapTiming(Seconds(1)), Settle(Milliseconds(200))).With(Transition(true))
		assert.Equal(t, "outerHTML swap:1s settle:200ms transition:true", spec.String())
	})

	t.Run("With does not alias", func(t *testing.T) {
		t.Parallel()
		base := SwapInnerHTML.With(Settle(Seconds(1)))
		a := base.With(ShowNone())
		b := base.With(IgnoreTitle(true))

		assert.Equal(t, "innerHTML settle:1s", base.String())
		assert.Equal(t, "innerHTML settle:1s show:none", a.String())
		assert.Equal(t, "innerHTML settle:1s ignoreTitle:true", b.String())
	})
}

func TestOOBSwap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		oob    OOBSwap
		expect string
	}{
		{"true", OOBTrue(), "true"},
		{"strategy", OOB(SwapOuterHTML), "outerHTML"},
		{"strategy with modifiers", OOB(SwapInnerHTML.With(Settle(Milliseconds(50)))), "innerHTML settle:50ms"},
		{"with selector", OOBAt(SwapBeforeEnd, "#toasts"), "beforeend:#toasts"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.oob.String())
		})
	}
}
