package hxattr

import (
	"slices"
	"strconv"
	"strings"
)

// Swap defines HTMX swap strategies for how response HTML replaces the target.
//
// Each value corresponds to an hx-swap keyword. HTMX defaults to SwapInnerHTML.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type Swap string

const (
	// SwapInnerHTML replaces only the element's contents, preserving the outer tag.
	SwapInnerHTML Swap = "innerHTML"

	// SwapOuterHTML replaces the entire element including its tag.
	SwapOuterHTML Swap = "outerHTML"

	// SwapTextContent replaces the element's text content without parsing HTML.
	SwapTextContent Swap = "textContent"

	// SwapBeforeBegin inserts the response before the target element (as previous sibling).
	SwapBeforeBegin Swap = "beforebegin"

	// SwapAfterBegin prepends the response to the start of the target's contents.
	// Useful for prepending items to lists.
	SwapAfterBegin Swap = "afterbegin"

	// SwapBeforeEnd appends the response to the end of the target's contents.
	// Useful for adding items to lists.
	SwapBeforeEnd Swap = "beforeend"

	// SwapAfterEnd inserts the response after the target element (as next sibling).
	SwapAfterEnd Swap = "afterend"

	// SwapDelete removes the target element entirely.
	// Response content is ignored.
	SwapDelete Swap = "delete"

	// SwapNone performs no swap - response is discarded.
	// Out-of-band swaps and response headers are still processed.
	SwapNone Swap = "none"
)

// SwapStrategy is anything usable as an hx-swap value: a bare Swap or a
// SwapSpec carrying modifiers.
type SwapStrategy interface {
	String() string
	swapSpec() SwapSpec
}

// String returns the swap keyword.
func (s Swap) String() string {
	return string(s)
}

// With attaches modifiers to the swap:
//
//	hxattr.SwapBeforeEnd.With(hxattr.ScrollTo(hxattr.Edge(hxattr.Bottom)))
//	// beforeend scroll:bottom
func (s Swap) With(mods ...SwapModifier) SwapSpec {
	return SwapSpec{swap: s, modifiers: slices.Clone(mods)}
}

func (s Swap) swapSpec() SwapSpec {
	return SwapSpec{swap: s}
}

// SwapSpec is a swap keyword followed by zero or more modifiers.
type SwapSpec struct {
	swap      Swap
	modifiers []SwapModifier
}

// With returns a copy of s with mods appended.
func (s SwapSpec) With(mods ...SwapModifier) SwapSpec {
	out := SwapSpec{swap: s.swap, modifiers: make([]SwapModifier, 0, len(s.modifiers)+len(mods))}
	out.modifiers = append(out.modifiers, s.modifiers...)
	out.modifiers = append(out.modifiers, mods...)
	return out
}

// Swap returns the swap keyword.
func (s SwapSpec) Swap() Swap {
	return s.swap
}

// String returns the swap keyword and its modifiers separated by spaces.
func (s SwapSpec) String() string {
	var sb strings.Builder
	sb.WriteString(string(s.swap))
	for _, m := range s.modifiers {
		str := m.String()
		if str == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(str)
	}
	return sb.String()
}

func (s SwapSpec) swapSpec() SwapSpec {
	return s
}

// Position is the edge of an element to scroll to.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
)

type scrollKind uint8

const (
	scrollSelf scrollKind = iota
	scrollSelector
	scrollWindow
)

// ScrollTarget names what scroll: and show: act on.
type ScrollTarget struct {
	kind     scrollKind
	selector string
	pos      Position
}

// Edge targets the swap target itself.
func Edge(pos Position) ScrollTarget {
	return ScrollTarget{kind: scrollSelf, pos: pos}
}

// EdgeOf targets the element matching the CSS selector.
func EdgeOf(css string, pos Position) ScrollTarget {
	return ScrollTarget{kind: scrollSelector, selector: css, pos: pos}
}

// WindowEdge targets the window.
func WindowEdge(pos Position) ScrollTarget {
	return ScrollTarget{kind: scrollWindow, pos: pos}
}

func (t ScrollTarget) String() string {
	switch t.kind {
	case scrollSelector:
		return t.selector + ":" + string(t.pos)
	case scrollWindow:
		return "window:" + string(t.pos)
	default:
		return string(t.pos)
	}
}

type swapModifierKind uint8

const (
	swapModTransition swapModifierKind = iota + 1
	swapModSwap
	swapModSettle
	swapModIgnoreTitle
	swapModScroll
	swapModShow
	swapModShowNone
	swapModFocusScroll
)

// SwapModifier is a single hx-swap modifier such as "settle:100ms".
type SwapModifier struct {
	kind     swapModifierKind
	flag     bool
	duration Duration
	target   ScrollTarget
}

// Transition toggles the View Transitions API for the swap.
func Transition(on bool) SwapModifier {
	return SwapModifier{kind: swapModTransition, flag: on}
}

// SwapTiming delays the swap after the response is received.
func SwapTiming(d Duration) SwapModifier {
	return SwapModifier{kind: swapModSwap, duration: d}
}

// Settle sets the delay between swap and settle.
func Settle(d Duration) SwapModifier {
	return SwapModifier{kind: swapModSettle, duration: d}
}

// IgnoreTitle controls whether a <title> in the response updates the page.
func IgnoreTitle(on bool) SwapModifier {
	return SwapModifier{kind: swapModIgnoreTitle, flag: on}
}

// ScrollTo scrolls the target after the swap.
func ScrollTo(t ScrollTarget) SwapModifier {
	return SwapModifier{kind: swapModScroll, target: t}
}

// Show scrolls the target into view after the swap.
func Show(t ScrollTarget) SwapModifier {
	return SwapModifier{kind: swapModShow, target: t}
}

// ShowNone disables HTMX's default scroll-into-view behaviour.
func ShowNone() SwapModifier {
	return SwapModifier{kind: swapModShowNone}
}

// FocusScroll controls scrolling to a focused input after the swap.
func FocusScroll(on bool) SwapModifier {
	return SwapModifier{kind: swapModFocusScroll, flag: on}
}

// String returns the modifier fragment.
func (m SwapModifier) String() string {
	switch m.kind {
	case swapModTransition:
		return "transition:" + strconv.FormatBool(m.flag)
	case swapModSwap:
		return "swap:" + m.duration.String()
	case swapModSettle:
		return "settle:" + m.duration.String()
	case swapModIgnoreTitle:
		return "ignoreTitle:" + strconv.FormatBool(m.flag)
	case swapModScroll:
		return "scroll:" + m.target.String()
	case swapModShow:
		return "show:" + m.target.String()
	case swapModShowNone:
		return "show:none"
	case swapModFocusScroll:
		return "focus-scroll:" + strconv.FormatBool(m.flag)
	default:
		return ""
	}
}

// OOBSwap is an hx-swap-oob value.
type OOBSwap struct {
	strategy SwapStrategy
	selector string
}

// OOBTrue swaps the element by id using outerHTML ("true").
func OOBTrue() OOBSwap {
	return OOBSwap{}
}

// OOB swaps the element by id using the given strategy.
func OOB(s SwapStrategy) OOBSwap {
	return OOBSwap{strategy: s}
}

// OOBAt swaps the response element into the element matching css
// instead of the one sharing its id: "beforeend:#toasts".
func OOBAt(s Swap, css string) OOBSwap {
	return OOBSwap{strategy: s, selector: css}
}

// String returns the hx-swap-oob value.
func (o OOBSwap) String() string {
	if o.strategy == nil {
		return "true"
	}
	s := o.strategy.String()
	if o.selector != "" {
		s += ":" + o.selector
	}
	return s
}
