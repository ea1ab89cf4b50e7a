package hxattr

import (
	"strconv"
	"time"
)

type durationUnit uint8

const (
	unitMilliseconds durationUnit = iota
	unitSeconds
)

// Duration is a time span in HTMX syntax, used by delay, throttle, every,
// swap and settle.
//
// The unit given at construction is kept: Seconds(2) renders as "2s" and
// Milliseconds(2000) renders as "2000ms". Nothing is normalized.
type Duration struct {
	n    uint64
	unit durationUnit
}

// Seconds returns a Duration of n seconds.
func Seconds(n uint64) Duration {
	return Duration{n: n, unit: unitSeconds}
}

// Milliseconds returns a Duration of n milliseconds.
func Milliseconds(n uint64) Duration {
	return Duration{n: n, unit: unitMilliseconds}
}

// DurationOf converts a time.Duration. Whole seconds are expressed in
// seconds, anything else in milliseconds (sub-millisecond precision is
// dropped). Negative values clamp to zero.
func DurationOf(d time.Duration) Duration {
	if d <= 0 {
		return Milliseconds(0)
	}
	if d%time.Second == 0 {
		return Seconds(uint64(d / time.Second))
	}
	return Milliseconds(uint64(d / time.Millisecond))
}

// String returns the duration with its unit suffix.
func (d Duration) String() string {
	s := strconv.FormatUint(d.n, 10)
	if d.unit == unitSeconds {
		return s + "s"
	}
	return s + "ms"
}

// Std returns the equivalent time.Duration.
func (d Duration) Std() time.Duration {
	if d.unit == unitSeconds {
		return time.Duration(d.n) * time.Second
	}
	return time.Duration(d.n) * time.Millisecond
}
