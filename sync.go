package hxattr

import "strings"

type syncStrategy uint8

const (
	syncDefault syncStrategy = iota
	syncDrop
	syncAbort
	syncReplace
	syncQueue
)

// Sync is an hx-sync entry: the element to synchronize on and a strategy.
//
//	hxattr.SyncAbort(hxattr.Closest("form")) // closest form:abort
//	hxattr.SyncQueue(hxattr.This(), hxattr.QueueLast) // this:queue last
type Sync struct {
	selector Selector
	strategy syncStrategy
	queue    QueueKind
}

// SyncDefault synchronizes on sel with HTMX's default strategy (drop).
func SyncDefault(sel Selector) Sync {
	return Sync{selector: sel, strategy: syncDefault}
}

// SyncDrop drops the new request while one is in flight.
func SyncDrop(sel Selector) Sync {
	return Sync{selector: sel, strategy: syncDrop}
}

// SyncAbort lets a request be aborted by a later one.
func SyncAbort(sel Selector) Sync {
	return Sync{selector: sel, strategy: syncAbort}
}

// SyncReplace aborts the in-flight request and replaces it.
func SyncReplace(sel Selector) Sync {
	return Sync{selector: sel, strategy: syncReplace}
}

// SyncQueue queues requests according to k.
func SyncQueue(sel Selector, k QueueKind) Sync {
	return Sync{selector: sel, strategy: syncQueue, queue: k}
}

// String returns the entry in selector-first form.
func (s Sync) String() string {
	sel := s.selector.String()
	switch s.strategy {
	case syncDrop:
		return sel + ":drop"
	case syncAbort:
		return sel + ":abort"
	case syncReplace:
		return sel + ":replace"
	case syncQueue:
		return sel + ":queue " + string(s.queue)
	default:
		return sel
	}
}

// Syncs joins entries with a single space.
func Syncs(syncs ...Sync) string {
	parts := make([]string, len(syncs))
	for i, s := range syncs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
