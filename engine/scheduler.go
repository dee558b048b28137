package engine

import (
	"cmp"
	"slices"
	"time"

	"github.com/1pavlov/vibecoded-kids-games/event"
)

type scheduledEvent struct {
	due time.Duration
	seq uint64
	ev  event.GameEvent
}

// Scheduler holds events deferred on session game time
// Nothing blocks: the session flushes due events into its queue once per tick
type Scheduler struct {
	pending []scheduledEvent
	seq     uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule defers ev until game time now+delay
func (sc *Scheduler) Schedule(now, delay time.Duration, ev event.GameEvent) {
	sc.seq++
	sc.pending = append(sc.pending, scheduledEvent{due: now + delay, seq: sc.seq, ev: ev})
}

// Due removes and returns events whose time has come, earliest first, FIFO among equals
func (sc *Scheduler) Due(now time.Duration) []event.GameEvent {
	var ready []scheduledEvent
	kept := sc.pending[:0]
	for _, p := range sc.pending {
		if p.due <= now {
			ready = append(ready, p)
		} else {
			kept = append(kept, p)
		}
	}
	sc.pending = kept
	if len(ready) == 0 {
		return nil
	}

	slices.SortFunc(ready, func(a, b scheduledEvent) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	out := make([]event.GameEvent, len(ready))
	for i, p := range ready {
		out[i] = p.ev
	}
	return out
}

// Clear drops all pending events
func (sc *Scheduler) Clear() {
	sc.pending = sc.pending[:0]
}

// Len returns the number of pending events
func (sc *Scheduler) Len() int {
	return len(sc.pending)
}
