// Package pointer turns per-frame ray hits into enter, leave, down and missed events.
// Hits are delivered nearest first. A miss is a click: a press on empty space released
// within ClickDistance pixels of where it started, so dragging the background does not
// count. A handler that calls StopPropagation keeps objects
// behind the current one from receiving the event; an object that stopped propagation on
// enter keeps occluding the objects behind it for as long as it stays hovered.
package pointer

import (
	"math"
	"sort"
)

// ClickDistance is the largest pointer travel, in pixels, between press and release for
// a press on empty space to count as a missed click.
const ClickDistance = 2

// Point is a pointer position in screen pixels.
type Point struct {
	X, Y float32
}

// Hit is one object under the pointer ray.
type Hit struct {
	Object   string
	Distance float32
}

// Event is passed to handlers. Intersections holds every object currently under the
// pointer, nearest first, including ones the event was not delivered to.
type Event struct {
	Object        string
	Distance      float32
	Intersections []Hit
	stopped       bool
}

// StopPropagation keeps the event from reaching objects behind Object.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Handler receives events for every object in the hit-testable group.
type Handler interface {
	PointerEnter(e *Event)
	PointerLeave(e *Event)
	PointerDown(e *Event)
	PointerMissed()
}

type hoverEntry struct {
	object string
	stops  bool
}

// Dispatcher tracks which objects are hovered between frames.
type Dispatcher struct {
	handler Handler
	hovered []hoverEntry

	missPending bool
	missAt      Point
}

// NewDispatcher returns a dispatcher delivering events to h.
func NewDispatcher(h Handler) *Dispatcher {
	return &Dispatcher{handler: h}
}

// Hovered returns the objects that currently count as hovered, nearest first.
func (d *Dispatcher) Hovered() []string {
	out := make([]string, 0, len(d.hovered))
	for _, h := range d.hovered {
		out = append(out, h.object)
	}
	return out
}

// Move updates hover state from this frame's hits. Objects no longer under the pointer
// get their leave event before any new enter, and objects newly occluded by a nearer
// consuming object leave after it entered.
func (d *Dispatcher) Move(hits []Hit) {
	hits = sorted(hits)

	for _, h := range d.hovered {
		if !hitsContain(hits, h.object) {
			d.handler.PointerLeave(&Event{Object: h.object, Intersections: hits})
		}
	}

	var next []hoverEntry
	for _, hit := range hits {
		entry, was := d.find(hit.Object)
		if !was {
			e := &Event{Object: hit.Object, Distance: hit.Distance, Intersections: hits}
			d.handler.PointerEnter(e)
			entry = hoverEntry{object: hit.Object, stops: e.Stopped()}
		}
		next = append(next, entry)
		if entry.stops {
			break
		}
	}

	for _, h := range d.hovered {
		if hitsContain(hits, h.object) && !entriesContain(next, h.object) {
			d.handler.PointerLeave(&Event{Object: h.object, Intersections: hits})
		}
	}
	d.hovered = next
}

// Down delivers a pointer press at p. With no hits nothing is delivered yet; Up decides
// whether the press was a missed click.
func (d *Dispatcher) Down(hits []Hit, p Point) {
	hits = sorted(hits)
	if len(hits) == 0 {
		d.missPending, d.missAt = true, p
		return
	}
	d.missPending = false
	for _, h := range hits {
		e := &Event{Object: h.Object, Distance: h.Distance, Intersections: hits}
		d.handler.PointerDown(e)
		if e.Stopped() {
			return
		}
	}
}

// Up ends a press at p. A press that started on empty space and moved no more than
// ClickDistance calls the handler's PointerMissed.
func (d *Dispatcher) Up(p Point) {
	if !d.missPending {
		return
	}
	d.missPending = false
	dx, dy := float64(p.X-d.missAt.X), float64(p.Y-d.missAt.Y)
	if math.Hypot(dx, dy) <= ClickDistance {
		d.handler.PointerMissed()
	}
}

// Reset sends leave events for every hovered object. Call when the pointer leaves the
// hit-testable area.
func (d *Dispatcher) Reset() {
	d.Move(nil)
}

func (d *Dispatcher) find(object string) (hoverEntry, bool) {
	for _, h := range d.hovered {
		if h.object == object {
			return h, true
		}
	}
	return hoverEntry{}, false
}

func sorted(hits []Hit) []Hit {
	out := append([]Hit(nil), hits...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func hitsContain(hits []Hit, object string) bool {
	for _, h := range hits {
		if h.Object == object {
			return true
		}
	}
	return false
}

func entriesContain(entries []hoverEntry, object string) bool {
	for _, e := range entries {
		if e.object == object {
			return true
		}
	}
	return false
}
