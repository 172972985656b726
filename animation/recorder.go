// Package animation records maze generation and solving steps so they can be
// replayed by the browser viewer.
package animation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Phases and event kinds understood by the viewer.
const (
	PhaseGenerate = "generate"
	PhaseSolve    = "solve"

	KindActivate = "activate"
	KindLink     = "link"
	KindExplore  = "explore"
	KindPath     = "path"
)

var (
	ErrMalformedEvent = errors.New("malformed animation event")
)

// Payload carries the structured fields of an event.
type Payload map[string]any

// Recorder is an optional sink for animation events.
// A nil Recorder means no recording. Pass an untyped nil; a nil *Timeline
// is accepted too but other implementations must handle a nil receiver.
type Recorder interface {
	Record(phase, kind string, payload Payload)
}

// Event is one recorded step.
// It is encoded flat as {"phase": ..., "event": ..., <payload fields>}.
type Event struct {
	Phase   string
	Kind    string
	Payload Payload
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(e.Payload)+2)
	for k, v := range e.Payload {
		flat[k] = v
	}
	flat["phase"] = e.Phase
	flat["event"] = e.Kind
	return json.Marshal(flat)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	var phase, kind string
	if err := json.Unmarshal(flat["phase"], &phase); err != nil || phase == "" {
		return fmt.Errorf("%w: missing phase", ErrMalformedEvent)
	}
	if err := json.Unmarshal(flat["event"], &kind); err != nil || kind == "" {
		return fmt.Errorf("%w: missing event", ErrMalformedEvent)
	}
	delete(flat, "phase")
	delete(flat, "event")

	payload := make(Payload, len(flat))
	for k, raw := range flat {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrMalformedEvent, k, err)
		}
		payload[k] = v
	}

	e.Phase, e.Kind, e.Payload = phase, kind, payload
	return nil
}

// Timeline is an in-memory Recorder.
// It is safe for concurrent use; events keep the order Record was called in.
type Timeline struct {
	events []Event
	sync.Mutex
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Record appends an event. Recording on a nil timeline is a no-op.
func (t *Timeline) Record(phase, kind string, payload Payload) {
	if t == nil {
		return
	}
	t.Lock()
	defer t.Unlock()
	t.events = append(t.events, Event{Phase: phase, Kind: kind, Payload: payload})
}

// Events returns a copy of the recorded events.
func (t *Timeline) Events() []Event {
	t.Lock()
	defer t.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Len returns the number of recorded events.
func (t *Timeline) Len() int {
	t.Lock()
	defer t.Unlock()
	return len(t.events)
}

// Count returns how many events of the given phase and kind were recorded.
func (t *Timeline) Count(phase, kind string) int {
	t.Lock()
	defer t.Unlock()
	n := 0
	for _, e := range t.events {
		if e.Phase == phase && e.Kind == kind {
			n++
		}
	}
	return n
}
