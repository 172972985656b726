package animation

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	t.Run("keeps record order", func(t *testing.T) {
		tl := NewTimeline()
		tl.Record(PhaseGenerate, KindActivate, Payload{"cell": []int{0, 0}})
		tl.Record(PhaseSolve, KindExplore, Payload{"cell": []int{0, 0}, "parent": nil})
		tl.Record(PhaseSolve, KindPath, Payload{"cells": [][]int{{0, 0}}})

		want := []Event{
			{Phase: PhaseGenerate, Kind: KindActivate, Payload: Payload{"cell": []int{0, 0}}},
			{Phase: PhaseSolve, Kind: KindExplore, Payload: Payload{"cell": []int{0, 0}, "parent": nil}},
			{Phase: PhaseSolve, Kind: KindPath, Payload: Payload{"cells": [][]int{{0, 0}}}},
		}
		if diff := cmp.Diff(want, tl.Events()); diff != "" {
			t.Errorf("Events() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, tl.Len())
		assert.Equal(t, 1, tl.Count(PhaseSolve, KindExplore))
		assert.Equal(t, 0, tl.Count(PhaseSolve, KindActivate))
	})

	t.Run("events returns a copy", func(t *testing.T) {
		tl := NewTimeline()
		tl.Record(PhaseSolve, KindExplore, nil)
		events := tl.Events()
		events[0].Kind = KindPath
		assert.Equal(t, KindExplore, tl.Events()[0].Kind)
	})

	t.Run("nil timeline ignores records", func(t *testing.T) {
		var tl *Timeline
		var rec Recorder = tl
		assert.NotPanics(t, func() {
			rec.Record(PhaseSolve, KindExplore, Payload{"cell": []int{0, 0}})
		})
	})

	t.Run("serialises concurrent writers", func(t *testing.T) {
		tl := NewTimeline()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					tl.Record(PhaseSolve, KindExplore, Payload{"cell": []int{i, j}})
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 800, tl.Len())
	})
}

func TestEventJSON(t *testing.T) {
	t.Run("encodes flat", func(t *testing.T) {
		data, err := json.Marshal(Event{
			Phase:   PhaseSolve,
			Kind:    KindExplore,
			Payload: Payload{"cell": []int{1, 2}, "parent": nil},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"phase":"solve","event":"explore","cell":[1,2],"parent":null}`, string(data))
	})

	t.Run("decodes flat", func(t *testing.T) {
		var e Event
		require.NoError(t, json.Unmarshal([]byte(`{"phase":"generate","event":"link","parent":[0,0],"child":[0,1]}`), &e))
		assert.Equal(t, PhaseGenerate, e.Phase)
		assert.Equal(t, KindLink, e.Kind)
		assert.Equal(t, []any{float64(0), float64(1)}, e.Payload["child"])
	})

	t.Run("rejects events without phase or kind", func(t *testing.T) {
		var e Event
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"event":"link"}`), &e), ErrMalformedEvent)
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"phase":"solve"}`), &e), ErrMalformedEvent)
	})
}

func TestDocument(t *testing.T) {
	tl := NewTimeline()
	tl.Record(PhaseGenerate, KindActivate, Payload{"cell": []int{0, 0}})
	tl.Record(PhaseSolve, KindExplore, Payload{"cell": []int{0, 0}, "parent": nil})

	doc := tl.Document(3, 2, []int{0, 0}, []int{1, 2})
	assert.Equal(t, 1, doc.SolveIndex())

	data, err := doc.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, GridInfo{Width: 3, Height: 2}, decoded.Grid)
	assert.Equal(t, []int{1, 2}, decoded.Target)
	require.Len(t, decoded.Events, 2)
	assert.Equal(t, KindExplore, decoded.Events[1].Kind)
	assert.Nil(t, decoded.Events[1].Payload["parent"])

	t.Run("empty timeline encodes an empty list", func(t *testing.T) {
		data, err := NewTimeline().Document(1, 1, []int{0, 0}, []int{0, 0}).Encode()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"events":[]`)
	})

	t.Run("decode rejects garbage", func(t *testing.T) {
		_, err := Decode([]byte("not json"))
		assert.Error(t, err)
	})
}
