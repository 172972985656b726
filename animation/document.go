package animation

import (
	"encoding/json"
	"fmt"
)

// GridInfo describes the maze dimensions for the viewer.
type GridInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Document is the JSON file the viewer loads.
type Document struct {
	Grid   GridInfo `json:"grid"`
	Start  []int    `json:"start"`
	Target []int    `json:"target"`
	Events []Event  `json:"events"`
}

// Document snapshots the timeline into a viewer document.
// start and target are [row, col] pairs.
func (t *Timeline) Document(width, height int, start, target []int) *Document {
	return &Document{
		Grid:   GridInfo{Width: width, Height: height},
		Start:  start,
		Target: target,
		Events: t.Events(),
	}
}

// Encode serialises the document.
func (d *Document) Encode() ([]byte, error) {
	if d.Events == nil {
		d.Events = []Event{}
	}
	return json.Marshal(d)
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding animation: %w", err)
	}
	return &doc, nil
}

// SolveIndex returns the index of the first solve event, or len(Events) if
// there is none. The viewer skips to this point.
func (d *Document) SolveIndex() int {
	for i, e := range d.Events {
		if e.Phase == PhaseSolve {
			return i
		}
	}
	return len(d.Events)
}
