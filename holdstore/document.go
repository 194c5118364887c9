package holdstore

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/holdqueue/core"
)

var documentJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the persisted layout of the complete state:
//
//	{"counters":{"itemId":N,"holdId":M},"items":[...],"holds":[...]}
//
// Items and holds are ordered by id, so encoding the same state always yields the same bytes.
type Document struct {
	Counters core.Counters `json:"counters"`
	Items    []core.Item   `json:"items"`
	Holds    []core.Hold   `json:"holds"`
}

// DocumentFromState captures a state as a Document.
func DocumentFromState(state core.StateReader) Document {
	return Document{
		Counters: state.Counters(),
		Items:    state.Items(),
		Holds:    state.Holds(),
	}
}

// EncodeDocument serializes a Document to indented JSON.
func EncodeDocument(doc Document) ([]byte, error) {
	if doc.Items == nil {
		doc.Items = []core.Item{}
	}

	if doc.Holds == nil {
		doc.Holds = []core.Hold{}
	}

	data, err := documentJSON.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Join(ErrEncodingSnapshotFailed, err)
	}

	return data, nil
}

// DecodeDocument parses a snapshot document.
func DecodeDocument(data []byte) (Document, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return Document{}, ErrInvalidSnapshotJSON
	}

	var doc Document
	if err := documentJSON.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Join(ErrInvalidSnapshotJSON, err)
	}

	return doc, nil
}

// ToState rebuilds the state the Document describes and checks all invariants.
func (d Document) ToState() (*core.State, error) {
	state, err := core.RestoreState(d.Counters, d.Items, d.Holds)
	if err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, err)
	}

	return state, nil
}
