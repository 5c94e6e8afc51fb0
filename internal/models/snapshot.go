package models

import (
	"bytes"
	"encoding/json"

	"djwatch/internal/common"
)

// Snapshot is the persisted record set for a target at last check time.
//
// The stored document is UTF-8 JSON of shape
//
//	{"records":[{"name":...,"comment":...,"stars":...},...]}
//
// Two legacy shapes are accepted on read and upgraded in memory: a bare
// name list {"djs":["name",...]} and the older object list
// {"djs":[{"name":...},...]}. The next save always writes the current shape.
type Snapshot struct {
	Records RecordSet
}

// NewSnapshot creates a snapshot around the given record set
func NewSnapshot(records RecordSet) Snapshot {
	if records == nil {
		records = NewRecordSet()
	}
	return Snapshot{Records: records}
}

// snapshotDocument is the wire form of a snapshot, covering the current
// shape and both legacy shapes.
type snapshotDocument struct {
	Records *[]Supporter    `json:"records,omitempty"`
	DJs     json.RawMessage `json:"djs,omitempty"`
}

// MarshalJSON writes the current document shape with records in sorted order
func (s Snapshot) MarshalJSON() ([]byte, error) {
	records := s.Records.Sorted()
	doc := struct {
		Records []Supporter `json:"records"`
	}{
		Records: records,
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads any of the three document shapes
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return common.WrapError(err, "failed to parse snapshot document")
	}

	if doc.Records != nil {
		s.Records = NewRecordSet(*doc.Records...)
		return nil
	}

	if len(doc.DJs) > 0 && !bytes.Equal(doc.DJs, []byte("null")) {
		// Legacy bare name list
		var names []string
		if err := json.Unmarshal(doc.DJs, &names); err == nil {
			records := NewRecordSet()
			for _, name := range names {
				records.Add(Supporter{Name: name})
			}
			s.Records = records
			return nil
		}

		// Legacy object list
		var supporters []Supporter
		if err := json.Unmarshal(doc.DJs, &supporters); err == nil {
			s.Records = NewRecordSet(supporters...)
			return nil
		}

		return common.NewError("snapshot document has an unrecognized 'djs' shape")
	}

	return common.NewError("snapshot document has neither 'records' nor 'djs'")
}
