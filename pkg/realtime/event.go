package realtime

import "encoding/json"

// EventType mirrors the Postgres change kinds a table subscription can watch.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is one row-level change on a table. New carries the row after the
// change (INSERT/UPDATE), Old the row before it (UPDATE/DELETE). Rows stay
// raw JSON so the broker does not depend on any table's Go type.
type Event struct {
	Table string          `json:"table"`
	Type  EventType       `json:"type"`
	New   json.RawMessage `json:"new,omitempty"`
	Old   json.RawMessage `json:"old,omitempty"`
}

// NewEvent marshals the given rows into a change event. Nil rows are allowed
// and leave the corresponding side empty.
func NewEvent(table string, eventType EventType, newRow any, oldRow any) (Event, error) {
	evt := Event{
		Table: table,
		Type:  eventType,
	}

	if newRow != nil {
		raw, err := json.Marshal(newRow)
		if err != nil {
			return Event{}, err
		}
		evt.New = raw
	}
	if oldRow != nil {
		raw, err := json.Marshal(oldRow)
		if err != nil {
			return Event{}, err
		}
		evt.Old = raw
	}

	return evt, nil
}

// DecodeNew unmarshals the post-change row into dest.
func (e Event) DecodeNew(dest any) error {
	return json.Unmarshal(e.New, dest)
}

// DecodeOld unmarshals the pre-change row into dest.
func (e Event) DecodeOld(dest any) error {
	return json.Unmarshal(e.Old, dest)
}
