package event

import (
	"sync"

	"whisper/internal/domain"
)

// Record is one captured notification.
type Record struct {
	Event string
	Data  any
	Line  string // full wire line, for byte-exact assertions
}

// Capture is an EventSink test double that retains emitted records.
type Capture struct {
	mu      sync.Mutex
	records []Record
}

// Compile-time assertion that Capture implements domain.EventSink.
var _ domain.EventSink = (*Capture)(nil)

// Emit captures the notification.
func (c *Capture) Emit(event string, data any) {
	line, _ := Encode(event, data)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, Record{Event: event, Data: data, Line: line})
}

// Records returns a copy of everything emitted so far.
func (c *Capture) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Last returns the most recent record, if any.
func (c *Capture) Last() (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.records) == 0 {
		return Record{}, false
	}
	return c.records[len(c.records)-1], true
}
