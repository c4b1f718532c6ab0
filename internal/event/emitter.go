package event

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"whisper/internal/domain"
)

// Envelope fields fixed by the wire format.
const (
	Standard = "whisper"
	Version  = "1.0.0"
	Prefix   = "EVENT_JSON:"
)

type envelope struct {
	Standard string `json:"standard"`
	Version  string `json:"version"`
	Event    string `json:"event"`
	Data     any    `json:"data"`
}

// Encode returns the full wire line for one notification, without the
// trailing newline.
func Encode(event string, data any) (string, error) {
	b, err := json.Marshal(envelope{
		Standard: Standard,
		Version:  Version,
		Event:    event,
		Data:     data,
	})
	if err != nil {
		return "", fmt.Errorf("encode %s event: %w", event, err)
	}
	return Prefix + string(b), nil
}

// LogSink writes wire lines to w, one per notification. Emit is
// fire-and-forget: serialization or write failures are logged and dropped,
// never surfaced into the emitting call.
type LogSink struct {
	mu  sync.Mutex
	w   io.Writer
	log zerolog.Logger
}

// NewLogSink returns a sink writing to w, reporting internal failures to log.
func NewLogSink(w io.Writer, log zerolog.Logger) *LogSink {
	return &LogSink{w: w, log: log}
}

// Compile-time assertion that LogSink implements domain.EventSink.
var _ domain.EventSink = (*LogSink)(nil)

// Emit writes one notification line.
func (s *LogSink) Emit(event string, data any) {
	line, err := Encode(event, data)
	if err != nil {
		s.log.Error().Err(err).Str("event", event).Msg("drop notification")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		s.log.Error().Err(err).Str("event", event).Msg("write notification")
	}
}
