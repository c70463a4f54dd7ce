package logging

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-logfmt/logfmt"
)

const maxMessages = 500

// Message is a decoded log record.
type Message struct {
	Time       time.Time
	Level      string
	Message    string `json:"msg"`
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger it
	// was emitted from). The higher the Serial number the newer the message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// writer is a slog TextHandler writer that decodes the records back into
// messages and keeps the most recent ones in memory.
type writer struct {
	messages []Message
	max      int
	serial   uint
}

func (w *writer) Write(p []byte) (int, error) {
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: w.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		w.messages = append(w.messages, msg)
		w.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	if over := len(w.messages) - w.max; over > 0 {
		// drop oldest
		w.messages = append(w.messages[:0:0], w.messages[over:]...)
	}
	return len(p), nil
}

func (w *writer) list() []Message {
	return append([]Message(nil), w.messages...)
}
