// Package feedback appends one JSON record per user feedback event to
// an append-only NDJSON log. Writes go through a buffered queue drained
// by a single goroutine so a slow disk never blocks a chat request.
package feedback

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sourcegraph/conc"
)

// Event is the persisted feedback record.
type Event struct {
	Timestamp    string `json:"timestamp"`
	Feedback     string `json:"feedback"`
	MsgID        string `json:"msg_id"`
	SessionTurns int    `json:"session_turns"`
}

// NewEvent stamps the event with the current UTC time in ISO-8601.
func NewEvent(feedbackText, msgID string, sessionTurns int) Event {
	return Event{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Feedback:     feedbackText,
		MsgID:        msgID,
		SessionTurns: sessionTurns,
	}
}

type Logger struct {
	file   *os.File
	queue  chan Event
	wg     *conc.WaitGroup
	logger *slog.Logger
}

func NewLogger(path string, queueSize int, logger *slog.Logger) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create feedback log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open feedback log: %w", err)
	}

	l := &Logger{
		file:   file,
		queue:  make(chan Event, queueSize),
		wg:     conc.NewWaitGroup(),
		logger: logger,
	}
	l.wg.Go(l.drain)
	return l, nil
}

// Log enqueues the event. When the queue is full the event is dropped
// with a warning; feedback is best-effort and must not stall requests.
func (l *Logger) Log(event Event) {
	select {
	case l.queue <- event:
	default:
		l.logger.Warn("feedback queue full, dropping event", "msg_id", event.MsgID)
	}
}

func (l *Logger) drain() {
	enc := json.NewEncoder(l.file)
	for event := range l.queue {
		if err := enc.Encode(event); err != nil {
			l.logger.Error("failed to write feedback event", "error", err, "msg_id", event.MsgID)
		}
	}
}

// Close flushes queued events and closes the log file.
func (l *Logger) Close() error {
	close(l.queue)
	l.wg.Wait()
	return l.file.Close()
}
