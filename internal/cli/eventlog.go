package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxcube"
)

// LogEventType identifies the type of logged event
type LogEventType string

const (
	LogEventRotation LogEventType = "rotation"
	LogEventGesture  LogEventType = "gesture"
	LogEventKeyPress LogEventType = "key_press"
	LogEventSolved   LogEventType = "solved"
	LogEventReset    LogEventType = "reset"
)

// LogEvent is one line of a session log.
type LogEvent struct {
	Timestamp  time.Time    `json:"timestamp"`
	ElapsedMs  int64        `json:"elapsed_ms"`
	EventType  LogEventType `json:"event_type"`
	KeyPress   string       `json:"key_press,omitempty"`
	RotationID string       `json:"rotation_id,omitempty"`
	Rotation   string       `json:"rotation,omitempty"`
	FromAngle  float64      `json:"from_angle,omitempty"`
	ToAngle    float64      `json:"to_angle,omitempty"`
	Gesture    string       `json:"gesture,omitempty"`
}

// SessionLog is a complete play session read back from disk.
type SessionLog struct {
	Version   string     `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	SessionID string     `json:"session_id"`
	Size      int        `json:"size"`
	Events    []LogEvent `json:"events"`
}

// SessionLogger writes play session events as JSON lines. A logger that was
// never started ignores every call.
type SessionLogger struct {
	sessionID uuid.UUID
	startTime time.Time
	file      *os.File
	enabled   bool
}

// NewSessionLogger creates a disabled logger with a fresh session ID.
func NewSessionLogger() *SessionLogger {
	return &SessionLogger{sessionID: uuid.New()}
}

// SessionID returns the ID written in the log header.
func (l *SessionLogger) SessionID() uuid.UUID {
	return l.sessionID
}

// Start begins logging to a new file in logDir.
func (l *SessionLogger) Start(logDir string, size int) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("play_%s_%s.jsonl", time.Now().Format("20060102_150405"), l.sessionID.String()[:8])
	file, err := os.Create(filepath.Join(logDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	l.file = file
	l.startTime = time.Now()
	l.enabled = true

	header := map[string]interface{}{
		"type":       "header",
		"version":    "1.0",
		"created_at": l.startTime,
		"session_id": l.sessionID.String(),
		"size":       size,
	}
	return l.writeJSON(header)
}

// LogRotation logs a turn once it has been flushed. A settle has no
// notation and is logged with an empty rotation.
func (l *SessionLogger) LogRotation(ev nxcube.RotationEvent) {
	event := LogEvent{
		EventType:  LogEventRotation,
		RotationID: ev.ID.String(),
		FromAngle:  ev.FromAngle,
		ToAngle:    ev.ToAngle,
	}
	if !ev.IsSettle() {
		event.Rotation = ev.Rotation.Notation()
	}
	l.log(event)
}

// LogGesture logs a gesture state change.
func (l *SessionLogger) LogGesture(state nxcube.GestureState) {
	l.log(LogEvent{EventType: LogEventGesture, Gesture: state.String()})
}

// LogKeyPress logs a key press
func (l *SessionLogger) LogKeyPress(key string) {
	l.log(LogEvent{EventType: LogEventKeyPress, KeyPress: key})
}

// LogSolved logs the cube becoming solved.
func (l *SessionLogger) LogSolved() {
	l.log(LogEvent{EventType: LogEventSolved})
}

// LogReset logs the cube being put back to solved without a turn.
func (l *SessionLogger) LogReset() {
	l.log(LogEvent{EventType: LogEventReset})
}

func (l *SessionLogger) log(event LogEvent) {
	if !l.enabled || l.file == nil {
		return
	}
	event.Timestamp = time.Now()
	event.ElapsedMs = time.Since(l.startTime).Milliseconds()
	if err := l.writeJSON(event); err != nil {
		logf("Failed to write %s event: %v\n", event.EventType, err)
	}
}

func (l *SessionLogger) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = l.file.Write(append(data, '\n'))
	return err
}

// Close closes the log file
func (l *SessionLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// FilePath returns the current log file path
func (l *SessionLogger) FilePath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}

// LoadSessionLog reads a session log written by SessionLogger.
func LoadSessionLog(path string) (*SessionLog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	log := &SessionLog{Events: make([]LogEvent, 0)}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if lineNum == 1 {
			var header struct {
				Type      string    `json:"type"`
				Version   string    `json:"version"`
				CreatedAt time.Time `json:"created_at"`
				SessionID string    `json:"session_id"`
				Size      int       `json:"size"`
			}
			if err := json.Unmarshal(line, &header); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			if header.Type != "header" {
				return nil, fmt.Errorf("line %d: missing header", lineNum)
			}
			log.Version = header.Version
			log.CreatedAt = header.CreatedAt
			log.SessionID = header.SessionID
			log.Size = header.Size
			continue
		}

		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		log.Events = append(log.Events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return log, nil
}

// Rotations returns the turns recorded since the last reset, oldest first.
// Settle events are skipped.
func (s *SessionLog) Rotations() ([]nxcube.Rotation, error) {
	var rotations []nxcube.Rotation
	for _, ev := range s.Events {
		if ev.EventType == LogEventReset {
			rotations = nil
			continue
		}
		if ev.EventType != LogEventRotation || ev.Rotation == "" {
			continue
		}
		r, err := nxcube.ParseRotation(ev.Rotation)
		if err != nil {
			return nil, err
		}
		rotations = append(rotations, r)
	}
	return rotations, nil
}
