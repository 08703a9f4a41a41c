package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/amonks/tiler/internal/paths"
)

const logFileName = "workspace.jsonl"

// Options configures the workspace event log.
type Options struct {
	// Dir is the directory holding the log.
	// Defaults to ~/.local/state/tiler/events if empty.
	Dir string
}

// Log appends workspace events to a JSONL file.
type Log struct {
	path    string
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// OpenLog opens the workspace event log for appending, creating it if
// needed.
func OpenLog(opts Options) (*Log, error) {
	path, err := LogPath(opts)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create events dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	return &Log{path: path, file: file, encoder: json.NewEncoder(file)}, nil
}

// Path returns the path of the log file.
func (log *Log) Path() string {
	if log == nil {
		return ""
	}
	return log.path
}

// Append writes a new event to the log.
func (log *Log) Append(event Event) error {
	if log == nil {
		return nil
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	if log.encoder == nil {
		return fmt.Errorf("event log is closed")
	}
	return log.encoder.Encode(event)
}

// Close closes the event log.
func (log *Log) Close() error {
	if log == nil {
		return nil
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	if log.file == nil {
		return nil
	}
	err := log.file.Close()
	log.file = nil
	log.encoder = nil
	return err
}

// LogPath returns the path to the workspace event log.
func LogPath(opts Options) (string, error) {
	root, err := paths.ResolveWithDefault(opts.Dir, paths.DefaultEventsDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, logFileName), nil
}

// ReadEvents reads workspace events from a JSONL reader.
func ReadEvents(reader io.Reader) ([]Event, error) {
	events := make([]Event, 0)
	if reader == nil {
		return events, nil
	}
	buffer := bufio.NewReader(reader)
	for {
		line, err := buffer.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			var event Event
			if unmarshalErr := json.Unmarshal([]byte(line), &event); unmarshalErr != nil {
				return nil, fmt.Errorf("decode workspace event: %w", unmarshalErr)
			}
			events = append(events, event)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return events, nil
}

// Snapshot returns the recorded workspace events, oldest first.
func Snapshot(opts Options) ([]Event, error) {
	path, err := LogPath(opts)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadEvents(file)
}
