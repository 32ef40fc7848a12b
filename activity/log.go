package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind of page interaction
type Kind string

const (
	KindRender    Kind = "render"
	KindCelebrate Kind = "celebrate"
	KindStream    Kind = "stream"
	KindExport    Kind = "export"
)

// Entry represents a single interaction log entry
type Entry struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	Duration  time.Duration `json:"duration"`
	Detail    string        `json:"detail,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Log keeps the most recent interactions for the debug endpoint
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	maxLogs int
}

// DefaultSize is the number of entries kept when none is configured
const DefaultSize = 100

// NewLog creates a new interaction log
func NewLog(maxLogs int) *Log {
	if maxLogs <= 0 {
		maxLogs = DefaultSize
	}
	return &Log{
		entries: make([]Entry, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// Record stores an entry, newest first, and returns its ID
func (l *Log) Record(e Entry) string {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.maxLogs {
		l.entries = l.entries[:l.maxLogs]
	}
	return e.ID
}

// Entries returns all logged entries
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Recent returns the most recent n entries
func (l *Log) Recent(n int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.entries) || n < 0 {
		n = len(l.entries)
	}

	result := make([]Entry, n)
	copy(result, l.entries[:n])
	return result
}

// Len returns the number of stored entries
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Clear removes all logged entries
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}
