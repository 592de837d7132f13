package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chatsync/internal/pkg/logger"
)

// Level is the severity of a notice
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is a transient message for the user, the toast of a UI
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Board keeps the most recent notices, newest first
type Board struct {
	mu       sync.Mutex
	items    []Notice
	capacity int
	now      func() time.Time
}

// NewBoard creates a board holding at most capacity notices
func NewBoard(capacity int) *Board {
	if capacity <= 0 {
		capacity = 1
	}
	return &Board{
		capacity: capacity,
		now:      time.Now,
	}
}

// Error posts an error notice
func (b *Board) Error(message string) Notice {
	return b.Push(LevelError, message)
}

// Info posts an informational notice
func (b *Board) Info(message string) Notice {
	return b.Push(LevelInfo, message)
}

// Push posts a notice, evicting the oldest one when the board is full
func (b *Board) Push(level Level, message string) Notice {
	n := Notice{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: b.now(),
	}

	b.mu.Lock()
	next := make([]Notice, 0, min(len(b.items)+1, b.capacity))
	next = append(next, n)
	for _, item := range b.items {
		if len(next) == b.capacity {
			break
		}
		next = append(next, item)
	}
	b.items = next
	b.mu.Unlock()

	logger.Info("Notice posted",
		logger.String("level", string(level)),
		logger.String("message", message))
	return n
}

// List returns the current notices, newest first
func (b *Board) List() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notice, len(b.items))
	copy(out, b.items)
	return out
}

// Drain returns the current notices and empties the board
func (b *Board) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	b.items = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

// Dismiss removes one notice and reports whether it was present
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item.ID == id {
			next := make([]Notice, 0, len(b.items)-1)
			next = append(next, b.items[:i]...)
			b.items = append(next, b.items[i+1:]...)
			return true
		}
	}
	return false
}
