package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
)

// Sentinels hands out placeholder ids -1, -2, ... for a whole session
type Sentinels struct {
	last atomic.Int64
}

// Next returns the next, strictly smaller, sentinel id
func (s *Sentinels) Next() int64 {
	return s.last.Add(-1)
}

// ConfirmResult tells what Confirm did with a server message
type ConfirmResult int

const (
	// Replaced means the oldest pending placeholder was swapped in place
	Replaced ConfirmResult = iota
	// Prepended means the message was added at the top of the list
	Prepended
	// Duplicate means the confirmed id was already in the list
	Duplicate
)

func (r ConfirmResult) String() string {
	switch r {
	case Replaced:
		return "replaced"
	case Prepended:
		return "prepended"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// MessageList holds the messages of one chat, newest first. Every write
// publishes a new slice, so a Snapshot is never mutated afterwards.
type MessageList struct {
	mu       sync.Mutex
	messages []models.Message
	// pending holds unresolved sentinel ids in send order
	pending []int64
	// consumed holds sentinels replaced by a confirmation
	consumed map[int64]struct{}
	seq      *Sentinels
}

// NewMessageList creates a list seeded with a server snapshot
func NewMessageList(seq *Sentinels, initial []models.Message) *MessageList {
	if seq == nil {
		seq = &Sentinels{}
	}
	l := &MessageList{seq: seq}
	l.Reset(initial)
	return l
}

// Snapshot returns the current messages, newest first
func (l *MessageList) Snapshot() []models.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.messages
}

// Pending returns the number of unresolved placeholders
func (l *MessageList) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Reset replaces the list with a server snapshot and forgets pending
// placeholders
func (l *MessageList) Reset(messages []models.Message) {
	next := make([]models.Message, len(messages))
	copy(next, messages)

	l.mu.Lock()
	l.messages = next
	l.pending = nil
	l.consumed = nil
	l.mu.Unlock()
}

// Reload replaces the confirmed messages with a server snapshot. Pending
// placeholders stay on top so their sends can still resolve.
func (l *MessageList) Reload(messages []models.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.Message, 0, len(l.pending)+len(messages))
	for _, m := range l.messages {
		if l.isPending(m.ID) {
			next = append(next, m)
		}
	}
	l.messages = append(next, messages...)
}

// AddOptimistic prepends a placeholder authored by author
func (l *MessageList) AddOptimistic(text string, author models.User, now time.Time) models.Message {
	placeholder := models.Message{
		ID:        l.seq.Next(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
		User:      author,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.Message, 0, len(l.messages)+1)
	next = append(next, placeholder)
	l.messages = append(next, l.messages...)
	l.pending = append(l.pending[:len(l.pending):len(l.pending)], placeholder.ID)
	return placeholder
}

// Confirm applies a server-confirmed message. A message from the local
// user resolves the oldest pending placeholder, keeping its position.
// Matching is by send order only; message content is not compared.
func (l *MessageList) Confirm(msg models.Message, localUserID int64) ConfirmResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.messages {
		if m.ID == msg.ID {
			return Duplicate
		}
	}

	if msg.User.ID == localUserID {
		if len(l.pending) > 0 {
			oldest := l.pending[0]
			if idx := l.indexOf(oldest); idx >= 0 {
				next := make([]models.Message, len(l.messages))
				copy(next, l.messages)
				next[idx] = msg
				l.messages = next
				l.pending = l.pending[1:]
				if l.consumed == nil {
					l.consumed = make(map[int64]struct{})
				}
				l.consumed[oldest] = struct{}{}
				return Replaced
			}
		}
		logger.Warn("Own message confirmed without a pending placeholder",
			logger.Int64("message_id", msg.ID),
			logger.Int64("user_id", localUserID))
	}

	next := make([]models.Message, 0, len(l.messages)+1)
	next = append(next, msg)
	l.messages = append(next, l.messages...)
	return Prepended
}

// Fail removes the placeholder with the given sentinel id. When a
// confirmation already took that placeholder, the newest pending one is
// removed instead so every send still resolves exactly once.
func (l *MessageList) Fail(sentinel int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.consumed[sentinel]; ok {
		delete(l.consumed, sentinel)
		if len(l.pending) == 0 {
			return false
		}
		sentinel = l.pending[len(l.pending)-1]
	}

	idx := l.indexOf(sentinel)
	if idx < 0 {
		return false
	}

	next := make([]models.Message, 0, len(l.messages)-1)
	next = append(next, l.messages[:idx]...)
	l.messages = append(next, l.messages[idx+1:]...)

	pending := make([]int64, 0, len(l.pending))
	for _, id := range l.pending {
		if id != sentinel {
			pending = append(pending, id)
		}
	}
	l.pending = pending
	return true
}

func (l *MessageList) isPending(id int64) bool {
	for _, p := range l.pending {
		if p == id {
			return true
		}
	}
	return false
}

func (l *MessageList) indexOf(id int64) int {
	for i, m := range l.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}
