package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
)

const persistTimeout = 3 * time.Second

// Repository persists the credentials of a named session
type Repository interface {
	Save(ctx context.Context, session string, creds models.Credentials) error
	Load(ctx context.Context, session string) (models.Credentials, error)
	Delete(ctx context.Context, session string) error
}

// Store holds the current access/refresh token pair of a session.
// It performs no validation. Setting a value equal to the current one
// is a no-op and does not notify subscribers.
type Store struct {
	mu      sync.RWMutex
	creds   models.Credentials
	subs    map[int]chan models.Credentials
	nextSub int

	session string
	repo    Repository

	// persistMu orders repository writes; persisted is the last pair written
	persistMu   sync.Mutex
	persisted   models.Credentials
	persistedOK bool
}

// NewStore creates a store seeded with initial credentials
func NewStore(initial models.Credentials) *Store {
	return &Store{
		creds: initial,
		subs:  make(map[int]chan models.Credentials),
	}
}

// NewPersistentStore creates a store that writes every change through to repo
func NewPersistentStore(initial models.Credentials, session string, repo Repository) *Store {
	s := NewStore(initial)
	s.session = session
	s.repo = repo
	return s
}

// Restore replaces the in-memory credentials with the persisted ones when
// the repository has a complete pair for this session.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	if s.repo == nil {
		return false, nil
	}
	creds, err := s.repo.Load(ctx, s.session)
	if err != nil {
		return false, err
	}
	if !creds.Complete() {
		return false, nil
	}
	s.persistMu.Lock()
	s.persisted, s.persistedOK = creds, true
	s.persistMu.Unlock()

	s.set(creds, false)
	return true, nil
}

// Credentials returns the current token pair
func (s *Store) Credentials() models.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// SetAccessToken replaces the access token
func (s *Store) SetAccessToken(token string) bool {
	s.mu.RLock()
	next := s.creds
	s.mu.RUnlock()
	next.AccessToken = token
	return s.Set(next)
}

// SetRefreshToken replaces the refresh token
func (s *Store) SetRefreshToken(token string) bool {
	s.mu.RLock()
	next := s.creds
	s.mu.RUnlock()
	next.RefreshToken = token
	return s.Set(next)
}

// Set replaces both tokens at once and reports whether anything changed
func (s *Store) Set(creds models.Credentials) bool {
	return s.set(creds, true)
}

// Clear empties both tokens, which tears down every socket of the session
func (s *Store) Clear() bool {
	return s.Set(models.Credentials{})
}

func (s *Store) set(creds models.Credentials, persist bool) bool {
	s.mu.Lock()
	if s.creds == creds {
		s.mu.Unlock()
		return false
	}
	s.creds = creds
	for _, ch := range s.subs {
		publishLatest(ch, creds)
	}
	s.mu.Unlock()

	if persist {
		s.persist()
	}
	return true
}

// persist writes the latest credentials, not the ones of the calling
// change, so a slow earlier write never lands after a newer one.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	creds := s.Credentials()
	if s.persistedOK && s.persisted == creds {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	var err error
	if creds == (models.Credentials{}) {
		err = s.repo.Delete(ctx, s.session)
	} else {
		err = s.repo.Save(ctx, s.session, creds)
	}
	if err != nil {
		logger.Warn("Failed to persist session tokens",
			logger.String("session", s.session),
			logger.Err(err))
		return
	}
	s.persisted, s.persistedOK = creds, true
}

// Subscribe returns a channel that receives the latest credentials after
// every change. Intermediate values may be skipped; the last one is never
// lost. The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan models.Credentials, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan models.Credentials, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// publishLatest must be called with s.mu held; it is the only sender.
func publishLatest(ch chan models.Credentials, creds models.Credentials) {
	select {
	case ch <- creds:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- creds
	}
}
