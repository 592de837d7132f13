package tokenstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	saved   map[string]models.Credentials
	deleted []string
	loadErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{saved: make(map[string]models.Credentials)}
}

func (m *memoryRepo) Save(ctx context.Context, session string, creds models.Credentials) error {
	m.saved[session] = creds
	return nil
}

func (m *memoryRepo) Load(ctx context.Context, session string) (models.Credentials, error) {
	return m.saved[session], m.loadErr
}

func (m *memoryRepo) Delete(ctx context.Context, session string) error {
	delete(m.saved, session)
	m.deleted = append(m.deleted, session)
	return nil
}

func TestStore_SetIsIdempotent(t *testing.T) {
	s := NewStore(models.Credentials{})
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	creds := models.Credentials{AccessToken: "a1", RefreshToken: "r1"}
	assert.True(t, s.Set(creds))
	assert.False(t, s.Set(creds))

	select {
	case got := <-ch:
		assert.Equal(t, creds, got)
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}

	select {
	case got := <-ch:
		t.Fatalf("unexpected second notification %+v", got)
	default:
	}
}

func TestStore_SingleTokenSetters(t *testing.T) {
	s := NewStore(models.Credentials{AccessToken: "a", RefreshToken: "r"})

	assert.True(t, s.SetAccessToken("a2"))
	assert.False(t, s.SetAccessToken("a2"))
	assert.True(t, s.SetRefreshToken("r2"))

	assert.Equal(t, models.Credentials{AccessToken: "a2", RefreshToken: "r2"}, s.Credentials())
}

func TestStore_SubscriberReceivesLatestOnly(t *testing.T) {
	s := NewStore(models.Credentials{})
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.Set(models.Credentials{AccessToken: "a1", RefreshToken: "r1"})
	s.Set(models.Credentials{AccessToken: "a2", RefreshToken: "r2"})
	s.Set(models.Credentials{AccessToken: "a3", RefreshToken: "r3"})

	got := <-ch
	assert.Equal(t, "a3", got.AccessToken)
}

func TestStore_UnsubscribeClosesChannel(t *testing.T) {
	s := NewStore(models.Credentials{})
	ch, unsubscribe := s.Subscribe()

	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)
	assert.True(t, s.Set(models.Credentials{AccessToken: "a", RefreshToken: "r"}))
}

func TestStore_WritesThroughToRepository(t *testing.T) {
	repo := newMemoryRepo()
	s := NewPersistentStore(models.Credentials{}, "alice", repo)

	s.Set(models.Credentials{AccessToken: "a", RefreshToken: "r"})
	assert.Equal(t, models.Credentials{AccessToken: "a", RefreshToken: "r"}, repo.saved["alice"])

	s.Clear()
	assert.Empty(t, repo.saved)
	assert.Equal(t, []string{"alice"}, repo.deleted)
}

func TestStore_Restore(t *testing.T) {
	tests := []struct {
		name     string
		stored   models.Credentials
		loadErr  error
		want     models.Credentials
		restored bool
		wantErr  bool
	}{
		{
			name:     "complete pair restored",
			stored:   models.Credentials{AccessToken: "a", RefreshToken: "r"},
			want:     models.Credentials{AccessToken: "a", RefreshToken: "r"},
			restored: true,
		},
		{
			name:   "incomplete pair ignored",
			stored: models.Credentials{AccessToken: "a"},
			want:   models.Credentials{AccessToken: "seed", RefreshToken: "seed"},
		},
		{
			name:    "load error surfaced",
			loadErr: errors.New("redis down"),
			want:    models.Credentials{AccessToken: "seed", RefreshToken: "seed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			repo.saved["s"] = tt.stored
			repo.loadErr = tt.loadErr
			s := NewPersistentStore(models.Credentials{AccessToken: "seed", RefreshToken: "seed"}, "s", repo)

			restored, err := s.Restore(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.restored, restored)
			assert.Equal(t, tt.want, s.Credentials())
		})
	}
}

func TestStore_RestoreWithoutRepository(t *testing.T) {
	s := NewStore(models.Credentials{})
	restored, err := s.Restore(context.Background())
	assert.NoError(t, err)
	assert.False(t, restored)
}

// slowRepo holds its first Save until release is closed
type slowRepo struct {
	mu      sync.Mutex
	saved   map[string]models.Credentials
	ops     []string
	entered chan struct{}
	release chan struct{}
	first   sync.Once
}

func (r *slowRepo) Save(ctx context.Context, session string, creds models.Credentials) error {
	r.first.Do(func() {
		close(r.entered)
		<-r.release
	})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved[session] = creds
	r.ops = append(r.ops, "save:"+creds.AccessToken)
	return nil
}

func (r *slowRepo) Load(ctx context.Context, session string) (models.Credentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[session], nil
}

func (r *slowRepo) Delete(ctx context.Context, session string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saved, session)
	r.ops = append(r.ops, "delete")
	return nil
}

func TestStore_RotationRacingClearKeepsLatest(t *testing.T) {
	repo := &slowRepo{
		saved:   make(map[string]models.Credentials),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewPersistentStore(models.Credentials{}, "erin", repo)

	rotated := make(chan struct{})
	go func() {
		s.Set(models.Credentials{AccessToken: "a2", RefreshToken: "r2"})
		close(rotated)
	}()
	<-repo.entered

	cleared := make(chan struct{})
	go func() {
		s.Clear()
		close(cleared)
	}()

	// the clear must wait for the rotation's write
	select {
	case <-cleared:
		t.Fatal("clear persisted while an earlier write was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(repo.release)
	<-rotated
	<-cleared

	creds, err := repo.Load(context.Background(), "erin")
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{}, creds)
	assert.Equal(t, []string{"save:a2", "delete"}, repo.ops)
	assert.Equal(t, models.Credentials{}, s.Credentials())
}
