package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) SessionKey(accessID string) string { return "cw:session:" + accessID }

func newTestManager() (*Manager, *fakeStore) {
	store := newFakeStore()
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Minute}, store
}

func TestMarkAndClear(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	id := NewAccessID()
	if err := m.Mark(ctx, id, 42); err != nil {
		t.Fatalf("mark: %v", err)
	}

	has, err := m.Has(ctx, id)
	if err != nil || !has {
		t.Fatalf("expected marker to exist, got %v (%v)", has, err)
	}

	if err := m.Clear(ctx, id); err != nil {
		t.Fatalf("clear: %v", err)
	}
	has, err = m.Has(ctx, id)
	if err != nil || has {
		t.Fatalf("expected marker to be gone, got %v (%v)", has, err)
	}
}

func TestClearMissingMarkerSucceeds(t *testing.T) {
	m, _ := newTestManager()
	if err := m.Clear(context.Background(), "never-marked"); err != nil {
		t.Fatalf("clearing an absent marker must not fail: %v", err)
	}
}

func TestMarkRequiresAccessID(t *testing.T) {
	m, _ := newTestManager()
	if err := m.Mark(context.Background(), " ", 1); err == nil {
		t.Fatal("expected error for blank access id")
	}
}
