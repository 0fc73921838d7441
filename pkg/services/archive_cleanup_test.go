package services

import (
	"errors"
	"io"
	"testing"
	"time"
)

type memoryStore struct {
	objects []StoredObject
	deleted []string
	failOn  string
}

func (m *memoryStore) EnsureBucket() error { return nil }
func (m *memoryStore) PutObject(key string, body io.Reader) error { return nil }
func (m *memoryStore) ObjectExists(key string) (bool, error) { return false, nil }

func (m *memoryStore) ListObjects(prefix string, extensions ...string) ([]StoredObject, error) {
	return m.objects, nil
}

func (m *memoryStore) DeleteObject(key string) error {
	if key == m.failOn {
		return errors.New("access denied")
	}

	m.deleted = append(m.deleted, key)
	return nil
}

func TestCleanupExpiredRemovesOldArchives(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	store := &memoryStore{
		objects: []StoredObject{
			{Key: "archive/1/original.jpg", LastModified: now.AddDate(0, 0, -40)},
			{Key: "archive/1/thumbnail.jpg", LastModified: now.AddDate(0, 0, -40)},
			{Key: "archive/2/original.jpg", LastModified: now.AddDate(0, 0, -2)},
			{Key: "archive/3/original.jpg", LastModified: now.AddDate(0, 0, -31)},
		},
		failOn: "archive/3/original.jpg",
	}

	s := NewArchiveService(ArchiveServiceConfig{RetentionDays: 30, Store: store})

	if removed := s.cleanupExpired(now); removed != 2 {
		t.Fatalf("expected 2 removals but got %d", removed)
	}

	if len(store.deleted) != 2 || store.deleted[0] != "archive/1/original.jpg" {
		t.Fatalf("unexpected deletions %v", store.deleted)
	}
}

func TestCleanupRoutineDisabledWithoutRetention(t *testing.T) {
	s := NewArchiveService(ArchiveServiceConfig{Store: &memoryStore{}})

	s.StartCleanupRoutine(time.Millisecond)

	if s.cleanupTicker != nil {
		t.Fatalf("expected no cleanup routine when retention is zero")
	}

	s.StopCleanupRoutine()
}

func TestCleanupRoutineStartStop(t *testing.T) {
	s := NewArchiveService(ArchiveServiceConfig{RetentionDays: 1, Store: &memoryStore{}})

	s.StartCleanupRoutine(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	s.StopCleanupRoutine()

	if s.cleanupTicker != nil {
		t.Fatalf("expected the routine to be stopped")
	}
}
