// Package feed holds the in-session notification feed: append-only,
// newest first, never persisted.
package feed

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"leaguehub/internal/domain/notifications"
	"leaguehub/internal/metrics"
)

// Service owns the notification list for the running session.
type Service struct {
	mu       sync.RWMutex
	items    []notifications.Notification
	recorder *metrics.Recorder

	now   func() time.Time
	newID func() string
}

// NewService constructs an empty feed.
func NewService(recorder *metrics.Recorder) *Service {
	return &Service{
		recorder: recorder,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Seed replaces the feed contents, used once at startup for the launch
// entries.
func (s *Service) Seed(items []notifications.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]notifications.Notification, len(items))
	copy(s.items, items)
}

// Add prepends a new unread entry and returns it.
func (s *Service) Add(title, message string, typ notifications.Type) notifications.Notification {
	n := notifications.Notification{
		ID:        s.newID(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: s.now(),
		Read:      false,
	}

	s.mu.Lock()
	s.items = append([]notifications.Notification{n}, s.items...)
	s.mu.Unlock()

	s.recorder.RecordNotification(string(typ))
	return n
}

// List returns a copy of the feed, newest first.
func (s *Service) List() []notifications.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]notifications.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount returns how many entries are unread.
func (s *Service) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}
