// Package search implements the debounced user search backing the
// friend/opponent pickers: local friends are fuzzy-ranked immediately
// while the remote search fills in the rest.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/skillduel/skillduel/skillduel/gateway"
)

const defaultDebounce = 350 * time.Millisecond

// friendItems implements fuzzy.Source over the cached friend list.
type friendItems []gateway.UserSummary

func (f friendItems) String(i int) string {
	return f[i].Username + " " + f[i].DisplayName
}

func (f friendItems) Len() int { return len(f) }

// UserSearcher debounces a rapidly-changing query and delivers merged
// results. Each new query cancels the in-flight timer; results from a
// superseded fetch may still land (no sequence numbers, accepted risk).
type UserSearcher struct {
	gw      gateway.API
	delay   time.Duration
	deliver func([]gateway.UserSummary)

	mu      sync.Mutex
	friends friendItems
	timer   *time.Timer
}

func NewUserSearcher(gw gateway.API, delay time.Duration, deliver func([]gateway.UserSummary)) *UserSearcher {
	if delay <= 0 {
		delay = defaultDebounce
	}
	return &UserSearcher{
		gw:      gw,
		delay:   delay,
		deliver: deliver,
	}
}

// LoadFriends caches the friend list used for local ranking.
func (s *UserSearcher) LoadFriends(ctx context.Context) error {
	friends, err := s.gw.MyFriends(ctx)
	if err != nil {
		return fmt.Errorf("failed to load friends: %w", err)
	}
	s.mu.Lock()
	s.friends = friends
	s.mu.Unlock()
	return nil
}

// Query schedules a search after the debounce delay, cancelling any
// pending one. An empty query cancels outright and delivers nothing.
func (s *UserSearcher) Query(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, query)
	})
}

// Cancel drops any pending query, for input teardown.
func (s *UserSearcher) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *UserSearcher) run(ctx context.Context, query string) {
	results := s.rankFriends(query)

	remote, err := s.gw.SearchUsers(ctx, query)
	if err != nil {
		slog.Debug("Remote user search failed",
			slog.String("type", "api"),
			slog.Any("error", err))
	} else {
		seen := make(map[string]bool, len(results))
		for _, r := range results {
			seen[r.ID] = true
		}
		for _, r := range remote {
			if !seen[r.ID] {
				results = append(results, r)
			}
		}
	}

	s.deliver(results)
}

// rankFriends returns the cached friends fuzzy-matched against the
// query, best matches first.
func (s *UserSearcher) rankFriends(query string) []gateway.UserSummary {
	s.mu.Lock()
	friends := s.friends
	s.mu.Unlock()

	matches := fuzzy.FindFrom(query, friends)
	results := make([]gateway.UserSummary, len(matches))
	for i, match := range matches {
		results[i] = friends[match.Index]
	}
	return results
}
