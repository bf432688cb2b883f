package repository

import (
	"context"

	"github.com/okian/pbpsplit/internal/domain/model"
	"github.com/okian/pbpsplit/pkg/metrics"
)

// defaultExpectedTeams matches a full league.
const defaultExpectedTeams = 32

// bucket keeps each appended batch as its own segment; segments are
// concatenated in order when the bucket is read.
type bucket struct {
	segments [][]model.Play
	count    int
}

// MemoryStore is an in-memory Store. It is owned by a single partition run
// and is not safe for concurrent use.
type MemoryStore struct {
	buckets       map[string]*bucket
	total         int
	expectedTeams int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{expectedTeams: defaultExpectedTeams}
	for _, opt := range opts {
		opt(s)
	}
	s.buckets = make(map[string]*bucket, s.expectedTeams)
	return s
}

// Append implements Store.
func (s *MemoryStore) Append(_ context.Context, team string, plays ...model.Play) error {
	if team == "" {
		return ErrEmptyTeam
	}
	if len(plays) == 0 {
		return nil
	}
	b, ok := s.buckets[team]
	if !ok {
		b = &bucket{}
		s.buckets[team] = b
	}
	b.segments = append(b.segments, plays)
	b.count += len(plays)
	s.total += len(plays)
	metrics.UpdateBufferedPlays(s.total)
	return nil
}

// Plays implements Store.
func (s *MemoryStore) Plays(_ context.Context, team string) ([]model.Play, error) {
	b, ok := s.buckets[team]
	if !ok || b.count == 0 {
		return nil, ErrNotFound
	}
	out := make([]model.Play, 0, b.count)
	for _, seg := range b.segments {
		out = append(out, seg...)
	}
	return out, nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context, team string) int {
	if b, ok := s.buckets[team]; ok {
		return b.count
	}
	return 0
}

// Total implements Store.
func (s *MemoryStore) Total(_ context.Context) int { return s.total }

// Release implements Store.
func (s *MemoryStore) Release(_ context.Context, team string) {
	b, ok := s.buckets[team]
	if !ok {
		return
	}
	s.total -= b.count
	delete(s.buckets, team)
	metrics.UpdateBufferedPlays(s.total)
}
