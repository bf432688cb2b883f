package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithExpectedTeams pre-sizes the bucket map.
func WithExpectedTeams(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.expectedTeams = n
		}
	}
}
