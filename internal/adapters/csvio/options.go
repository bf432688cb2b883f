// Package csvio reads and writes the CSV tables used by the partition and
// analysis tools.
package csvio

// DefaultChunkSize is the number of plays returned per chunk.
const DefaultChunkSize = 10_000

// Option applies a configuration option to the PlayReader.
type Option func(*PlayReader)

// WithChunkSize sets the maximum number of plays per chunk.
func WithChunkSize(size int) Option {
	return func(r *PlayReader) {
		if size > 0 {
			r.chunkSize = size
		}
	}
}

// WithRequiredColumns sets columns whose absence from the header fails
// NewPlayReader.
func WithRequiredColumns(cols ...string) Option {
	return func(r *PlayReader) {
		r.required = append(r.required, cols...)
	}
}
