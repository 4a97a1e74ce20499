package svg

import "io"

// Option configures a Sanitizer during construction.
type Option func(*Sanitizer)

// WithRandom sets the random byte source used for suffix generation.
// The default is crypto/rand. Tests can inject a deterministic reader
// to get reproducible suffixes.
func WithRandom(r io.Reader) Option {
	return func(s *Sanitizer) {
		if r != nil {
			s.random = r
		}
	}
}
