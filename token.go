package regioncache

import (
	"sync/atomic"

	"github.com/jlpedrosa/regioncache/internal/wire"
)

// tokenState holds a region's only mutable state: the current generation
// token and whether its stored copy is believed to be resident in the
// provider. Both are atomics; the region takes no locks of its own, so
// concurrent Get/Put/Remove/Clear stay race-free at the memory level while
// keeping the documented weak ordering between Put and Clear.
type tokenState struct {
	token   atomic.Pointer[wire.Token]
	present atomic.Bool
}

// Current returns the current token; the zero token before Store is called.
func (s *tokenState) Current() wire.Token {
	if p := s.token.Load(); p != nil {
		return *p
	}
	return wire.Token{}
}

// Load returns the current token and whether its stored copy is resident.
func (s *tokenState) Load() (wire.Token, bool) {
	tok := s.Current()
	return tok, s.present.Load()
}

// Store makes tok current and marks it resident.
func (s *tokenState) Store(tok wire.Token) {
	s.token.Store(&tok)
	s.present.Store(true)
}

// MarkAbsent records that the provider no longer holds the token. The next
// Put installs a fresh one.
func (s *tokenState) MarkAbsent() {
	s.present.Store(false)
}
