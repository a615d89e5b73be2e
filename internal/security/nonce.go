// Package security implements the widget's per-session anti-forgery tokens.
package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// NonceService issues and verifies HMAC tokens scoped to an action and a
// widget session. Tokens are valid for the current time window and the one
// before it, so a token issued late in a window does not expire immediately.
type NonceService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewNonceService creates a nonce service. An empty secret gets a random one,
// meaning tokens do not survive a restart; set NONCE_SECRET to share tokens
// across replicas.
func NewNonceService(secret string, ttl time.Duration) *NonceService {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("security: generate nonce secret: %v", err))
		}
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &NonceService{
		secret: key,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the clock, for tests.
func (s *NonceService) WithClock(now func() time.Time) *NonceService {
	s.now = now
	return s
}

// Issue returns a token for the given action and session.
func (s *NonceService) Issue(action, sessionID string) string {
	return s.tokenAt(action, sessionID, s.tick(0))
}

// Verify reports whether token is valid for the action and session in the
// current or previous time window.
func (s *NonceService) Verify(action, sessionID, token string) bool {
	if action == "" || sessionID == "" || token == "" {
		return false
	}
	for _, offset := range []int64{0, -1} {
		expected := s.tokenAt(action, sessionID, s.tick(offset))
		if hmac.Equal([]byte(expected), []byte(token)) {
			return true
		}
	}
	return false
}

// tick buckets time into half-TTL windows: a fresh token lives at least half
// the TTL and at most the full TTL.
func (s *NonceService) tick(offset int64) int64 {
	window := int64(s.ttl / 2 / time.Second)
	return s.now().Unix()/window + offset
}

func (s *NonceService) tokenAt(action, sessionID string, tick int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s|%s", tick, action, sessionID)
	return hex.EncodeToString(mac.Sum(nil))[:20]
}
