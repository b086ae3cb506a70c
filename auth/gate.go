// Package auth holds the admin login gate.
//
// The gate is a presentation gate, not a security boundary: it decides
// whether the admin view is shown, while the underlying data stays readable
// and writable regardless. There is no lockout, no audit trail and no
// credential hashing.
package auth

import (
	"crypto/subtle"
	"sync"
)

// Gate is a two-state login machine: logged out or logged in.
type Gate struct {
	mu     sync.Mutex
	secret string
	in     bool
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Submit compares the credential against the configured secret and reports
// whether it matched. On a match the gate transitions to logged in; on a
// mismatch it stays logged out. The caller surfaces the transient
// access-denied signal.
func (g *Gate) Submit(credential string) bool {
	ok := subtle.ConstantTimeCompare([]byte(credential), []byte(g.secret)) == 1
	g.mu.Lock()
	if ok {
		g.in = true
	}
	g.mu.Unlock()
	return ok
}

// Logout returns to logged out unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.in = false
	g.mu.Unlock()
}

// LoggedIn reports the current state.
func (g *Gate) LoggedIn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.in
}
