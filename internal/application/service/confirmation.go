package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Confirmation action names
const (
	ConfirmActionClearCart   = "clear_cart"
	ConfirmActionRemoveLine  = "remove_line"
	ConfirmActionNewTransact = "new_transaction"
)

// Confirmation is the first half of a two-step destructive action. The host
// UI shows Message however it likes and posts the token back to confirm.
type Confirmation struct {
	Token     uuid.UUID `json:"token"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type pendingConfirmation struct {
	registerID string
	action     string
	subject    string // line id or transaction id, depending on action
	expiresAt  time.Time
}

// confirmationVault issues single-use, expiring tokens for destructive
// actions. Tokens are register-scoped.
type confirmationVault struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[uuid.UUID]pendingConfirmation
}

func newConfirmationVault(ttl time.Duration) *confirmationVault {
	return &confirmationVault{
		ttl:     ttl,
		pending: make(map[uuid.UUID]pendingConfirmation),
	}
}

func (v *confirmationVault) issue(registerID, action, subject, message string) *Confirmation {
	v.mu.Lock()
	defer v.mu.Unlock()

	token := uuid.New()
	expiresAt := time.Now().Add(v.ttl)
	v.pending[token] = pendingConfirmation{
		registerID: registerID,
		action:     action,
		subject:    subject,
		expiresAt:  expiresAt,
	}

	// Opportunistically drop anything already expired.
	for t, p := range v.pending {
		if time.Now().After(p.expiresAt) {
			delete(v.pending, t)
		}
	}

	return &Confirmation{
		Token:     token,
		Action:    action,
		Message:   message,
		ExpiresAt: expiresAt,
	}
}

// take consumes a token. It fails for unknown, expired, or foreign-register
// tokens; a taken token can never be replayed.
func (v *confirmationVault) take(registerID string, token uuid.UUID) (pendingConfirmation, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	p, ok := v.pending[token]
	if !ok {
		return pendingConfirmation{}, false
	}
	delete(v.pending, token)

	if p.registerID != registerID || time.Now().After(p.expiresAt) {
		return pendingConfirmation{}, false
	}
	return p, true
}
