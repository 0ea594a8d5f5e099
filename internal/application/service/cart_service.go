package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/prasety/kasirku-api/pkg/money"
)

// confirmTTL is how long a destructive-action confirmation stays valid.
const confirmTTL = 2 * time.Minute

// CartService owns the live cart of every register. The cart entity has no
// locking of its own, so every operation goes through the per-register
// session mutex; HTTP handlers may hit the same register concurrently.
type CartService struct {
	store    domainRepo.SnapshotStore
	confirms *confirmationVault

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	mu   sync.Mutex
	cart *entity.Cart
	// restoredNotice is pending until the first view after a restore.
	restoredNotice bool
}

// NewCartService creates a new cart service
func NewCartService(store domainRepo.SnapshotStore) *CartService {
	return &CartService{
		store:    store,
		confirms: newConfirmationVault(confirmTTL),
		sessions: make(map[string]*cartSession),
	}
}

// CartView is the read model handed to the presentation layer.
type CartView struct {
	Lines        []entity.CartLine `json:"lines"`
	Total        int64             `json:"total"`
	TotalDisplay string            `json:"total_display"`
	ItemCount    int               `json:"item_count"`
	Restored     bool              `json:"restored,omitempty"`
}

// AddResult reports what Add did, for user-facing messaging.
type AddResult struct {
	Line    entity.CartLine `json:"line"`
	Merged  bool            `json:"merged"`
	Message string          `json:"message"`
	Cart    *CartView       `json:"cart"`
}

// ConfirmOutcome reports which pending action a confirmation executed.
type ConfirmOutcome struct {
	Action  string    `json:"action"`
	Message string    `json:"message"`
	Cart    *CartView `json:"cart"`
}

// session returns the register's session, creating it on first touch. A new
// session tries to restore the persisted snapshot; store failures degrade to
// an empty cart and are only logged.
func (s *CartService) session(ctx context.Context, registerID string) *cartSession {
	s.mu.Lock()
	if sess, ok := s.sessions[registerID]; ok {
		s.mu.Unlock()
		return sess
	}

	sess := &cartSession{cart: entity.NewCart()}
	// The session lock is taken before the session becomes visible, so a
	// concurrent request for the same register blocks until the restore
	// is done and cannot overwrite the stored snapshot with an empty cart.
	sess.mu.Lock()
	s.sessions[registerID] = sess
	s.mu.Unlock()

	lines, restored, err := s.store.Load(ctx, registerID)
	if err != nil {
		log.Printf("Warning: could not load cart snapshot for %s: %v", registerID, err)
	} else if restored {
		sess.cart = entity.RestoreCart(lines)
		sess.restoredNotice = true
	}
	sess.mu.Unlock()
	return sess
}

// save persists the cart after a mutation. Persistence is best-effort
// caching: failures are logged and swallowed, never surfaced.
func (s *CartService) save(ctx context.Context, registerID string, sess *cartSession) {
	if err := s.store.Save(ctx, registerID, sess.cart.Lines()); err != nil {
		log.Printf("Warning: could not save cart snapshot for %s: %v", registerID, err)
	}
}

func (s *CartService) view(sess *cartSession) *CartView {
	total := sess.cart.Total()
	v := &CartView{
		Lines:        sess.cart.Lines(),
		Total:        total,
		TotalDisplay: money.Format(total),
		ItemCount:    sess.cart.ItemCount(),
		Restored:     sess.restoredNotice,
	}
	sess.restoredNotice = false
	return v
}

// Get returns the current cart. The restored notice is reported once.
func (s *CartService) Get(ctx context.Context, registerID string) *CartView {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess)
}

// Add validates the candidate and merges it into the cart: an existing line
// with the same case-insensitive name gains quantity, otherwise a new line
// is appended.
func (s *CartService) Add(ctx context.Context, registerID, name, priceRaw string) (*AddResult, error) {
	name, price, fieldErrors := ValidateCandidate(name, priceRaw)
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	line, merged := sess.cart.Add(name, price)
	s.save(ctx, registerID, sess)

	message := fmt.Sprintf("%s ditambahkan ke keranjang", line.Name)
	if merged {
		message = fmt.Sprintf("Jumlah %s ditambahkan", line.Name)
	}
	return &AddResult{
		Line:    line,
		Merged:  merged,
		Message: message,
		Cart:    s.view(sess),
	}, nil
}

// IncreaseQuantity bumps a line by one, capped at the quantity ceiling.
// Unknown lines and capped lines are a silent no-op.
func (s *CartService) IncreaseQuantity(ctx context.Context, registerID, lineID string) *CartView {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.cart.IncreaseQuantity(lineID) {
		s.save(ctx, registerID, sess)
	}
	return s.view(sess)
}

// DecreaseQuantity lowers a line by one, never below one.
func (s *CartService) DecreaseQuantity(ctx context.Context, registerID, lineID string) *CartView {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.cart.DecreaseQuantity(lineID) {
		s.save(ctx, registerID, sess)
	}
	return s.view(sess)
}

// RequestRemoveLine starts the two-step removal of a line.
func (s *CartService) RequestRemoveLine(ctx context.Context, registerID, lineID string) (*Confirmation, error) {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	line, ok := sess.cart.Line(lineID)
	sess.mu.Unlock()
	if !ok {
		return nil, apperror.NewNotFoundError("Item")
	}

	message := fmt.Sprintf("Hapus %s dari keranjang?", line.Name)
	return s.confirms.issue(registerID, ConfirmActionRemoveLine, lineID, message), nil
}

// RequestClear starts the two-step clearing of the whole cart.
func (s *CartService) RequestClear(ctx context.Context, registerID string) (*Confirmation, error) {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	empty := sess.cart.IsEmpty()
	count := sess.cart.ItemCount()
	sess.mu.Unlock()
	if empty {
		return nil, apperror.NewBadRequestError("Keranjang sudah kosong")
	}

	message := fmt.Sprintf("Yakin ingin mengosongkan keranjang? (%d item akan dihapus)", count)
	return s.confirms.issue(registerID, ConfirmActionClearCart, "", message), nil
}

// Confirm executes a pending destructive cart action. Unknown, expired,
// replayed, or foreign-register tokens are rejected.
func (s *CartService) Confirm(ctx context.Context, registerID string, token uuid.UUID) (*ConfirmOutcome, error) {
	pending, ok := s.confirms.take(registerID, token)
	if !ok {
		return nil, apperror.ErrInvalidConfirmToken
	}

	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	outcome := &ConfirmOutcome{Action: pending.action}
	switch pending.action {
	case ConfirmActionRemoveLine:
		// A line already gone is fine; removal is idempotent.
		sess.cart.Remove(pending.subject)
		outcome.Message = "Item berhasil dihapus"
	case ConfirmActionClearCart:
		sess.cart.Clear()
		outcome.Message = "Keranjang berhasil dikosongkan"
	default:
		return nil, apperror.ErrInvalidConfirmToken
	}

	s.save(ctx, registerID, sess)
	outcome.Cart = s.view(sess)
	return outcome, nil
}

// State exposes a copy of the cart for derived computations (payment
// preview, finalization).
func (s *CartService) State(ctx context.Context, registerID string) ([]entity.CartLine, money.Amount) {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.cart.Lines(), sess.cart.Total()
}

// Cart returns a restored copy of the register's cart, frozen at call time.
func (s *CartService) Cart(ctx context.Context, registerID string) *entity.Cart {
	lines, _ := s.State(ctx, registerID)
	return entity.RestoreCart(lines)
}

// ResetAfterSale empties the cart once the operator confirms starting a new
// transaction.
func (s *CartService) ResetAfterSale(ctx context.Context, registerID string) *CartView {
	sess := s.session(ctx, registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.Clear()
	s.save(ctx, registerID, sess)
	return s.view(sess)
}

// Flush persists every live session once more. Called on shutdown as a
// final best-effort save; every mutation has already saved, this only
// guards against snapshots missed by a failing store.
func (s *CartService) Flush(ctx context.Context) {
	s.mu.Lock()
	registers := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		registers = append(registers, id)
	}
	s.mu.Unlock()

	for _, id := range registers {
		sess := s.session(ctx, id)
		sess.mu.Lock()
		s.save(ctx, id, sess)
		sess.mu.Unlock()
	}
}
