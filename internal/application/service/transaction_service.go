package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	"github.com/prasety/kasirku-api/internal/domain/enum"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/prasety/kasirku-api/pkg/apperror"
	"github.com/prasety/kasirku-api/pkg/money"
	"github.com/prasety/kasirku-api/pkg/pagination"
	"github.com/prasety/kasirku-api/pkg/utils"
)

// TransactionService finalizes sales and keeps the history ledger.
type TransactionService struct {
	transactions domainRepo.TransactionRepository
	earnings     domainRepo.EarningRepository
	carts        *CartService
	confirms     *confirmationVault
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactions domainRepo.TransactionRepository,
	earnings domainRepo.EarningRepository,
	carts *CartService,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		earnings:     earnings,
		carts:        carts,
		confirms:     newConfirmationVault(confirmTTL),
	}
}

// CloseOutcome reports the result of confirming a new transaction: the
// closed record and the freshly reset cart.
type CloseOutcome struct {
	Transaction *entity.Transaction `json:"transaction"`
	Cart        *CartView           `json:"cart"`
}

// Finalize freezes the current cart and payment into an immutable record.
// It fails on an empty cart and on insufficient payment, reporting the
// exact shortage. The cart is left untouched either way; it resets only
// when the operator confirms starting a new transaction.
func (s *TransactionService) Finalize(ctx context.Context, registerID, tenderedRaw string) (*entity.Transaction, error) {
	cart := s.carts.Cart(ctx, registerID)
	if cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	total := cart.Total()
	tendered := money.Parse(tenderedRaw)
	if tendered < total {
		return nil, apperror.NewInsufficientPaymentError(total - tendered)
	}

	transaction := entity.FreezeTransaction(registerID, utils.GenerateTransactionNo(), cart, tendered)

	// The frozen record is the source of truth for the receipt; the history
	// ledger is a side store, so a write failure must not block the sale.
	if err := s.transactions.Create(ctx, transaction); err != nil {
		log.Printf("Warning: could not record transaction %s: %v", transaction.TransactionNo, err)
	}

	return transaction, nil
}

// RequestClose starts the two-step reset after a finalized sale.
func (s *TransactionService) RequestClose(ctx context.Context, registerID string, transactionID uuid.UUID) (*Confirmation, error) {
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.NewNotFoundError("Transaksi")
	}
	if transaction.RegisterID != registerID {
		return nil, apperror.NewNotFoundError("Transaksi")
	}
	if transaction.Status != enum.TransactionStatusFinalized {
		return nil, apperror.NewBadRequestError("Transaksi sudah ditutup")
	}

	message := "Transaksi berhasil! Mulai transaksi baru?"
	return s.confirms.issue(registerID, ConfirmActionNewTransact, transactionID.String(), message), nil
}

// ConfirmClose executes a pending new-transaction reset: the record is
// marked closed exactly once, the sale lands in the income ledger, and the
// register's cart is emptied.
func (s *TransactionService) ConfirmClose(ctx context.Context, registerID string, token uuid.UUID) (*CloseOutcome, error) {
	pending, ok := s.confirms.take(registerID, token)
	if !ok || pending.action != ConfirmActionNewTransact {
		return nil, apperror.ErrInvalidConfirmToken
	}

	transactionID, err := utils.ParseUUID(pending.subject)
	if err != nil {
		return nil, apperror.ErrInvalidConfirmToken
	}

	// Load the record before closing it. Closing first would mean a failed
	// reload loses the income entry for good: the status is already closed,
	// so no retry could ever book the sale.
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		log.Printf("Warning: could not load transaction %s: %v", transactionID, err)
	}

	if transaction != nil {
		closedAt := time.Now()
		marked, err := s.transactions.MarkClosed(ctx, transactionID, closedAt)
		if err != nil {
			log.Printf("Warning: could not close transaction %s: %v", transactionID, err)
		}

		// Record income once per transaction; a replayed or already-closed
		// record must not double-count.
		if marked {
			transaction.Status = enum.TransactionStatusClosed
			transaction.ClosedAt = &closedAt

			earning := &entity.Earning{
				Amount:        transaction.Total,
				Source:        enum.EarningSourceSale,
				TransactionID: &transaction.ID,
				RecordedAt:    time.Now(),
			}
			if err := s.earnings.Create(ctx, earning); err != nil {
				log.Printf("Warning: could not record earning for %s: %v", transaction.TransactionNo, err)
			}
		}
	}

	return &CloseOutcome{
		Transaction: transaction,
		Cart:        s.carts.ResetAfterSale(ctx, registerID),
	}, nil
}

// Get returns one transaction with its lines.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewNotFoundError("Transaksi")
	}
	return transaction, nil
}

// List returns the transaction history, newest first.
func (s *TransactionService) List(ctx context.Context, params *domainRepo.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	params.Pagination.Validate()

	transactions, total, err := s.transactions.List(ctx, params)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transactions, meta), nil
}
