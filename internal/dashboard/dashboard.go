// Package dashboard aggregates the independent read-only loads shown on the
// home screen.
package dashboard

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/service"
)

// Snapshot is an aggregated dashboard load. Each section carries its own
// error so a partial failure is visible to the caller instead of silently
// rendering an empty view.
type Snapshot struct {
	Balance      *models.WalletBalance
	Transactions []models.Transaction
	Recipients   []models.Recipient

	BalanceErr      error
	TransactionsErr error
	RecipientsErr   error
}

// Partial reports whether at least one section failed while another loaded.
func (s *Snapshot) Partial() bool {
	failed := 0
	if s.BalanceErr != nil {
		failed++
	}
	if s.TransactionsErr != nil {
		failed++
	}
	if s.RecipientsErr != nil {
		failed++
	}
	return failed > 0 && failed < 3
}

// Err joins every section error, or nil when all sections loaded.
func (s *Snapshot) Err() error {
	return errors.Join(s.BalanceErr, s.TransactionsErr, s.RecipientsErr)
}

// Loader fetches the three dashboard sections concurrently.
type Loader struct {
	wallet       service.WalletService
	transactions service.TransactionService
	recipients   service.RecipientService
}

func NewLoader(wallet service.WalletService, transactions service.TransactionService, recipients service.RecipientService) *Loader {
	return &Loader{wallet: wallet, transactions: transactions, recipients: recipients}
}

// Load runs all three fetches and waits for every one to complete; one
// section failing does not cancel the others. The snapshot is always
// non-nil. The returned error is the strict all-complete join: non-nil if
// any section failed.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	var g errgroup.Group

	g.Go(func() error {
		snap.Balance, snap.BalanceErr = l.wallet.GetBalance(ctx)
		return snap.BalanceErr
	})
	g.Go(func() error {
		snap.Transactions, snap.TransactionsErr = l.transactions.GetTransactions(ctx)
		return snap.TransactionsErr
	})
	g.Go(func() error {
		snap.Recipients, snap.RecipientsErr = l.recipients.GetRecipients(ctx)
		return snap.RecipientsErr
	})

	if err := g.Wait(); err != nil {
		return snap, err
	}
	return snap, nil
}
