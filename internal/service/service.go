// Package service defines the remote capabilities the app depends on. Each
// interface is satisfied by the in-process fixture implementation in this
// package and by the HTTP-backed client, so callers never know which one
// they hold.
package service

import (
	"context"

	"github.com/quickbank/quickbank/internal/models"
)

// AuthService handles login, signup and logout.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Signup(ctx context.Context, data models.SignupData) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// TransactionService serves the transfer history, newest first.
type TransactionService interface {
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
}

// RecipientService serves the saved payee list.
type RecipientService interface {
	GetRecipients(ctx context.Context) ([]models.Recipient, error)
}

// WalletService serves the wallet balance.
type WalletService interface {
	GetBalance(ctx context.Context) (*models.WalletBalance, error)
}

// TransferService submits a money transfer. This is the only operation in the
// contract with a side effect.
type TransferService interface {
	SendMoney(ctx context.Context, req models.SendMoneyRequest) (*models.SendMoneyResult, error)
}
