package service

import (
	"context"
	"time"

	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/utils"
)

// MockToken is the fixed token issued by the in-process auth implementation.
const MockToken = "mock-token-123"

// MockAuthService resolves fixture auth responses. Login echoes the submitted
// email into the returned user; signup echoes the submitted name fields.
type MockAuthService struct{}

func (MockAuthService) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return &models.AuthResponse{
		User: models.User{
			ID:        "1",
			FirstName: "John",
			LastName:  "Doe",
			Email:     creds.Email,
		},
		Token: MockToken,
	}, nil
}

func (MockAuthService) Signup(_ context.Context, data models.SignupData) (*models.AuthResponse, error) {
	return &models.AuthResponse{
		User: models.User{
			ID:        "1",
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
		},
		Token: MockToken,
	}, nil
}

func (MockAuthService) Logout(_ context.Context) error {
	return nil
}

// MockTransactionService serves the fixed transfer history, newest first.
type MockTransactionService struct{}

func (MockTransactionService) GetTransactions(_ context.Context) ([]models.Transaction, error) {
	return []models.Transaction{
		{ID: 1, Recipient: "Sarah Johnson", Amount: 150, Type: models.TypeSent, Date: "2024-12-15", Status: models.StatusCompleted, Reference: "TXN001234", Flag: "🇬🇧"},
		{ID: 2, Recipient: "Mike Chen", Amount: 75, Type: models.TypeSent, Date: "2024-12-14", Status: models.StatusCompleted, Reference: "TXN001235", Flag: "🇨🇦"},
		{ID: 3, Recipient: "Emma Davis", Amount: 200, Type: models.TypeReceived, Date: "2024-12-10", Status: models.StatusCompleted, Reference: "TXN001236", Flag: "🇦🇺"},
		{ID: 4, Recipient: "John Smith", Amount: 50, Type: models.TypeSent, Date: "2024-12-09", Status: models.StatusPending, Reference: "TXN001237", Flag: "🇺🇸"},
	}, nil
}

// MockRecipientService serves the fixed payee list.
type MockRecipientService struct{}

func (MockRecipientService) GetRecipients(_ context.Context) ([]models.Recipient, error) {
	return []models.Recipient{
		{ID: 1, Name: "Sarah Johnson", Country: "UK", Bank: "Barclays", Flag: "🇬🇧", AccountNumber: "****4567"},
		{ID: 2, Name: "Mike Chen", Country: "Canada", Bank: "TD Bank", Flag: "🇨🇦", AccountNumber: "****8901"},
		{ID: 3, Name: "Emma Davis", Country: "Australia", Bank: "NAB", Flag: "🇦🇺", AccountNumber: "****2345"},
	}, nil
}

// MockWalletService serves the fixed balance.
type MockWalletService struct{}

func (MockWalletService) GetBalance(_ context.Context) (*models.WalletBalance, error) {
	return &models.WalletBalance{Balance: 5432.50, Currency: "USD"}, nil
}

// MockTransferService accepts every transfer and mints a time-based
// transaction reference. Now is overridable for tests.
type MockTransferService struct {
	Now func() time.Time
}

func (s MockTransferService) SendMoney(_ context.Context, req models.SendMoneyRequest) (*models.SendMoneyResult, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return &models.SendMoneyResult{
		Success:       true,
		TransactionID: utils.NewTransactionRef(now()),
	}, nil
}

// PaymentMethods returns the payment options offered at the last wizard step.
func PaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: 1, Label: "Visa ending in 4242", Desc: "Instant"},
		{ID: 2, Label: "Bank account — Chase", Desc: "1-2 hours"},
		{ID: 3, Label: "Apple Pay", Desc: "Instant"},
	}
}
