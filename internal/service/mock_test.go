package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/quickbank/quickbank/internal/models"
)

func TestMockAuthEchoesInput(t *testing.T) {
	ctx := context.Background()
	var auth MockAuthService

	login, err := auth.Login(ctx, models.Credentials{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	want := models.User{ID: "1", FirstName: "John", LastName: "Doe", Email: "a@b.com"}
	if login.User != want {
		t.Errorf("login user = %+v, want %+v", login.User, want)
	}
	if login.Token != MockToken {
		t.Errorf("login token = %q, want %q", login.Token, MockToken)
	}

	signup, err := auth.Signup(ctx, models.SignupData{FirstName: "Jane", LastName: "Smith", Email: "j@s.com"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if signup.User.FirstName != "Jane" || signup.User.LastName != "Smith" || signup.User.Email != "j@s.com" {
		t.Errorf("signup did not echo fields: %+v", signup.User)
	}

	if err := auth.Logout(ctx); err != nil {
		t.Errorf("Logout: %v", err)
	}
}

func TestMockTransactionsFixture(t *testing.T) {
	list, err := MockTransactionService{}.GetTransactions(context.Background())
	if err != nil {
		t.Fatalf("GetTransactions: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("got %d transactions, want 4", len(list))
	}
	// Insertion order is recency: newest first.
	for i := 1; i < len(list); i++ {
		if list[i-1].Date < list[i].Date {
			t.Errorf("transactions out of order: %s before %s", list[i-1].Date, list[i].Date)
		}
	}
	if list[0].Recipient != "Sarah Johnson" || list[0].Amount != 150 {
		t.Errorf("unexpected first transaction: %+v", list[0])
	}
}

func TestMockRecipientsFixture(t *testing.T) {
	list, err := MockRecipientService{}.GetRecipients(context.Background())
	if err != nil {
		t.Fatalf("GetRecipients: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d recipients, want 3", len(list))
	}
	if list[0].Name != "Sarah Johnson" || list[0].Bank != "Barclays" {
		t.Errorf("unexpected first recipient: %+v", list[0])
	}
}

func TestMockWalletFixture(t *testing.T) {
	balance, err := MockWalletService{}.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Balance != 5432.50 || balance.Currency != "USD" {
		t.Errorf("balance = %+v, want {5432.5 USD}", balance)
	}
}

func TestMockTransferRef(t *testing.T) {
	at := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)
	svc := MockTransferService{Now: func() time.Time { return at }}

	result, err := svc.SendMoney(context.Background(), models.SendMoneyRequest{
		RecipientID: 1, Amount: 100, Currency: "USD", Purpose: "Rent",
	})
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}
	if !result.Success {
		t.Error("mock transfer not successful")
	}
	want := "TXN1734307200000"
	if result.TransactionID != want {
		t.Errorf("transactionId = %q, want %q", result.TransactionID, want)
	}
	if !strings.HasPrefix(result.TransactionID, "TXN") {
		t.Errorf("transactionId missing TXN prefix: %q", result.TransactionID)
	}
}

func TestFilterTransactions(t *testing.T) {
	list, _ := MockTransactionService{}.GetTransactions(context.Background())

	tests := []struct {
		name   string
		txType string
		status string
		want   int
	}{
		{"no filter", "", "", 4},
		{"all all", FilterAll, FilterAll, 4},
		{"sent only", models.TypeSent, "", 3},
		{"received only", models.TypeReceived, "", 1},
		{"pending only", "", models.StatusPending, 1},
		{"sent and completed", models.TypeSent, models.StatusCompleted, 2},
		{"received and failed", models.TypeReceived, models.StatusFailed, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(list, tt.txType, tt.status)
			if len(got) != tt.want {
				t.Errorf("got %d transactions, want %d", len(got), tt.want)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	list, _ := MockTransactionService{}.GetTransactions(context.Background())
	sent, received := Totals(list)
	if sent != 275 {
		t.Errorf("sent total = %v, want 275", sent)
	}
	if received != 200 {
		t.Errorf("received total = %v, want 200", received)
	}
}

func TestPaymentMethodsFixture(t *testing.T) {
	methods := PaymentMethods()
	if len(methods) != 3 {
		t.Fatalf("got %d payment methods, want 3", len(methods))
	}
	if methods[0].Label != "Visa ending in 4242" {
		t.Errorf("unexpected first method: %+v", methods[0])
	}
}
