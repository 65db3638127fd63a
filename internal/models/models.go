package models

// Transaction direction values.
const (
	TypeSent     = "sent"
	TypeReceived = "received"
)

// Transaction status values.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Credentials is a login input. It is never persisted.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupData is a registration input. ConfirmPassword is checked client-side
// and never leaves the device on mismatch.
type SignupData struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// AuthResponse is the shape returned by both login and signup.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Transaction struct {
	ID        int     `json:"id"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Reference string  `json:"reference,omitempty"`
	Flag      string  `json:"flag,omitempty"`
}

// Recipient is a saved payee profile a user can send money to.
type Recipient struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Bank          string `json:"bank"`
	Flag          string `json:"flag"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

type WalletBalance struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type SendMoneyRequest struct {
	RecipientID int     `json:"recipientId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required"`
	Purpose     string  `json:"purpose" validate:"required"`
}

type SendMoneyResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}

type PaymentMethod struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
}
