// Package wizard implements the four-step send-money flow.
package wizard

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"

	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/service"
)

// Step identifies a stage of the flow. Progression is strictly linear.
type Step int

const (
	StepSelectRecipient Step = iota
	StepEnterDetails
	StepReview
	StepPayment
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepSelectRecipient:
		return "select_recipient"
	case StepEnterDetails:
		return "enter_details"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrNoRecipient     = errors.New("no recipient selected")
	ErrNoAmount        = errors.New("amount must be greater than zero")
	ErrNoPurpose       = errors.New("purpose is required")
	ErrNoPaymentMethod = errors.New("no payment method chosen")
	ErrNotAtPayment    = errors.New("transfer can only be submitted from the payment step")
	ErrAlreadyDone     = errors.New("transfer already submitted")
)

// amountPattern accepts decimal input with at most two fraction digits.
var amountPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// Wizard drives a single send-money session. It owns every entered value;
// Back preserves them, and Submit at the payment step is the only operation
// with an external side effect, so abandoning the flow earlier leaves
// nothing to undo.
type Wizard struct {
	transfers service.TransferService
	quote     Quote

	step      Step
	recipient *models.Recipient
	amount    float64
	purpose   string
	method    *models.PaymentMethod
}

func New(transfers service.TransferService, quote Quote) *Wizard {
	return &Wizard{transfers: transfers, quote: quote}
}

func (w *Wizard) Step() Step                           { return w.step }
func (w *Wizard) Quote() Quote                         { return w.quote }
func (w *Wizard) Recipient() *models.Recipient         { return w.recipient }
func (w *Wizard) Amount() float64                      { return w.amount }
func (w *Wizard) Purpose() string                      { return w.purpose }
func (w *Wizard) PaymentMethod() *models.PaymentMethod { return w.method }

// Derived values, recomputed on demand rather than stored.
func (w *Wizard) Converted() float64   { return w.quote.Converted(w.amount) }
func (w *Wizard) Fee() float64         { return w.quote.Fee(w.amount) }
func (w *Wizard) NetReceived() float64 { return w.quote.Net(w.amount) }

func (w *Wizard) SelectRecipient(r models.Recipient) {
	w.recipient = &r
}

// SetAmount parses an edited send-amount field. Input that does not look
// like a decimal amount is ignored, matching the field's input mask;
// negative or non-finite values clamp to zero.
func (w *Wizard) SetAmount(input string) {
	if v, ok := parseAmount(input); ok {
		w.amount = v
	}
}

// SetReceiveAmount back-solves the send amount from an edited receive-amount
// field using the quote's fixed rate.
func (w *Wizard) SetReceiveAmount(input string) {
	if v, ok := parseAmount(input); ok {
		w.amount = clampAmount(w.quote.BackSolve(v))
	}
}

func (w *Wizard) SetPurpose(p string) {
	w.purpose = p
}

func (w *Wizard) SelectPaymentMethod(m models.PaymentMethod) {
	w.method = &m
}

// Next advances one step if the current step's guard is satisfied. The
// payment step only advances through Submit.
func (w *Wizard) Next() error {
	switch w.step {
	case StepSelectRecipient:
		if w.recipient == nil {
			return ErrNoRecipient
		}
		w.step = StepEnterDetails
	case StepEnterDetails:
		if w.amount <= 0 {
			return ErrNoAmount
		}
		if w.purpose == "" {
			return ErrNoPurpose
		}
		w.step = StepReview
	case StepReview:
		w.step = StepPayment
	case StepPayment:
		return ErrNotAtPayment
	case StepSubmitted:
		return ErrAlreadyDone
	}
	return nil
}

// Back moves exactly one step backward. Entered values are never cleared.
func (w *Wizard) Back() {
	if w.step > StepSelectRecipient && w.step < StepSubmitted {
		w.step--
	}
}

// Submit sends the transfer. Every guard is re-checked here so a transfer
// can never reach the wire with a missing field. On failure the wizard stays
// at the payment step with all state intact.
func (w *Wizard) Submit(ctx context.Context) (*models.SendMoneyResult, error) {
	if w.step != StepPayment {
		return nil, ErrNotAtPayment
	}
	if w.recipient == nil {
		return nil, ErrNoRecipient
	}
	if w.amount <= 0 {
		return nil, ErrNoAmount
	}
	if w.purpose == "" {
		return nil, ErrNoPurpose
	}
	if w.method == nil {
		return nil, ErrNoPaymentMethod
	}

	result, err := w.transfers.SendMoney(ctx, models.SendMoneyRequest{
		RecipientID: w.recipient.ID,
		Amount:      w.amount,
		Currency:    w.quote.SendCurrency,
		Purpose:     w.purpose,
	})
	if err != nil {
		return nil, err
	}
	w.step = StepSubmitted
	return result, nil
}

func parseAmount(input string) (float64, bool) {
	if !amountPattern.MatchString(input) {
		return 0, false
	}
	if input == "" || input == "." {
		return 0, true
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, false
	}
	return clampAmount(v), true
}

func clampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
