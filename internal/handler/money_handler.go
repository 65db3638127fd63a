package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbank/quickbank/internal/middleware"
	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/service"
)

// MoneyHandler serves the wallet, history, recipient and transfer routes.
type MoneyHandler struct {
	transactions service.TransactionService
	recipients   service.RecipientService
	wallet       service.WalletService
	transfers    service.TransferService
}

type SendMoneyRequest struct {
	RecipientID int     `json:"recipientId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required"`
	Purpose     string  `json:"purpose" validate:"required"`
}

func NewMoneyHandler(
	transactions service.TransactionService,
	recipients service.RecipientService,
	wallet service.WalletService,
	transfers service.TransferService,
) *MoneyHandler {
	return &MoneyHandler{
		transactions: transactions,
		recipients:   recipients,
		wallet:       wallet,
		transfers:    transfers,
	}
}

// GetTransactions lists the transfer history. Optional type and status query
// parameters narrow the result; "all" or absent means no filter.
func (h *MoneyHandler) GetTransactions(c *gin.Context) {
	list, err := h.transactions.GetTransactions(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	list = service.FilterTransactions(list, c.Query("type"), c.Query("status"))
	c.JSON(http.StatusOK, list)
}

func (h *MoneyHandler) GetRecipients(c *gin.Context) {
	list, err := h.recipients.GetRecipients(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to load recipients")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MoneyHandler) GetBalance(c *gin.Context) {
	balance, err := h.wallet.GetBalance(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to load balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *MoneyHandler) SendMoney(c *gin.Context) {
	var req SendMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	result, err := h.transfers.SendMoney(c.Request.Context(), models.SendMoneyRequest{
		RecipientID: req.RecipientID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Purpose:     req.Purpose,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to send money")
		return
	}

	c.JSON(http.StatusOK, result)
}
