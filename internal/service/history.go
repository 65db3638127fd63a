package service

import "github.com/quickbank/quickbank/internal/models"

// FilterAll matches every transaction in a history filter.
const FilterAll = "all"

// FilterTransactions returns the transactions matching the given type and
// status. An empty filter or FilterAll matches everything.
func FilterTransactions(list []models.Transaction, txType, status string) []models.Transaction {
	out := make([]models.Transaction, 0, len(list))
	for _, tx := range list {
		if txType != "" && txType != FilterAll && tx.Type != txType {
			continue
		}
		if status != "" && status != FilterAll && tx.Status != status {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Totals sums the sent and received amounts across a history.
func Totals(list []models.Transaction) (sent, received float64) {
	for _, tx := range list {
		switch tx.Type {
		case models.TypeSent:
			sent += tx.Amount
		case models.TypeReceived:
			received += tx.Amount
		}
	}
	return sent, received
}
