package server

import (
	"context"
	"log"

	"github.com/quickbank/quickbank/internal/events"
	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/service"
)

// TransferServer wraps a TransferService and emits a transfer.created event
// for each accepted transfer. Publish failures are logged, not returned; the
// transfer already succeeded.
type TransferServer struct {
	inner     service.TransferService
	publisher *events.Publisher // optional
}

func NewTransferServer(inner service.TransferService, publisher *events.Publisher) *TransferServer {
	return &TransferServer{inner: inner, publisher: publisher}
}

func (s *TransferServer) SendMoney(ctx context.Context, req models.SendMoneyRequest) (*models.SendMoneyResult, error) {
	result, err := s.inner.SendMoney(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.publisher != nil {
		err := s.publisher.Publish(ctx, events.TransferEventsStream, events.TransferCreated, events.TransferCreatedEvent{
			TransactionID: result.TransactionID,
			RecipientID:   req.RecipientID,
			Amount:        req.Amount,
			Currency:      req.Currency,
			Purpose:       req.Purpose,
		})
		if err != nil {
			log.Printf("Failed to publish transfer.created event: %v", err)
		}
	}
	return result, nil
}
