package deposit

import (
	"context"
	"errors"
	"strings"

	"github.com/m3rciful/topupbot/core/logger"
	"github.com/m3rciful/topupbot/internal/metrics"
	"log/slog"

	"github.com/shopspring/decimal"
)

// Service implements the deposit workflow on top of the in-memory store.
type Service struct {
	store *Store
	min   decimal.Decimal
}

// NewService wires a service with the minimum accepted amount.
func NewService(store *Store, minAmount decimal.Decimal) *Service {
	if store == nil {
		store = NewStore()
	}
	return &Service{store: store, min: minAmount}
}

// MinAmount returns the configured minimum deposit amount.
func (s *Service) MinAmount() decimal.Decimal {
	return s.min
}

// CreateRequest validates intake input and registers a new request.
func (s *Service) CreateRequest(ctx context.Context, requesterID int64, requesterName, accountID, rawAmount string) (Request, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		metrics.ValidationRejects.WithLabelValues("account_id").Inc()
		return Request{}, &ValidationError{Field: "account_id", Reason: "empty"}
	}

	amount, err := ParseAmount(rawAmount, s.min)
	if err != nil {
		metrics.ValidationRejects.WithLabelValues("amount").Inc()
		logger.Debug(ctx, "service.deposits", "request.reject",
			slog.Int64("requester_id", requesterID),
			slog.String("err", err.Error()),
		)
		return Request{}, err
	}

	req := s.store.Create(requesterID, requesterName, accountID, amount)
	metrics.RequestsCreated.Inc()
	logger.Info(ctx, "service.deposits", "request.created",
		slog.Int64("request_id", req.ID),
		slog.Int64("requester_id", requesterID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", req.Amount.String()),
	)
	return req, nil
}

// AssignPhoneToOldest matches an operator-provided phone to the oldest
// waiting request and returns the updated record with the formatted number.
func (s *Service) AssignPhoneToOldest(ctx context.Context, rawPhone string) (Request, error) {
	digits := strings.TrimSpace(rawPhone)
	if !IsPhoneCandidate(digits) {
		return Request{}, &ValidationError{Field: "phone", Reason: "expected eight digits"}
	}

	req, err := s.store.AssignOldest(FormatPhone(digits))
	if err != nil {
		logger.Warn(ctx, "service.deposits", "phone.unmatched",
			slog.String("err", err.Error()),
		)
		return Request{}, err
	}

	metrics.PhonesAssigned.Inc()
	logger.Info(ctx, "service.deposits", "phone.assigned",
		slog.Int64("request_id", req.ID),
		slog.Int64("requester_id", req.RequesterID),
		slog.String("phone", req.Phone),
	)
	return req, nil
}

// AttachProof records that the client submitted a payment screenshot.
func (s *Service) AttachProof(ctx context.Context, requesterID int64) (Request, error) {
	req, err := s.store.AttachProof(requesterID)
	if err != nil {
		logger.Debug(ctx, "service.deposits", "proof.orphan",
			slog.Int64("requester_id", requesterID),
			slog.String("err", err.Error()),
		)
		return Request{}, err
	}

	metrics.ProofsSubmitted.Inc()
	logger.Info(ctx, "service.deposits", "proof.submitted",
		slog.Int64("request_id", req.ID),
		slog.Int64("requester_id", requesterID),
	)
	return req, nil
}

// Confirm settles a request on behalf of an operator.
func (s *Service) Confirm(ctx context.Context, id int64, confirmedBy string) (Request, error) {
	req, err := s.store.Confirm(id, confirmedBy)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ErrAlreadyConfirmed) {
			level = slog.LevelInfo
		}
		logger.Event(ctx, "service.deposits", level, "confirm.reject",
			slog.Int64("request_id", id),
			slog.String("operator_id", confirmedBy),
			slog.String("err", err.Error()),
		)
		return req, err
	}

	metrics.RequestsConfirmed.Inc()
	logger.Info(ctx, "service.deposits", "request.confirmed",
		slog.Int64("request_id", req.ID),
		slog.Int64("requester_id", req.RequesterID),
		slog.String("operator_id", confirmedBy),
	)
	return req, nil
}

// ByID fetches a request copy.
func (s *Service) ByID(ctx context.Context, id int64) (Request, error) {
	return s.store.ByID(id)
}

// ListUnassigned returns requests still waiting for a payment phone.
func (s *Service) ListUnassigned(ctx context.Context) []Request {
	pending := s.store.Unassigned()
	logger.Debug(ctx, "service.deposits", "pending.list",
		slog.Int("pending_count", len(pending)),
	)
	return pending
}
