package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"api_timeshare/internal/economics"
)

// Sale lifecycle statuses. Every new entry starts pending and moves
// exactly once, to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ErrInvalidTransition is returned for status changes other than
// pending -> approved|rejected.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidStatus is returned for status values outside the lifecycle.
var ErrInvalidStatus = errors.New("invalid status value")

// VolumeSource supplies the cumulative sales volume recorded for a rep
// before the current sale.
type VolumeSource interface {
	CurrentVolume(ctx context.Context, repID string) (float64, error)
}

// Service provides high-level sale-entry operations on a Storage
// backend: recording sales with their derived financial figures,
// quoting those figures without persisting, searching, and moving
// sales through the approval lifecycle.
type Service struct {
	storage Storage
	calc    *economics.Calculator
	volumes VolumeSource
	logger  *zap.Logger
}

// SalesMetadata aggregates a search result set.
type SalesMetadata struct {
	Quantity          int     `json:"quantity"`
	Approved          int     `json:"approved"`
	Rejected          int     `json:"rejected"`
	Pending           int     `json:"pending"`
	TotalAmount       float64 `json:"total_amount"`
	TotalCommission   float64 `json:"total_commission"`
	TotalDiscountCost float64 `json:"total_discount_cost"`
}

// NewService creates a new Service. A nil volumes source makes the
// service fall back to the local approved-volume tally.
func NewService(storage Storage, calc *economics.Calculator, volumes VolumeSource, logger *zap.Logger) *Service {
	if calc == nil {
		calc = economics.NewCalculator(economics.DefaultConfig())
	}
	if logger == nil {
		logger, _ = zap.NewProduction()
		defer logger.Sync() // flushes buffer, if any
	}

	return &Service{
		storage: storage,
		calc:    calc,
		volumes: volumes,
		logger:  logger,
	}
}

// priorVolume returns the volume accumulated for a rep before the sale
// being entered. The external tracker wins when configured.
func (s *Service) priorVolume(ctx context.Context, repID string) (float64, error) {
	if s.volumes != nil {
		v, err := s.volumes.CurrentVolume(ctx, repID)
		if err != nil {
			s.logger.Error("error fetching rep volume", zap.String("rep_id", repID), zap.Error(err))
			return 0, fmt.Errorf("error fetching rep volume")
		}
		return v, nil
	}
	return s.storage.ApprovedVolume(repID)
}

// Quote recomputes the derived figures for the current form state
// without persisting anything. The form calls this on every keystroke.
func (s *Service) Quote(ctx context.Context, form FormInput) (economics.Input, economics.Derived, error) {
	prior, err := s.priorVolume(ctx, form.RepID)
	if err != nil {
		return economics.Input{}, economics.Derived{}, err
	}

	in := form.calcFields().Normalize(prior)
	return in, s.calc.Derive(in), nil
}

// CreateSale handles the recording of a new sale: it fetches the rep's
// prior volume, normalizes the raw form fields, derives the financial
// figures and persists the record in pending status.
func (s *Service) CreateSale(ctx context.Context, form FormInput) (*Sale, error) {
	if form.RepID == "" {
		return nil, fmt.Errorf("rep_id is required")
	}
	if economics.ParseAmount(form.Amount) <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	prior, err := s.priorVolume(ctx, form.RepID)
	if err != nil {
		return nil, err
	}

	in := form.calcFields().Normalize(prior)
	derived := s.calc.Derive(in)

	if derived.CostIncurred() {
		// Advisory only: the operator sees a warning, the entry still records.
		s.logger.Warn("fdi redemption exceeds granted points",
			zap.String("rep_id", form.RepID),
			zap.Float64("points_redeemed", in.PointsRedeemed),
			zap.Float64("points_available", derived.PointsAvailable),
			zap.Float64("discount_cost", derived.DiscountCost),
		)
	}

	sale := &Sale{
		ID:        uuid.NewString(),
		RepID:     form.RepID,
		LeadID:    form.LeadID,
		Buyer:     form.Buyer,
		SaleDate:  form.SaleDate,
		Input:     in,
		Derived:   derived,
		Status:    StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Version:   1,
	}

	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("rep_id", sale.RepID),
		zap.Float64("sale_amount", in.SaleAmount),
		zap.Float64("commission_amount", derived.CommissionAmount),
	)
	return sale, nil
}

// SearchSales returns the sales matching the optional rep and status
// filters, plus aggregate metadata over the matches.
func (s *Service) SearchSales(repID, status string) ([]*Sale, SalesMetadata, error) {
	if status != "" {
		switch status {
		case StatusPending, StatusApproved, StatusRejected:
		default:
			s.logger.Warn("invalid status filter provided", zap.String("status_filter", status))
			return nil, SalesMetadata{}, fmt.Errorf("%w: '%s'", ErrInvalidStatus, status)
		}
	}

	allSales, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to get all sales from storage", zap.Error(err))
		return nil, SalesMetadata{}, fmt.Errorf("failed to retrieve sales: %w", err)
	}

	filtered := make([]*Sale, 0)
	metadata := SalesMetadata{}

	for _, sale := range allSales {
		if repID != "" && sale.RepID != repID {
			continue
		}
		if status != "" && sale.Status != status {
			continue
		}

		filtered = append(filtered, sale)

		metadata.Quantity++
		metadata.TotalAmount += sale.Input.SaleAmount
		metadata.TotalCommission += sale.Derived.CommissionAmount
		metadata.TotalDiscountCost += sale.Derived.DiscountCost
		switch sale.Status {
		case StatusApproved:
			metadata.Approved++
		case StatusRejected:
			metadata.Rejected++
		case StatusPending:
			metadata.Pending++
		}
	}

	s.logger.Info("sales search completed",
		zap.String("rep_filter", repID),
		zap.String("status_filter", status),
		zap.Int("results_count", len(filtered)),
	)

	return filtered, metadata, nil
}

// UpdateSaleStatus moves a pending sale to approved or rejected.
func (s *Service) UpdateSaleStatus(saleID, newStatus string) (*Sale, error) {
	sale, err := s.storage.Read(saleID)
	if err != nil {
		return nil, ErrNotFound
	}

	if newStatus != StatusApproved && newStatus != StatusRejected {
		return nil, ErrInvalidStatus
	}

	if sale.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	sale.Status = newStatus
	sale.UpdatedAt = time.Now()
	sale.Version++

	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to update sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, err
	}

	return sale, nil
}
