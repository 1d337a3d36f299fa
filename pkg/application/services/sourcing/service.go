package sourcing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// Service wires the evaluator to bundle and vendor data sources
type Service struct {
	evaluator *Evaluator
	bundles   repositories.BundleRepository
	vendors   repositories.VendorRepository
}

// NewService creates a sourcing service
func NewService(evaluator *Evaluator, bundles repositories.BundleRepository, vendors repositories.VendorRepository) *Service {
	return &Service{
		evaluator: evaluator,
		bundles:   bundles,
		vendors:   vendors,
	}
}

// BundleRequest identifies one blocked bundle to evaluate along with
// the velocity signal for its blocking component
type BundleRequest struct {
	BundleID               string
	BlockingComponentID    string
	BundleMargin           decimal.Decimal
	DailyVelocity          float64
	VelocityConfidence     float64
	MinimumMarginThreshold decimal.Decimal
}

// EvaluateBundle loads bundle, primary vendor, and emergency vendor
// data for a blocked bundle and runs the evaluation
func (s *Service) EvaluateBundle(ctx context.Context, req BundleRequest) (*entities.EmergencySourcingResult, error) {
	bundle, err := s.bundles.GetBundle(ctx, req.BundleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundle %s: %w", req.BundleID, err)
	}

	primary, err := s.vendors.GetPrimaryVendor(ctx, req.BlockingComponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load primary vendor for %s: %w", req.BlockingComponentID, err)
	}

	candidates, err := s.vendors.GetEmergencyVendors(ctx, req.BlockingComponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load emergency vendors for %s: %w", req.BlockingComponentID, err)
	}

	return s.evaluator.Evaluate(EvaluationParams{
		Bundle:                 *bundle,
		BlockingComponentID:    req.BlockingComponentID,
		PrimaryLeadTimeDays:    primary.LeadTimeDays,
		PrimaryCost:            primary.UnitCost,
		BundleMargin:           req.BundleMargin,
		DailyVelocity:          req.DailyVelocity,
		VelocityConfidence:     req.VelocityConfidence,
		MinimumMarginThreshold: req.MinimumMarginThreshold,
		Vendors:                candidates,
	})
}

// EvaluateBundles evaluates a list of blocked bundles independently
func (s *Service) EvaluateBundles(ctx context.Context, reqs []BundleRequest) ([]*entities.EmergencySourcingResult, error) {
	results := make([]*entities.EmergencySourcingResult, 0, len(reqs))
	for _, req := range reqs {
		result, err := s.EvaluateBundle(ctx, req)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
