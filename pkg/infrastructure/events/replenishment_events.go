package events

import (
	"github.com/vsinha/replenish/pkg/domain/entities"
)

const (
	ReconciliationCompletedEvent = "reconciliation.completed"
	StockAlertRaisedEvent        = "stock.alert.raised"
	SourcingRecommendedEvent     = "sourcing.recommended"
)

type ReconciliationCompleted struct {
	Result *entities.ReconciliationJobResult `json:"result"`
}

type StockAlertRaised struct {
	Alert entities.StockAlert `json:"alert"`
	JobID string              `json:"job_id"`
}

type SourcingRecommended struct {
	BundleID       string                          `json:"bundle_id"`
	Recommendation entities.SourcingRecommendation `json:"recommendation"`
}

func NewReconciliationCompletedEvent(result *entities.ReconciliationJobResult) Event {
	return NewEvent(ReconciliationCompletedEvent, result.JobID, ReconciliationCompleted{Result: result})
}

func NewStockAlertRaisedEvent(alert entities.StockAlert, jobID string) Event {
	return NewEvent(StockAlertRaisedEvent, alert.BundleID, StockAlertRaised{Alert: alert, JobID: jobID})
}

func NewSourcingRecommendedEvent(bundleID string, recommendation entities.SourcingRecommendation) Event {
	return NewEvent(SourcingRecommendedEvent, bundleID, SourcingRecommended{
		BundleID:       bundleID,
		Recommendation: recommendation,
	})
}
