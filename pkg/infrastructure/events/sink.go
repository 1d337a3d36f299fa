package events

import (
	"context"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// EventSink records reconciliation results as events: one completion
// event on the job's stream, plus one alert event per critical alert on
// the affected bundle's stream.
type EventSink struct {
	store EventStore
}

// NewEventSink creates an observability sink backed by an event store
func NewEventSink(store EventStore) *EventSink {
	return &EventSink{store: store}
}

// Verify interface compliance
var _ repositories.ObservabilitySink = (*EventSink)(nil)

// RecordJobResult appends the job's events to the store
func (s *EventSink) RecordJobResult(ctx context.Context, result *entities.ReconciliationJobResult) error {
	if err := s.store.AppendEvent(result.JobID, NewReconciliationCompletedEvent(result)); err != nil {
		return err
	}

	for _, alert := range result.CriticalAlerts {
		if err := s.store.AppendEvent(alert.BundleID, NewStockAlertRaisedEvent(alert, result.JobID)); err != nil {
			return err
		}
	}

	return nil
}
