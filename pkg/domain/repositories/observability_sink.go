package repositories

import (
	"context"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// ObservabilitySink accepts job results for durable logging. Callers
// treat it as fire-and-forget: a sink failure must never fail the job.
type ObservabilitySink interface {
	RecordJobResult(ctx context.Context, result *entities.ReconciliationJobResult) error
}
