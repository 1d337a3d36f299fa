package memory

import (
	"context"
	"sync"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// ObservabilitySink stores reconciliation job results in memory
type ObservabilitySink struct {
	Results []*entities.ReconciliationJobResult

	err   error
	mutex sync.Mutex
}

// NewObservabilitySink creates a new in-memory observability sink
func NewObservabilitySink() *ObservabilitySink {
	return &ObservabilitySink{}
}

// Verify interface compliance
var _ repositories.ObservabilitySink = (*ObservabilitySink)(nil)

// SetError makes RecordJobResult fail
func (s *ObservabilitySink) SetError(err error) {
	s.err = err
}

// RecordJobResult stores a job result
func (s *ObservabilitySink) RecordJobResult(ctx context.Context, result *entities.ReconciliationJobResult) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.err != nil {
		return s.err
	}
	s.Results = append(s.Results, result)
	return nil
}
