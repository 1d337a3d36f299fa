package entities

import "time"

// JobStatus is the overall outcome of a reconciliation run
type JobStatus string

const (
	JobSuccess        JobStatus = "success"
	JobPartialSuccess JobStatus = "partial_success"
	JobFailed         JobStatus = "failed"
)

// LogLevel is the severity of a job log entry
type LogLevel string

const (
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// JobLogEntry is one entry in a reconciliation run's ordered log trail
type JobLogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
	BundleID  string
}

// AdjustmentError records a per-item commerce-platform adjustment failure
type AdjustmentError struct {
	BundleID string
	Error    string
}

// ReconciliationJobResult is the structured record of one nightly
// reconciliation run. Created at job start, mutated additively through
// the run, frozen at job end.
type ReconciliationJobResult struct {
	JobID     string
	Status    JobStatus
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	ConstrainedLocationZeroed bool
	VariantsZeroed            int

	BundlesProcessed  int
	BundlesUpdated    int
	BundlesWithErrors int

	VirtualStockRecalculated int
	StockDiscrepancies       []StockDiscrepancy

	AdjustmentsApplied int
	AdjustmentErrors   []AdjustmentError

	CriticalAlerts []StockAlert
	Logs           []JobLogEntry
}

// AddLog appends an entry to the job's ordered log trail
func (r *ReconciliationJobResult) AddLog(level LogLevel, message, bundleID string) {
	r.Logs = append(r.Logs, JobLogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		BundleID:  bundleID,
	})
}

// DeriveJobStatus derives the run outcome from accumulated counters:
// failed when errors occurred and nothing succeeded, partial_success
// when errors occurred alongside at least one update or adjustment,
// success otherwise.
func DeriveJobStatus(errorCount, bundlesUpdated, adjustmentsApplied int) JobStatus {
	hasErrors := errorCount > 0
	hasProgress := bundlesUpdated > 0 || adjustmentsApplied > 0

	switch {
	case hasErrors && !hasProgress:
		return JobFailed
	case hasErrors && hasProgress:
		return JobPartialSuccess
	default:
		return JobSuccess
	}
}
