package orchestration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// Params configure one reconciliation run
type Params struct {
	// ConstrainedLocationID is the fulfillment location that must
	// always report zero available-to-sell
	ConstrainedLocationID string
	// AlertThreshold is the stock level at or below which a warning
	// alert is raised
	AlertThreshold int
	// DryRun skips pushing adjustments to the commerce platform
	DryRun bool
}

// ReconciliationOrchestrator runs the nightly reconciliation pipeline:
// constrained-warehouse zeroing, virtual stock recomputation, commerce
// platform adjustments, stock alerting, and result persistence. It
// depends only on injected collaborators, never on concrete clients.
type ReconciliationOrchestrator struct {
	bundles  repositories.BundleRepository
	adjuster repositories.CommerceAdjuster
	sink     repositories.ObservabilitySink
	logger   *slog.Logger
}

// NewReconciliationOrchestrator creates a reconciliation orchestrator
func NewReconciliationOrchestrator(
	bundles repositories.BundleRepository,
	adjuster repositories.CommerceAdjuster,
	sink repositories.ObservabilitySink,
	logger *slog.Logger,
) *ReconciliationOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconciliationOrchestrator{
		bundles:  bundles,
		adjuster: adjuster,
		sink:     sink,
		logger:   logger,
	}
}

// jobRun threads the accumulating job state through the pipeline so no
// step relies on ambient counters
type jobRun struct {
	result     *entities.ReconciliationJobResult
	logger     *slog.Logger
	errorCount int
}

func (j *jobRun) log(level entities.LogLevel, message, bundleID string) {
	j.result.AddLog(level, message, bundleID)

	attrs := []any{slog.String("job_id", j.result.JobID)}
	if bundleID != "" {
		attrs = append(attrs, slog.String("bundle_id", bundleID))
	}
	switch level {
	case entities.LogError:
		j.logger.Error(message, attrs...)
	case entities.LogWarn:
		j.logger.Warn(message, attrs...)
	default:
		j.logger.Info(message, attrs...)
	}
}

// Run executes the pipeline and always returns a result object: every
// per-step failure is caught, counted, and logged, and anything that
// escapes the steps is recovered at this boundary and converted into a
// failed result carrying whatever partial state was captured.
func (o *ReconciliationOrchestrator) Run(ctx context.Context, params Params) (result *entities.ReconciliationJobResult) {
	job := &jobRun{
		result: &entities.ReconciliationJobResult{
			JobID:     fmt.Sprintf("reconciliation_%s", uuid.NewString()),
			StartTime: time.Now(),
		},
		logger: o.logger,
	}
	result = job.result

	defer func() {
		if r := recover(); r != nil {
			job.log(entities.LogError, fmt.Sprintf("reconciliation aborted: %v", r), "")
			job.result.Status = entities.JobFailed
		}
		job.result.EndTime = time.Now()
		job.result.Duration = job.result.EndTime.Sub(job.result.StartTime)
		o.persistResult(ctx, job)
	}()

	job.log(entities.LogInfo, "starting nightly warehouse reconciliation", "")

	o.enforceConstrainedLocation(ctx, params, job)
	adjustments := o.recomputeVirtualStock(ctx, job)
	o.pushAdjustments(ctx, params, adjustments, job)
	o.raiseStockAlerts(ctx, params, job)

	job.result.Status = entities.DeriveJobStatus(
		job.errorCount,
		job.result.BundlesUpdated,
		job.result.AdjustmentsApplied,
	)
	job.log(entities.LogInfo,
		fmt.Sprintf("reconciliation completed: %s", job.result.Status), "")

	return result
}

// enforceConstrainedLocation zeroes availability at the constrained
// warehouse. Failure is logged and counted but never aborts the job.
func (o *ReconciliationOrchestrator) enforceConstrainedLocation(ctx context.Context, params Params, job *jobRun) {
	job.log(entities.LogInfo,
		fmt.Sprintf("enforcing zero availability at %s", params.ConstrainedLocationID), "")

	variantsZeroed, err := o.adjuster.EnforceZeroAvailability(ctx, params.ConstrainedLocationID)
	if err != nil {
		job.errorCount++
		job.log(entities.LogError,
			fmt.Sprintf("constrained location update failed: %v", err), "")
		return
	}

	job.result.ConstrainedLocationZeroed = true
	job.result.VariantsZeroed = variantsZeroed
	job.log(entities.LogInfo,
		fmt.Sprintf("constrained location updated: %d variants zeroed", variantsZeroed), "")
}

// recomputeVirtualStock recalculates every bundle's virtual stock and
// records a discrepancy plus a pending adjustment on mismatch. A
// failing bundle is counted and logged without blocking the rest.
func (o *ReconciliationOrchestrator) recomputeVirtualStock(ctx context.Context, job *jobRun) []entities.InventoryAdjustment {
	job.log(entities.LogInfo, "recalculating virtual bundle stock", "")

	bundles, err := o.bundles.ListBundles(ctx)
	if err != nil {
		job.errorCount++
		job.log(entities.LogError, fmt.Sprintf("failed to list bundles: %v", err), "")
		return nil
	}

	var adjustments []entities.InventoryAdjustment
	for _, bundle := range bundles {
		job.result.BundlesProcessed++

		virtualStock, err := o.bundles.CalculateVirtualStock(ctx, bundle.BundleID)
		if err != nil {
			job.result.BundlesWithErrors++
			job.errorCount++
			job.log(entities.LogError,
				fmt.Sprintf("virtual stock recompute failed: %v", err), bundle.BundleID)
			continue
		}
		job.result.VirtualStockRecalculated++

		if virtualStock == bundle.CurrentStock {
			continue
		}

		discrepancy := entities.StockDiscrepancy{
			BundleID:      bundle.BundleID,
			BundleName:    bundle.BundleName,
			ExpectedStock: virtualStock,
			ActualStock:   bundle.CurrentStock,
			Discrepancy:   virtualStock - bundle.CurrentStock,
		}
		job.result.StockDiscrepancies = append(job.result.StockDiscrepancies, discrepancy)

		if err := o.bundles.SaveVirtualStock(ctx, bundle.BundleID, virtualStock); err != nil {
			job.result.BundlesWithErrors++
			job.errorCount++
			job.log(entities.LogError,
				fmt.Sprintf("virtual stock save failed: %v", err), bundle.BundleID)
			continue
		}

		job.result.BundlesUpdated++
		adjustments = append(adjustments, entities.InventoryAdjustment{
			BundleID:   bundle.BundleID,
			VariantID:  fmt.Sprintf("%s_variant", bundle.BundleID),
			Adjustment: discrepancy.Discrepancy,
		})
	}

	job.log(entities.LogInfo, fmt.Sprintf(
		"virtual stock recalculation: %d processed, %d updated, %d errors",
		job.result.BundlesProcessed, job.result.BundlesUpdated, job.result.BundlesWithErrors), "")

	return adjustments
}

// pushAdjustments applies the discrepancy-driven adjustments to the
// commerce platform. Per-item failures are collected, not raised.
func (o *ReconciliationOrchestrator) pushAdjustments(ctx context.Context, params Params, adjustments []entities.InventoryAdjustment, job *jobRun) {
	if len(adjustments) == 0 {
		job.log(entities.LogInfo, "no inventory adjustments to push", "")
		return
	}
	if params.DryRun {
		job.log(entities.LogInfo,
			fmt.Sprintf("dry run: skipping %d inventory adjustments", len(adjustments)), "")
		return
	}

	job.log(entities.LogInfo,
		fmt.Sprintf("pushing %d inventory adjustments", len(adjustments)), "")

	results, err := o.adjuster.AdjustInventory(ctx, adjustments)
	if err != nil {
		job.errorCount++
		job.result.AdjustmentErrors = append(job.result.AdjustmentErrors, entities.AdjustmentError{
			BundleID: "unknown",
			Error:    err.Error(),
		})
		job.log(entities.LogError, fmt.Sprintf("adjustment batch failed: %v", err), "")
		return
	}

	for _, r := range results {
		if r.Applied {
			job.result.AdjustmentsApplied++
			continue
		}
		job.errorCount++
		job.result.AdjustmentErrors = append(job.result.AdjustmentErrors, entities.AdjustmentError{
			BundleID: r.BundleID,
			Error:    r.Error,
		})
		job.log(entities.LogError,
			fmt.Sprintf("adjustment failed: %s", r.Error), r.BundleID)
	}

	job.log(entities.LogInfo,
		fmt.Sprintf("commerce sync: %d adjustments applied, %d errors",
			job.result.AdjustmentsApplied, len(job.result.AdjustmentErrors)), "")
}

// raiseStockAlerts classifies every successfully recomputed bundle at
// its resulting stock level
func (o *ReconciliationOrchestrator) raiseStockAlerts(ctx context.Context, params Params, job *jobRun) {
	job.log(entities.LogInfo, "checking for critical stock alerts", "")

	bundles, err := o.bundles.ListBundles(ctx)
	if err != nil {
		job.errorCount++
		job.log(entities.LogError, fmt.Sprintf("failed to list bundles for alerting: %v", err), "")
		return
	}

	for _, bundle := range bundles {
		alert := entities.ClassifyStockAlert(
			bundle.BundleID, bundle.BundleName, bundle.CurrentStock, params.AlertThreshold)
		if alert == nil {
			continue
		}
		job.result.CriticalAlerts = append(job.result.CriticalAlerts, *alert)
		job.log(entities.LogWarn, alert.Message, alert.BundleID)
	}

	if n := len(job.result.CriticalAlerts); n > 0 {
		job.log(entities.LogWarn, fmt.Sprintf("found %d stock alerts", n), "")
	}
}

// persistResult records the frozen job result with the observability
// sink. A sink failure is swallowed and logged locally only: a logging
// failure must never fail the job itself.
func (o *ReconciliationOrchestrator) persistResult(ctx context.Context, job *jobRun) {
	if err := o.sink.RecordJobResult(ctx, job.result); err != nil {
		o.logger.Error("failed to persist reconciliation result",
			slog.String("job_id", job.result.JobID),
			slog.String("error", err.Error()))
	}
}
