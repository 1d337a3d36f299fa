package entities

import "testing"

func TestDeriveJobStatus(t *testing.T) {
	testCases := []struct {
		name               string
		errorCount         int
		bundlesUpdated     int
		adjustmentsApplied int
		expected           JobStatus
	}{
		{"clean run", 0, 3, 3, JobSuccess},
		{"nothing to do", 0, 0, 0, JobSuccess},
		{"errors with no progress", 2, 0, 0, JobFailed},
		{"errors with updates", 1, 2, 0, JobPartialSuccess},
		{"errors with adjustments only", 1, 0, 1, JobPartialSuccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveJobStatus(tc.errorCount, tc.bundlesUpdated, tc.adjustmentsApplied)
			if got != tc.expected {
				t.Errorf("Expected status %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestReconciliationJobResult_AddLog(t *testing.T) {
	result := &ReconciliationJobResult{JobID: "job-1"}

	result.AddLog(LogInfo, "starting run", "")
	result.AddLog(LogError, "recompute failed", "bundle_002")
	result.AddLog(LogWarn, "low stock", "bundle_003")

	if len(result.Logs) != 3 {
		t.Fatalf("Expected 3 log entries, got %d", len(result.Logs))
	}
	if result.Logs[0].Message != "starting run" {
		t.Errorf("Expected log order to be preserved, got first entry '%s'", result.Logs[0].Message)
	}
	if result.Logs[1].Level != LogError || result.Logs[1].BundleID != "bundle_002" {
		t.Errorf("Expected error entry for bundle_002, got %+v", result.Logs[1])
	}
}
