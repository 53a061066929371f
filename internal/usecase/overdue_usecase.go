package usecase

import "context"

// Scan detail statuses.
const (
	ScanStatusSuccess = "SUCCESS" // At least one channel delivered.
	ScanStatusFailed  = "FAILED"  // All usable channels failed.
	ScanStatusSkipped = "SKIPPED" // Already notified inside the current day window.
)

// ScanDetail reports the outcome for a single overdue asset.
type ScanDetail struct {
	AssetCode string `json:"asset"`
	UserEmail string `json:"user"`
	Status    string `json:"status"`
}

// ScanResult summarizes one overdue scan run. Processed counts the
// notification attempts recorded this run; dedup-skipped assets appear in
// Details but do not increment Processed.
type ScanResult struct {
	Processed int          `json:"processed"`
	Details   []ScanDetail `json:"details"`
}

// OverdueScanUsecase walks every overdue asset, resolves its holder from the
// ledger and dispatches at most one reminder per holder per calendar day.
type OverdueScanUsecase interface {
	Scan(ctx context.Context) (*ScanResult, error)
}
