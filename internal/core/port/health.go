package port

import "context"

// Health statuses reported by HealthChecker.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthChecker reports whether the application's database is reachable.
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is the result of a single check. Error is empty when Status
// is StatusOK.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// OK reports whether the check succeeded.
func (s HealthStatus) OK() bool {
	return s.Status == StatusOK
}
