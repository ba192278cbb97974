package mongoadapter

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"dd-backend/internal/core/port"
)

// Pinger is the subset of *mongo.Client used by HealthChecker.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HealthChecker is an outbound adapter implementing port.HealthChecker on
// top of a MongoDB client.
type HealthChecker struct {
	client   Pinger
	database string
	timeout  time.Duration
}

// NewHealthChecker creates a checker pinging client's primary. database is
// only echoed back in the status.
func NewHealthChecker(client Pinger, database string, timeout time.Duration) *HealthChecker {
	return &HealthChecker{client: client, database: database, timeout: timeout}
}

// Check pings the primary within the configured timeout.
func (h *HealthChecker) Check(ctx context.Context) port.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := port.HealthStatus{Status: port.StatusOK, Database: h.database}
	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		status.Status = port.StatusUnavailable
		status.Error = err.Error()
	}
	return status
}
