package configs

import (
	"fmt"
	"time"
)

// HTTP configures the health endpoint server.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Addr returns the listen address for http.Server.
func (c HTTP) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
