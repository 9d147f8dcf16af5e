package configs

import "time"

// HTTP defines configuration for the ops HTTP server started by `serve`.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// InternalAPIKey, when set, must be sent in the X-Internal-API-Key
	// header of every /api/v1 request.
	InternalAPIKey  string        `env:"INTERNAL_API_KEY"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
