package httpserver

import "time"

// Config holds the server settings read from the environment.
type Config struct {
	Addr            string        `env:"UAPARSE_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"UAPARSE_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"UAPARSE_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"UAPARSE_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"UAPARSE_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
