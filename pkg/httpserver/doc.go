// Package httpserver runs the uaparse HTTP API with graceful shutdown.
//
// Server wraps http.Server. Run listens on the configured address; Serve
// takes an existing listener, which tests use with port 0. Both block until
// the context is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called,
// then drain in-flight requests for at most the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Config is read from UAPARSE_ADDR and the UAPARSE_*_TIMEOUT variables.
// HealthCheckHandler serves liveness (no checks) and readiness probes.
//
// Listen failures wrap ErrStart, a second concurrent Serve also wraps
// ErrAlreadyRunning, and failed drains wrap ErrShutdown.
package httpserver
