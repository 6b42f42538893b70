// Package logger builds *slog.Logger values for uaparse.
//
// New takes functional options for format (json or text), level, output,
// static attributes and ContextExtractor callbacks. Extractors run for every
// handled record, so request scoped values such as the request ID or the
// classified client are attached without passing them around:
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	log := logger.New(
//		logger.WithLevel(level),
//		logger.WithService("uaparse"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), useragent.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "request", logger.Duration(time.Since(start)))
//
// The helpers in attr.go (Error, Bundles, RuleFile, Rules, Component, …) keep
// attribute keys consistent. Error and Errors return an empty attribute for
// nil errors, which slog drops.
package logger
