// Package requestid attaches a correlation ID to every HTTP request served
// by uaparse.
//
// Middleware accepts a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'; anything else is replaced by a
// random UUID. The chosen ID is echoed in the response header, stored in the
// request context and, through LoggerExtractor, added to every log record
// written with that context.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
