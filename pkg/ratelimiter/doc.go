// Package ratelimiter implements a token bucket limiter for the HTTP API.
//
// A Bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. State lives in a Store; MemoryStore keeps it in process
// memory and is enough for a single instance.
//
//	store := ratelimiter.NewMemoryStore(5 * time.Minute)
//	defer store.Close()
//	b, err := ratelimiter.NewBucket(store, cfg)
//	r.Use(ratelimiter.Middleware(b, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}, log))
package ratelimiter
