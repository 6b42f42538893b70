// Package clientip resolves the address of the client behind a request.
//
// Proxy headers are trusted in the order of Headers (Cloudflare, DigitalOcean,
// X-Forwarded-For, X-Real-IP) and the first valid IP wins. IPv4-mapped IPv6
// addresses are unmapped and zones dropped. Only deploy behind a proxy that
// overwrites these headers.
package clientip
