// Package middleware contains HTTP middleware for the gateway.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header does not match the
//     configured key. An empty key disables the check.
//   - rayid: assigns every request a ray id, stored in the context locals and
//     echoed in the X-Ray-ID response header for tracing.
//
// Register rayid first so every log line of a request carries its id.
package middleware
