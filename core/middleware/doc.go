// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: optional API key validation, disabled when no key is configured.
//   - RayID: assigns a unique Request ID (RayID) to every incoming request,
//     storing it in the context and the X-Ray-ID response header.
//
// Both are registered globally when the content app is built.
package middleware
