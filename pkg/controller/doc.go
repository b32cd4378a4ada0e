// Package controller holds the HTTP plumbing shared by the API server.
//
// Middlewares, outermost first as the server installs them: WithTimeout,
// WithLogger, WithCORS and, inside the router, WithMetrics. PprofMux serves
// the runtime profiles under PprofPrefix.
package controller
