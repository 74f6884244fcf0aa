// Package http provides the HTTP handlers and router exposing the
// grade analysis as a JSON API: /api/report for the full result,
// /api/health and /api/version for liveness, and /metrics for
// Prometheus scraping.
package http
