package services

import (
	"context"
	"time"

	"gradepulse/internal/infrastructure"
)

// HealthService reports process health and version information.
type HealthService struct {
	startedAt time.Time
}

// NewHealthService creates a health service.
func NewHealthService() *HealthService {
	return &HealthService{startedAt: time.Now()}
}

// HealthStatus is the /api/health response body.
type HealthStatus struct {
	Status    string `json:"status"`
	UptimeSec int64  `json:"uptime_seconds"`
}

// VersionInfo is the /api/version response body.
type VersionInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// HealthCheck reports the service as healthy; the process has no
// external dependencies to probe.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "healthy",
		UptimeSec: int64(time.Since(s.startedAt).Seconds()),
	}
}

// Version returns the service version.
func (s *HealthService) Version() VersionInfo {
	return VersionInfo{
		Service: infrastructure.ServiceName,
		Version: infrastructure.ServiceVersion,
	}
}
