package system

import (
	"context"
	"staffportal-service/internal/pkg/dto/responses"
)

type SystemUsecase interface {
	GetSecurityStatus(ctx context.Context, httpsEnabled bool) *responses.SecurityStatus
	GetPerformanceMetrics(ctx context.Context) (*responses.PerformanceMetrics, error)
}
