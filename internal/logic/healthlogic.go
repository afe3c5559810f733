package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

type HealthLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Health check with live browser engine state
func NewHealthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthLogic {
	return &HealthLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HealthLogic) Health() (*types.HealthResponse, error) {
	return &types.HealthResponse{
		Status:                "healthy",
		PlaywrightInitialized: l.svcCtx.Worker.Initialized(),
		Timestamp:             timestamp(),
		Authenticated:         true,
	}, nil
}
