package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

type IndexLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Service identification, no auth required
func NewIndexLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IndexLogic {
	return &IndexLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *IndexLogic) Index() (*types.IndexResponse, error) {
	return &types.IndexResponse{
		Message:      "Drover Worker API is running",
		Status:       "healthy",
		Timestamp:    timestamp(),
		AuthRequired: true,
	}, nil
}
