package logic

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/droverlabs/drover/internal/browser"
	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

type ScreenshotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Capture a page as PNG
func NewScreenshotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ScreenshotLogic {
	return &ScreenshotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ScreenshotLogic) Screenshot(req *types.ScreenshotRequest) (*types.ScreenshotResponse, error) {
	if req.Url == "" {
		return nil, errors.New("url is required")
	}
	waitFor, err := resolveWaitFor(req.WaitFor)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	shot, err := l.svcCtx.Worker.TakeScreenshot(l.ctx, browser.ScreenshotTask{
		URL:      req.Url,
		FullPage: boolOr(req.FullPage, true),
		Width:    req.Width,
		Height:   req.Height,
		WaitFor:  waitFor,
	})
	recordTask(l.Logger, l.svcCtx, "screenshot", req.Url, err, started)
	if err != nil {
		l.Errorf("Screenshot error: %v", err)
		return &types.ScreenshotResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: timestamp(),
			Url:       req.Url,
		}, nil
	}

	return &types.ScreenshotResponse{
		Success:     true,
		ImageBase64: base64.StdEncoding.EncodeToString(shot),
		Timestamp:   timestamp(),
		Url:         req.Url,
	}, nil
}
