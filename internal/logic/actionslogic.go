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

type ActionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Run an action sequence against a page
func NewActionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ActionsLogic {
	return &ActionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ActionsLogic) Actions(req *types.ActionsRequest) (*types.ActionsResponse, error) {
	if req.Url == "" {
		return nil, errors.New("url is required")
	}

	actions := make([]browser.Action, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, browser.Action{
			Type:     browser.ActionType(a.Type),
			Selector: a.Selector,
			Text:     a.Text,
			Timeout:  a.Timeout,
		})
	}

	started := time.Now()
	outcome, err := l.svcCtx.Worker.PerformActions(l.ctx, browser.ActionsTask{
		URL:             req.Url,
		Actions:         actions,
		ScreenshotAfter: boolOr(req.ScreenshotAfter, true),
	})
	recordTask(l.Logger, l.svcCtx, "actions", req.Url, err, started)
	if err != nil {
		l.Errorf("Actions error: %v", err)
		return &types.ActionsResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: timestamp(),
			Url:       req.Url,
		}, nil
	}

	resp := &types.ActionsResponse{
		Success:   true,
		Result:    &types.ActionsResult{ActionsPerformed: outcome.Trace},
		Timestamp: timestamp(),
		Url:       req.Url,
	}
	if len(outcome.Screenshot) > 0 {
		resp.ScreenshotBase64 = base64.StdEncoding.EncodeToString(outcome.Screenshot)
	}
	return resp, nil
}
