package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

const (
	defaultTasksLimit = 20
	maxTasksLimit     = 100
)

type TasksLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// List recent automation task records, newest first
func NewTasksLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TasksLogic {
	return &TasksLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *TasksLogic) Tasks(req *types.TasksRequest) (*types.TasksResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultTasksLimit
	}
	if limit > maxTasksLimit {
		limit = maxTasksLimit
	}

	resp := &types.TasksResponse{Tasks: []types.TaskRecord{}}
	if l.svcCtx.DB == nil {
		return resp, nil
	}

	records, err := l.svcCtx.DB.RecentTasks(l.ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		resp.Tasks = append(resp.Tasks, types.TaskRecord{
			Id:         rec.ID,
			Kind:       rec.Kind,
			Url:        rec.URL,
			Success:    rec.Success,
			Error:      rec.Error,
			DurationMs: rec.Duration.Milliseconds(),
			CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	resp.Count = len(resp.Tasks)
	return resp, nil
}
