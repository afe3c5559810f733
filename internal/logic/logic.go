// Package logic implements one request-scoped type per endpoint.
// Automation failures are converted into success=false envelopes here;
// only validation problems surface as HTTP-level errors.
package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/droverlabs/drover/internal/db"
	"github.com/droverlabs/drover/internal/svc"
)

// timestamp is the wire format for all response timestamps.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// resolveWaitFor validates the requested readiness state and applies the
// networkidle default.
func resolveWaitFor(v string) (string, error) {
	switch v {
	case "":
		return "networkidle", nil
	case "load", "domcontentloaded", "networkidle":
		return v, nil
	default:
		return "", fmt.Errorf("invalid wait_for %q (expected load, domcontentloaded, or networkidle)", v)
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// recordTask writes one row to the audit trail. Auditing is best-effort;
// a failed write is logged and the task result is returned unchanged.
func recordTask(log logx.Logger, svcCtx *svc.ServiceContext, kind, url string, taskErr error, started time.Time) {
	if svcCtx.DB == nil {
		return
	}
	rec := db.Task{
		Kind:     kind,
		URL:      url,
		Success:  taskErr == nil,
		Duration: time.Since(started),
	}
	if taskErr != nil {
		rec.Error = taskErr.Error()
	}
	if err := svcCtx.DB.RecordTask(context.Background(), rec); err != nil {
		log.Errorf("Failed to record %s task: %v", kind, err)
	}
}
