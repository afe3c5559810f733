package handler

import (
	"net/http"

	"github.com/droverlabs/drover/internal/httputil"
	"github.com/droverlabs/drover/internal/logic"
	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

// Capture a page as PNG
func ScreenshotHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScreenshotRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}

		l := logic.NewScreenshotLogic(r.Context(), svcCtx)
		resp, err := l.Screenshot(&req)
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
