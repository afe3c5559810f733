package handler

import (
	"net/http"

	"github.com/droverlabs/drover/internal/httputil"
	"github.com/droverlabs/drover/internal/logic"
	"github.com/droverlabs/drover/internal/svc"
	"github.com/droverlabs/drover/internal/types"
)

// Run an action sequence against a page
func ActionsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ActionsRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}

		l := logic.NewActionsLogic(r.Context(), svcCtx)
		resp, err := l.Actions(&req)
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
