package handler

import (
	"net/http"

	"github.com/droverlabs/drover/internal/httputil"
	"github.com/droverlabs/drover/internal/logic"
	"github.com/droverlabs/drover/internal/svc"
)

// Health check with live browser engine state
func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewHealthLogic(r.Context(), svcCtx)
		resp, err := l.Health()
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
