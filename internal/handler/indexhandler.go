package handler

import (
	"net/http"

	"github.com/droverlabs/drover/internal/httputil"
	"github.com/droverlabs/drover/internal/logic"
	"github.com/droverlabs/drover/internal/svc"
)

// Service identification, no auth required
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewIndexLogic(r.Context(), svcCtx)
		resp, err := l.Index()
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
