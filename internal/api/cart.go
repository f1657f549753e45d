package api

import (
	"net/http"

	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/chauffeurlux/rental-api/internal/utils"
)

func CartHandler(service ports.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathUUID(r, "user_id")
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		items, err := service.CartForUser(r.Context(), userID)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, items)
	}
}
