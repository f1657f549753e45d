package api

import (
	"net/http"

	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/chauffeurlux/rental-api/internal/utils"
)

func AllVehiclesHandler(service ports.VehicleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := service.AllVehicles(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, vehicles)
	}
}

func VehicleHandler(service ports.VehicleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		carID, err := pathUUID(r, "car_id")
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		vehicle, err := service.VehicleByID(r.Context(), carID)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, vehicle)
	}
}

func VehicleImagesHandler(service ports.VehicleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		carID, err := pathUUID(r, "car_id")
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		images, err := service.ImagesByCar(r.Context(), carID)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		if images == nil {
			images = []string{}
		}
		utils.RenderResponse(r, w, http.StatusOK, images)
	}
}
