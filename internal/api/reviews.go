package api

import (
	"net/http"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/chauffeurlux/rental-api/internal/utils"
	"github.com/chauffeurlux/rental-api/internal/validator"
)

func CreateReviewHandler(service ports.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateReviewRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(req); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}

		review, err := service.CreateReview(r.Context(), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusCreated, review)
	}
}

func AllReviewsHandler(service ports.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := service.AllReviews(r.Context())
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, reviews)
	}
}

func ReviewsByCarHandler(service ports.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		carID, err := pathUUID(r, "car_id")
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		reviews, err := service.ReviewsByCar(r.Context(), carID)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(r, w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(r, w, http.StatusOK, reviews)
	}
}
