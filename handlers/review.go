package handlers

import (
	"net/http"

	"github.com/camden-git/filmcatalogbackend/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (rh *ReviewHandler) GetByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	reviews, err := rh.Service.GetByMovie(movieID)
	if err != nil {
		writeServiceError(w, err, "retrieve reviews")
		return
	}
	writeJSON(w, http.StatusOK, services.ToReviewViews(reviews))
}
