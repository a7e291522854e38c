package handlers

import (
	"net/http"

	"github.com/camden-git/filmcatalogbackend/services"
)

type AwardHandler struct {
	Service *services.AwardService
}

func (awh *AwardHandler) GetByActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := parseUintParam(r, "actor_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid actor ID format")
		return
	}

	awards, err := awh.Service.GetByActor(actorID)
	if err != nil {
		writeServiceError(w, err, "retrieve awards")
		return
	}
	writeJSON(w, http.StatusOK, services.ToAwardViews(awards))
}

func (awh *AwardHandler) GetByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	awards, err := awh.Service.GetByMovie(movieID)
	if err != nil {
		writeServiceError(w, err, "retrieve awards")
		return
	}
	writeJSON(w, http.StatusOK, services.ToAwardViews(awards))
}
