package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/camden-git/filmcatalogbackend/config"
	"github.com/camden-git/filmcatalogbackend/database"
	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/services"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type MovieHandler struct {
	Service   *services.MovieService
	Assembler *services.Assembler
	Picker    *services.RandomPicker
	SQLDB     *sql.DB
	Cfg       config.Config
}

// movieRequest is the write payload for create and update. The association
// id sets are optional: a nil set leaves that relation untouched, a present
// set is applied as a full replacement after the scalar write.
type movieRequest struct {
	Name        *string  `json:"name"`
	ReleaseYear *int     `json:"releaseYear"`
	Tagline     *string  `json:"tagline"`
	Description *string  `json:"description"`
	Minutes     *int     `json:"minutes"`
	Rating      *float64 `json:"rating"`
	GenreIDs    []uint   `json:"genreIds"`
	StudioIDs   []uint   `json:"studioIds"`
	CountryIDs  []uint   `json:"countryIds"`
	LanguageIDs []uint   `json:"languageIds"`
}

func (mh *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	movie, err := mh.Assembler.Assemble(movieID)
	if err != nil {
		writeServiceError(w, err, "retrieve movie")
		return
	}
	writeJSON(w, http.StatusOK, services.ToMovieView(movie))
}

func (mh *MovieHandler) GetMoviePreview(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	preview, err := database.GetMoviePreviewByID(mh.SQLDB, movieID)
	if err != nil {
		if err == sql.ErrNoRows {
			WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		log.Printf("Error getting movie preview %d: %v", movieID, err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve movie preview")
		return
	}
	writeJSON(w, http.StatusOK, services.ToPreviewView(preview))
}

func (mh *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		WriteAPIError(w, http.StatusBadRequest, "MISSING_FIELD", "Missing required field: name")
		return
	}

	movie := models.Movie{
		Name:        *req.Name,
		ReleaseYear: req.ReleaseYear,
		Tagline:     req.Tagline,
		Description: req.Description,
		Minutes:     req.Minutes,
		Rating:      req.Rating,
	}
	if err := mh.Service.Create(&movie); err != nil {
		writeServiceError(w, err, "create movie")
		return
	}

	if err := mh.applyAssociations(movie.ID, req); err != nil {
		writeServiceError(w, err, "attach movie associations")
		return
	}

	assembled, err := mh.Assembler.Assemble(movie.ID)
	if err != nil {
		writeServiceError(w, err, "retrieve created movie")
		return
	}
	writeJSON(w, http.StatusCreated, services.ToMovieView(assembled))
}

func (mh *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	existing, err := mh.Service.Movies.GetByID(movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		} else {
			log.Printf("Error getting movie %d: %v", movieID, err)
			WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve movie")
		}
		return
	}

	// name is kept when omitted; the remaining scalars are overwritten
	// with whatever the payload carries, nulls included
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		existing.Name = *req.Name
	}
	existing.ReleaseYear = req.ReleaseYear
	existing.Tagline = req.Tagline
	existing.Description = req.Description
	existing.Minutes = req.Minutes
	existing.Rating = req.Rating

	if err := mh.Service.UpdateScalars(existing); err != nil {
		writeServiceError(w, err, "update movie")
		return
	}

	if err := mh.applyAssociations(movieID, req); err != nil {
		writeServiceError(w, err, "replace movie associations")
		return
	}

	assembled, err := mh.Assembler.Assemble(movieID)
	if err != nil {
		writeServiceError(w, err, "retrieve updated movie")
		return
	}
	writeJSON(w, http.StatusOK, services.ToMovieView(assembled))
}

func (mh *MovieHandler) applyAssociations(movieID uint, req movieRequest) error {
	sets := []struct {
		kind services.AssociationKind
		ids  []uint
	}{
		{services.AssociationGenres, req.GenreIDs},
		{services.AssociationStudios, req.StudioIDs},
		{services.AssociationCountries, req.CountryIDs},
		{services.AssociationLanguages, req.LanguageIDs},
	}
	for _, set := range sets {
		if set.ids == nil {
			continue
		}
		if _, err := mh.Service.ReplaceAssociation(movieID, set.kind, set.ids); err != nil {
			return err
		}
	}
	return nil
}

func (mh *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	if err := mh.Service.Delete(movieID); err != nil {
		writeServiceError(w, err, "delete movie")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (mh *MovieHandler) ReplaceAssociation(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseUintParam(r, "movie_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid movie ID format")
		return
	}

	kind, ok := services.ParseAssociationKind(chi.URLParam(r, "kind"))
	if !ok {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_KIND", "Association kind must be one of: genres, studios, countries, languages")
		return
	}

	var memberIDs []uint
	if err := json.NewDecoder(r.Body).Decode(&memberIDs); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON array of ids")
		return
	}

	membership, err := mh.Service.ReplaceAssociation(movieID, kind, memberIDs)
	if err != nil {
		writeServiceError(w, err, "replace association")
		return
	}
	writeJSON(w, http.StatusOK, membership)
}

func (mh *MovieHandler) RandomMovie(w http.ResponseWriter, r *http.Request) {
	preview, err := mh.Picker.PickRandomHighRated()
	if err != nil {
		writeServiceError(w, err, "pick random movie")
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, services.ToPreviewView(preview))
}

func (mh *MovieHandler) TopRatedMovies(w http.ResponseWriter, r *http.Request) {
	limit := parseLimitQuery(r, mh.Cfg.DefaultPreviewLimit, mh.Cfg.MaxListLimit)
	previews, err := database.ListTopRatedPreviews(mh.SQLDB, limit)
	if err != nil {
		log.Printf("Error listing top rated movies: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list top rated movies")
		return
	}
	writeJSON(w, http.StatusOK, services.ToPreviewViews(previews))
}

func (mh *MovieHandler) LatestMovies(w http.ResponseWriter, r *http.Request) {
	limit := parseLimitQuery(r, mh.Cfg.DefaultPreviewLimit, mh.Cfg.MaxListLimit)
	previews, err := database.ListLatestPreviews(mh.SQLDB, limit)
	if err != nil {
		log.Printf("Error listing latest movies: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list latest movies")
		return
	}
	writeJSON(w, http.StatusOK, services.ToPreviewViews(previews))
}
