package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
	"gorm.io/gorm"
)

type ActorHandler struct {
	Repo repository.ActorRepositoryInterface
}

func (ah *ActorHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := parseUintParam(r, "actor_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid actor ID format")
		return
	}

	actor, err := ah.Repo.GetByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "Actor not found")
		} else {
			log.Printf("Error getting actor %d: %v", actorID, err)
			WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve actor")
		}
		return
	}
	writeJSON(w, http.StatusOK, actor)
}

func (ah *ActorHandler) GetActorInfo(w http.ResponseWriter, r *http.Request) {
	actorID, err := parseUintParam(r, "actor_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid actor ID format")
		return
	}

	info, err := ah.Repo.GetInfo(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "Actor info not found")
		} else {
			log.Printf("Error getting actor info %d: %v", actorID, err)
			WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve actor info")
		}
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (ah *ActorHandler) ListActorInfos(w http.ResponseWriter, r *http.Request) {
	page, size := 0, 20
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			size = v
		}
	}

	infos, err := ah.Repo.ListInfos(page, size)
	if err != nil {
		log.Printf("Error listing actor infos: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list actor infos")
		return
	}
	if infos == nil {
		infos = []models.ActorInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

// actorInfoRequest carries the upsert payload; dates use YYYY-MM-DD
type actorInfoRequest struct {
	Biography    *string  `json:"biography"`
	PlaceOfBirth *string  `json:"placeOfBirth"`
	Birthday     *string  `json:"birthday"`
	Deathday     *string  `json:"deathday"`
	Gender       *int     `json:"gender"`
	Popularity   *float64 `json:"popularity"`
	ImagePath    *string  `json:"imagePath"`
}

func parseDateField(w http.ResponseWriter, field string, raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_FIELD", "Invalid "+field+"; expected YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

func (ah *ActorHandler) UpsertActorInfo(w http.ResponseWriter, r *http.Request) {
	actorID, err := parseUintParam(r, "actor_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid actor ID format")
		return
	}

	var req actorInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	birthday, ok := parseDateField(w, "birthday", req.Birthday)
	if !ok {
		return
	}
	deathday, ok := parseDateField(w, "deathday", req.Deathday)
	if !ok {
		return
	}

	info := models.ActorInfo{
		ActorID:      actorID,
		Biography:    req.Biography,
		PlaceOfBirth: req.PlaceOfBirth,
		Birthday:     birthday,
		Deathday:     deathday,
		Gender:       req.Gender,
		Popularity:   req.Popularity,
		ImagePath:    req.ImagePath,
	}

	if err := ah.Repo.UpsertInfo(&info); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "Actor not found")
		} else {
			log.Printf("Error upserting actor info %d: %v", actorID, err)
			WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save actor info")
		}
		return
	}
	writeJSON(w, http.StatusOK, info)
}
