package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/camden-git/filmcatalogbackend/models"
	"github.com/camden-git/filmcatalogbackend/repository"
	"gorm.io/gorm"
)

// LookupHandler serves list/create/delete for the five shared lookup
// tables. A lookup row referenced by movies can still be deleted; the join
// rows are cleared with it so no dangling membership survives.
type LookupHandler struct {
	Repo repository.LookupRepositoryInterface
}

type lookupRequest struct {
	Name string `json:"name"`
}

func (lh *LookupHandler) decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return "", false
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteAPIError(w, http.StatusBadRequest, "MISSING_FIELD", "Missing required field: name")
		return "", false
	}
	return req.Name, true
}

func (lh *LookupHandler) writeCreateResult(w http.ResponseWriter, kind string, created interface{}, err error) {
	if err != nil {
		log.Printf("Error creating %s: %v", kind, err)
		WriteAPIError(w, http.StatusConflict, "CONFLICT", "Failed to create "+kind+"; the name may already exist")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (lh *LookupHandler) writeDeleteResult(w http.ResponseWriter, kind string, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, "NOT_FOUND", "No "+kind+" with that ID")
		} else {
			log.Printf("Error deleting %s: %v", kind, err)
			WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete "+kind)
		}
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (lh *LookupHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := lh.Repo.ListGenres()
	if err != nil {
		log.Printf("Error listing genres: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list genres")
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

func (lh *LookupHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	name, ok := lh.decodeName(w, r)
	if !ok {
		return
	}
	genre := models.Genre{Name: name}
	lh.writeCreateResult(w, "genre", &genre, lh.Repo.CreateGenre(&genre))
}

func (lh *LookupHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid genre ID format")
		return
	}
	lh.writeDeleteResult(w, "genre", lh.Repo.DeleteGenre(id))
}

func (lh *LookupHandler) ListStudios(w http.ResponseWriter, r *http.Request) {
	studios, err := lh.Repo.ListStudios()
	if err != nil {
		log.Printf("Error listing studios: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list studios")
		return
	}
	writeJSON(w, http.StatusOK, studios)
}

func (lh *LookupHandler) CreateStudio(w http.ResponseWriter, r *http.Request) {
	name, ok := lh.decodeName(w, r)
	if !ok {
		return
	}
	studio := models.Studio{Name: name}
	lh.writeCreateResult(w, "studio", &studio, lh.Repo.CreateStudio(&studio))
}

func (lh *LookupHandler) DeleteStudio(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid studio ID format")
		return
	}
	lh.writeDeleteResult(w, "studio", lh.Repo.DeleteStudio(id))
}

func (lh *LookupHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := lh.Repo.ListCountries()
	if err != nil {
		log.Printf("Error listing countries: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list countries")
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

func (lh *LookupHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	name, ok := lh.decodeName(w, r)
	if !ok {
		return
	}
	country := models.Country{Name: name}
	lh.writeCreateResult(w, "country", &country, lh.Repo.CreateCountry(&country))
}

func (lh *LookupHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid country ID format")
		return
	}
	lh.writeDeleteResult(w, "country", lh.Repo.DeleteCountry(id))
}

func (lh *LookupHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := lh.Repo.ListLanguages()
	if err != nil {
		log.Printf("Error listing languages: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list languages")
		return
	}
	writeJSON(w, http.StatusOK, languages)
}

func (lh *LookupHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	name, ok := lh.decodeName(w, r)
	if !ok {
		return
	}
	language := models.Language{Name: name}
	lh.writeCreateResult(w, "language", &language, lh.Repo.CreateLanguage(&language))
}

func (lh *LookupHandler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid language ID format")
		return
	}
	lh.writeDeleteResult(w, "language", lh.Repo.DeleteLanguage(id))
}

func (lh *LookupHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := lh.Repo.ListRoles()
	if err != nil {
		log.Printf("Error listing roles: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list roles")
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (lh *LookupHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	name, ok := lh.decodeName(w, r)
	if !ok {
		return
	}
	role := models.Role{Name: name}
	lh.writeCreateResult(w, "role", &role, lh.Repo.CreateRole(&role))
}

func (lh *LookupHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "INVALID_ID", "Invalid role ID format")
		return
	}
	lh.writeDeleteResult(w, "role", lh.Repo.DeleteRole(id))
}
