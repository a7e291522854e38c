package handlers

import (
	"net/http"
	"strings"

	"github.com/camden-git/filmcatalogbackend/config"
	"github.com/camden-git/filmcatalogbackend/services"
)

type SearchHandler struct {
	Service *services.SearchService
	Cfg     config.Config
}

// Search handles GET /api/search?query=...&kinds=movie,actor&limit=N.
// Omitting kinds searches both, movies first.
func (sh *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		WriteAPIError(w, http.StatusBadRequest, "MISSING_QUERY", "Query parameter is required")
		return
	}

	kinds := []services.SearchKind{services.SearchKindMovie, services.SearchKindActor}
	if raw := r.URL.Query().Get("kinds"); raw != "" {
		kinds = kinds[:0]
		for _, part := range strings.Split(raw, ",") {
			kind, ok := services.ParseSearchKind(strings.TrimSpace(part))
			if !ok {
				WriteAPIError(w, http.StatusBadRequest, "INVALID_KIND", "Search kind must be one of: movie, actor")
				return
			}
			kinds = append(kinds, kind)
		}
	}

	limit := parseLimitQuery(r, sh.Cfg.DefaultSearchLimit, sh.Cfg.MaxListLimit)

	results, err := sh.Service.Search(query, kinds, limit)
	if err != nil {
		writeServiceError(w, err, "search")
		return
	}
	writeJSON(w, http.StatusOK, results)
}
