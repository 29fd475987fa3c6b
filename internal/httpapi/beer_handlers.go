package httpapi

import (
	"net/http"

	"hoplist.org/internal/catalog"
)

// handleBeers serves the searchable, paginated catalog. The cache cold-start
// happens on the first request; later calls are no-ops.
func (a *API) handleBeers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	if err := a.catalog.EnsureLoaded(r.Context()); err != nil {
		logServerError(r, err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	pageNum, err := parsePage(r.URL.Query().Get("page"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	data := a.catalog.Search(r.URL.Query().Get("search"))
	writeJSON(w, http.StatusOK, catalog.Paginate(data, pageNum, catalog.DefaultPageSize))
}
