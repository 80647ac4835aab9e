// Package mux wires the HTTP API: table lifecycle endpoints and the
// per-table WebSocket that streams game state and accepts actions.
package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	tables  *registry
	version string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		tables:  newRegistry(),
		version: version,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)
	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}

type ctxKey int

const ctxTableKey ctxKey = iota

// tableMiddleware resolves {uuid} to a live table
func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["uuid"]
		tbl, ok := m.tables.get(id)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(withTable(r.Context(), tbl)))
	})
}
