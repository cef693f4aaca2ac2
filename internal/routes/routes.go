package routes

import (
	"fmt"
	"net/http"

	"combatsim/pkg/logger"
)

// routes :
// Registers the two endpoints of the combat surface on the server's
// mux: simulation of a fight, and lookup of archived outcomes by seed.
func (s *Server) routes() {
	s.mux.HandleFunc("/simulate", s.guard(http.MethodPost, s.simulate()))
	s.mux.HandleFunc("/outcomes", s.guard(http.MethodGet, s.listOutcomes()))
}

// guard :
// Wraps a handler with the protections every route shares: requests
// carrying the wrong method are rejected with a 405, and a panic
// escaping the handler is logged and converted into a 500 instead of
// taking the server down with a single bad fight.
func (s *Server) guard(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Trace(logger.Error, "routes", fmt.Sprintf("recovered from panic while serving %s (err: %v)", r.URL.Path, err))
				http.Error(w, "unexpected server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != method {
			http.Error(w, fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path), http.StatusMethodNotAllowed)
			return
		}

		next(w, r)
	}
}
