package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"combatsim/internal/batch"
	"combatsim/internal/data"
	"combatsim/internal/game"
	"combatsim/pkg/logger"
)

// simulationRequest :
// The JSON body accepted by `POST /simulate`: a seed and the starting
// roster of each side.
type simulationRequest struct {
	Seed  int64            `json:"seed"`
	Army1 []rosterSpecJSON `json:"army1"`
	Army2 []rosterSpecJSON `json:"army2"`
}

type rosterSpecJSON struct {
	Base  game.Base `json:"base"`
	Count int       `json:"count"`
}

func toRosterSpecs(specs []rosterSpecJSON) []batch.RosterSpec {
	out := make([]batch.RosterSpec, len(specs))
	for id, s := range specs {
		out[id] = batch.RosterSpec{Base: s.Base, Count: s.Count}
	}
	return out
}

// simulationResponse :
// Returned by `POST /simulate` on success: the seed the fight ran with
// and the resource under which its archived outcome can be fetched.
type simulationResponse struct {
	Seed     int64  `json:"seed"`
	Resource string `json:"resource"`
}

// simulate :
// Serves `POST /simulate`: decodes the requested matchup, runs it
// through the batch runner (which archives the produced outcome), and
// answers with the location of the archived record. Requests sharing a
// seed are serialized through the seed locker so two clients racing to
// (re)simulate the same seed cannot interleave their writes.
func (s *Server) simulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simulationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("could not parse simulation request (err: %v)", err), http.StatusBadRequest)
			return
		}

		if len(req.Army1) == 0 || len(req.Army2) == 0 {
			http.Error(w, "both armies need at least one unit", http.StatusBadRequest)
			return
		}

		job := batch.Job{
			Seed:  req.Seed,
			Army1: toRosterSpecs(req.Army1),
			Army2: toRosterSpecs(req.Army2),
		}

		seedKey := strconv.FormatInt(req.Seed, 10)

		results := s.locks.withLock(seedKey, func() []batch.Result {
			return s.runner.Run([]batch.Job{job})
		})

		if len(results) == 0 || results[0].Err != nil {
			s.log.Trace(logger.Error, "routes", fmt.Sprintf("could not simulate seed %d", req.Seed))
			http.Error(w, "could not simulate the requested fight", http.StatusInternalServerError)
			return
		}

		s.log.Trace(logger.Notice, "routes", fmt.Sprintf("simulated and archived outcome for seed %d", req.Seed))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(
			simulationResponse{
				Seed:     req.Seed,
				Resource: "/outcomes?seed=" + seedKey,
			},
		)
	}
}

// listOutcomes :
// Serves `GET /outcomes?seed=...`: fetches every outcome archived for
// the given seed. A request without a seed answers an empty list rather
// than dumping the archive — this endpoint is for looking up a specific
// fight's history.
func (s *Server) listOutcomes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		raw := r.URL.Query().Get("seed")
		if raw == "" {
			json.NewEncoder(w).Encode([]data.OutcomeRecord{})
			return
		}

		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid seed %q (err: %v)", raw, err), http.StatusBadRequest)
			return
		}

		records, err := s.outcomes.FetchBySeed(seed)
		if err != nil {
			s.log.Trace(logger.Error, "routes", fmt.Sprintf("could not fetch outcomes for seed %d (err: %v)", seed, err))
			http.Error(w, "could not fetch archived outcomes", http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(records)
	}
}
