package routes

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"combatsim/internal/batch"
	"combatsim/internal/data"
	"combatsim/pkg/db"
	"combatsim/pkg/logger"

	"github.com/gorilla/handlers"
)

// Server :
// Defines the HTTP surface of the combat simulator: a single process
// that accepts fight requests, runs them through a batch runner, and
// archives the produced outcomes. The surface is deliberately small —
// two endpoints — so the routing is a plain mux rather than a generic
// framework.
//
// The `port` is the TCP port the server listens on.
//
// The `mux` dispatches clients' requests to the two endpoints.
//
// The `outcomes` is the archive-backed proxy used to look up persisted
// outcomes for the `GET /outcomes` route.
//
// The `runner` performs the simulations requested through `POST
// /simulate`, archiving each one through the same `outcomes` proxy.
//
// The `locks` prevents concurrent requests for the same seed from
// racing each other's persistence.
//
// The `log` notifies errors and information about the server's
// activity.
type Server struct {
	port     int
	mux      *http.ServeMux
	outcomes data.OutcomesProxy
	runner   *batch.Runner
	locks    *seedLocker
	log      logger.Logger
}

// ErrUnexpectedServeError : Indicates that an error occurred
// while serving http requests.
var ErrUnexpectedServeError = fmt.Errorf("unexpected error occurred while serving http requests")

// ErrServerShutdownError : Indicates that an error occurred
// while shutting down the server.
var ErrServerShutdownError = fmt.Errorf("unexpected error occurred while shutting down the server")

// NewServer creates a new combat simulator server listening on the
// given port, archiving outcomes to the given archive, and running
// simulations across the given number of worker goroutines.
func NewServer(port int, dbase *db.DB, workers int, log logger.Logger) Server {
	outcomes := data.NewOutcomesProxy(dbase)
	runner := batch.NewRunner(workers, log).WithPersistence(outcomes)

	return Server{
		port:     port,
		outcomes: outcomes,
		runner:   runner,
		locks:    newSeedLocker(log),
		log:      log,
	}
}

// Serve starts listening on the server's port and handling incoming
// requests until interrupted (SIGINT), at which point it shuts down
// gracefully.
//
// Returns any error occurred during the serve operation.
func (s *Server) Serve() error {
	if s.mux != nil {
		panic(fmt.Errorf("cannot start serving, process already running"))
	}

	s.mux = http.NewServeMux()
	s.routes()

	aMethods := handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})
	aOrigins := handlers.AllowedOrigins([]string{"*"})
	aHeaders := handlers.AllowedHeaders([]string{"Origin", "X-Requested-With", "Content-Type", "Accept"})
	corsMux := handlers.CORS(aHeaders, aOrigins, aMethods)(s.mux)

	server := &http.Server{
		Addr:    ":" + strconv.FormatInt(int64(s.port), 10),
		Handler: corsMux,
	}

	var serveErr error
	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				s.log.Trace(logger.Fatal, "server", fmt.Sprintf("caught unexpected error while serving requests (err: %v)", err))
				serveErr = ErrUnexpectedServeError
			}

			wg.Done()
			s.log.Trace(logger.Notice, "server", "server has stopped")
		}()

		s.log.Trace(logger.Notice, "server", "server has started")

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		s.log.Trace(logger.Error, "server", fmt.Sprintf("caught unexpected error while shutting down server (err: %v)", err))
		return ErrServerShutdownError
	}

	wg.Wait()

	return serveErr
}
