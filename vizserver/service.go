package vizserver

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/bytearena/gridarena/common/healthcheck"
	"github.com/bytearena/gridarena/common/utils"
	apphandler "github.com/bytearena/gridarena/vizserver/handler"
	"github.com/bytearena/gridarena/vizserver/types"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const defaultReplayTps = 10

// VizService serves the running games and the recordings of a directory to websocket watchers.
type VizService struct {
	addr      string
	recordDir string
	logger    io.Writer
	games     *types.VizGameMap
	health    *healthcheck.HealthChecker

	lock   sync.Mutex
	server *http.Server
}

func NewVizService(addr string, recordDir string, logger io.Writer) *VizService {
	return &VizService{
		addr:      addr,
		recordDir: recordDir,
		logger:    logger,
		games:     types.NewVizGameMap(),
		health:    healthcheck.NewHealthChecker(),
	}
}

func (viz *VizService) RegisterHealthCheck(name string, handler healthcheck.HealthCheckHandler) {
	viz.health.Register(name, handler)
}

func (viz *VizService) AddGame(game *types.VizGame) {
	viz.games.Set(game.GetId(), game)
}

func (viz *VizService) RemoveGame(id string) {
	viz.games.Remove(id)
}

func (viz *VizService) Router() http.Handler {
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(viz.logger,
		http.HandlerFunc(apphandler.Home(viz.games)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(viz.logger,
		http.HandlerFunc(apphandler.Game(viz.games)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(viz.logger,
		http.HandlerFunc(apphandler.Websocket(viz.games)),
	)).Methods("GET")

	router.Handle("/health", viz.health).Methods("GET")

	if viz.recordDir != "" {
		router.Handle("/replay/{recordId:[a-zA-Z0-9\\-\\._]+}/ws", handlers.CombinedLoggingHandler(viz.logger,
			http.HandlerFunc(apphandler.ReplayWebsocket(viz.recordDir, defaultReplayTps)),
		)).Methods("GET")
	}

	return router
}

// ListenAndServe blocks until Shutdown is called or the listener fails.
func (viz *VizService) ListenAndServe() error {
	viz.lock.Lock()
	viz.server = &http.Server{
		Addr:    viz.addr,
		Handler: viz.Router(),
	}
	server := viz.server
	viz.lock.Unlock()

	utils.Debug("viz-server", "VIZ Listening on "+viz.addr)

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}

	return errors.Wrap(err, "viz server")
}

func (viz *VizService) Shutdown(ctx context.Context) error {
	viz.lock.Lock()
	server := viz.server
	viz.lock.Unlock()

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}
