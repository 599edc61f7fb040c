package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/config"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/sync"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// draftEngine defines the engine surface the CLI commands use.
// The real sync.Engine satisfies it; tests can provide a stub.
type draftEngine interface {
	RecordEdit(ctx context.Context, key models.DraftKey, payload []byte, step, schemaVersion int64)
	Flush(ctx context.Context) error
	Load(ctx context.Context, key models.DraftKey) (*models.RemoteDraft, error)
	Discard(ctx context.Context, key models.DraftKey) error
	Promote(ctx context.Context, key models.DraftKey) (string, []byte, error)
	QueueLen(ctx context.Context) (int, error)
	Stop()
}

type App struct {
	config    *config.Config
	apiClient client.Client
	engine    draftEngine
	repos     *client.Repositories

	// current draft the user is working on
	form          string
	object        string
	schemaVersion int64

	hasToken    bool
	adoptRemote bool
	Mode        Mode
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewDraftKeeperClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	a := &App{config: c, apiClient: apiClient, repos: repos, reader: bufio.NewReader(os.Stdin)}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	a.engine = sync.NewEngine(apiClient, repos.Queue, repos.Metadata, c.DebounceInterval, logger,
		sync.WithConflictFunc(a.resolveConflict),
		sync.WithApplyFunc(a.applyRemote),
	)

	return a, nil
}

func (app *App) setMode(mode Mode) {
	if app.Mode != mode {
		app.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()
	defer a.engine.Stop()
	a.Root(ctx)
}

func (a *App) isAuthenticated() bool {
	return a.hasToken
}

// resolveConflict is handed to the sync engine. The policy is chosen up
// front with the "prefer" command because conflicts surface on background
// flushes, where an interactive prompt is not possible.
func (a *App) resolveConflict(key models.DraftKey, remote *models.RemoteDraft) sync.ConflictResolution {
	log.Printf("draft %s/%s was checkpointed on another device", key.FormSlug, key.ObjectID)
	if a.adoptRemote && remote != nil {
		return sync.UseNewer
	}
	log.Printf("keeping this device's copy")
	return sync.KeepMine
}

func (a *App) applyRemote(key models.DraftKey, remote *models.RemoteDraft) {
	var fields map[string]string
	if err := json.Unmarshal(remote.Payload, &fields); err != nil {
		log.Printf("adopted server copy of %s/%s (version %d)", key.FormSlug, key.ObjectID, remote.Version)
		return
	}
	log.Printf("adopted server copy of %s/%s (version %d, step %d, %d fields)",
		key.FormSlug, key.ObjectID, remote.Version, remote.Step, len(fields))
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
					// replay checkpoints queued while offline
					go func() {
						flushCtx, cancelFlush := context.WithTimeout(context.Background(), 30*time.Second)
						defer cancelFlush()
						if err := a.engine.Flush(flushCtx); err != nil {
							log.Printf("replay after reconnect: %s", err.Error())
						}
					}()
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
