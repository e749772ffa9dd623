package client

import (
	"context"
	"errors"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/service"
	"github.com/evolt-dev/evolt/internal/tui"
	"github.com/evolt-dev/evolt/models"
)

// App ties the session service, the session watcher and the terminal UI into
// one runnable client.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workersCfg,
		logger:   log.GetChildLogger(),
	}, nil
}

// Run drives the session loop until the user quits. A sign-out returns to
// the auth flow rather than exiting.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		profile, err := a.services.SessionService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNotAuthenticated) {
				return err
			}
			a.logger.Debug().Msg("no usable cached session, starting auth flow")
			profile, err = a.ui.AuthFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		signedOut, err := a.runAccount(ctx, profile)
		if err != nil {
			return err
		}
		if !signedOut {
			return nil
		}
	}
}

func (a *App) runAccount(ctx context.Context, profile models.Profile) (signedOut bool, err error) {
	// The watcher wipes expired sessions in the background and kicks the
	// UI back to the auth flow.
	a.services.SessionWatcher.Start(ctx, a.workers.SessionCheckInterval, a.ui.NotifySessionExpired)
	defer a.services.SessionWatcher.Stop()

	return a.ui.AccountLoop(ctx, profile)
}
