package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/service"
	"github.com/evolt-dev/evolt/models"
)

// TUI runs the terminal front end. AuthFlow and AccountLoop each own a
// bubbletea program; NotifySessionExpired may be called from another
// goroutine while AccountLoop is running.
type TUI struct {
	sessions service.ClientSessionService
	logger   *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	return &TUI{
		sessions: services.SessionService,
		logger:   log.GetChildLogger(),
	}, nil
}

// AuthFlow shows the welcome/login/signup screens and blocks until the user
// signs in. Returns ErrUserQuit when the user closes the program instead.
func (t *TUI) AuthFlow(ctx context.Context) (models.Profile, error) {
	model := newAuthAppModel(ctx, t.sessions)
	final, err := t.run(model)
	if err != nil {
		return models.Profile{}, err
	}

	result, ok := final.(appModel)
	if !ok {
		return models.Profile{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Profile{}, result.err
	}
	return result.resultProfile, nil
}

// AccountLoop shows the signed-in account screen and blocks until the user
// signs out, quits, or the session expires. signedOut reports whether the
// caller should return to the auth flow.
func (t *TUI) AccountLoop(ctx context.Context, profile models.Profile) (signedOut bool, err error) {
	model := newAccountAppModel(ctx, t.sessions, profile)
	final, runErr := t.run(model)
	if runErr != nil {
		return false, runErr
	}

	result, ok := final.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.signedOut, nil
}

// NotifySessionExpired kicks the running account screen back to the auth
// flow. No-op when no program is active.
func (t *TUI) NotifySessionExpired() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}
	t.logger.Debug().Msg("session expired, leaving account screen")
	program.Send(sessionExpiredMsg{})
}

func (t *TUI) run(model appModel) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	final, err := program.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	return final, err
}
