package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evolt-dev/evolt/internal/service"
	"github.com/evolt-dev/evolt/models"
)

// ErrUserQuit is returned when the user closes the program instead of
// completing the flow.
var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenAccount
)

type appMode int

const (
	modeAuth appMode = iota
	modeAccount
)

type appModel struct {
	ctx           context.Context
	sessions      service.ClientSessionService
	mode          appMode
	currentScreen screen
	styles        styles

	welcome welcomeModel
	login   loginModel
	signup  signupModel
	account accountModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel

	// resultProfile is the signed-in profile handed back to the caller
	// when the auth flow completes.
	resultProfile models.Profile
	signedOut     bool
}

func newAuthAppModel(ctx context.Context, sessions service.ClientSessionService) appModel {
	theme := sessions.Theme(ctx)
	return appModel{
		ctx:           ctx,
		sessions:      sessions,
		mode:          modeAuth,
		currentScreen: screenWelcome,
		styles:        newStyles(theme),
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		signup:        newSignupModel(),
		account:       accountModel{theme: theme},
	}
}

func newAccountAppModel(ctx context.Context, sessions service.ClientSessionService, profile models.Profile) appModel {
	m := newAuthAppModel(ctx, sessions)
	m.mode = modeAccount
	m.currentScreen = screenAccount
	m.account.profile = profile
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case signupDoneMsg:
		m.signup.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.signup.done = msg.message
		return m, nil
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.resultProfile = msg.profile
		return m, tea.Quit
	case profileRefreshedMsg:
		m.account.refreshing = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.account.profile = msg.profile
		m.account.status = "Profile refreshed"
		return m, cmdClearStatus()
	case themeChangedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.account.theme = msg.theme
		m.styles = newStyles(msg.theme)
		return m, nil
	case signedOutMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.signedOut = true
		return m, tea.Quit
	case sessionExpiredMsg:
		m.signedOut = true
		return m, tea.Quit
	case clearStatusMsg:
		m.account.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenAccount:
		return m.updateAccount(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View(m.styles)
	case screenLogin:
		body = m.login.View(m.styles)
	case screenSignup:
		body = m.signup.View(m.styles)
	case screenAccount:
		body = m.account.View(m.styles)
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.styles)
	}

	return m.styles.app.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenSignup
		}
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.login.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.signup.done != "" {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				m.signup = newSignupModel()
				m.currentScreen = screenWelcome
			}
			return m, nil
		}
		if m.signup.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signup = focusNextSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signup = focusPrevSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email := strings.TrimSpace(m.signup.inputs[signupEmail].Value())
			password := m.signup.inputs[signupPassword].Value()
			if email == "" || password == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.signup.submitting = true
			return m, m.cmdSignup(email, password, m.signup.profileFields())
		}
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.refresh):
		if m.account.refreshing {
			return m, nil
		}
		m.account.refreshing = true
		return m, m.cmdRefreshProfile()
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(keyMsg, keys.signOut):
		return m, m.cmdSignOut()
	}

	return m, nil
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		profile, err := sessions.SubmitLogin(ctx, email, password)
		return loginDoneMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdSignup(email, password string, fields models.ProfileFields) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		message, err := sessions.SubmitSignup(ctx, email, password, fields)
		return signupDoneMsg{message: message, err: err}
	}
}

func (m appModel) cmdRefreshProfile() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		profile, err := sessions.RefreshProfile(ctx)
		return profileRefreshedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		theme, err := sessions.ToggleTheme(ctx)
		return themeChangedMsg{theme: theme, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		return signedOutMsg{err: sessions.SignOut(ctx)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
