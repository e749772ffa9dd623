package tui

import "github.com/charmbracelet/bubbles/textinput"

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return loginModel{inputs: inputs}
}

func (m loginModel) View(st styles) string {
	out := st.title.Render("Log in") + "\n\n"
	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n\n"
	if m.submitting {
		out += "Signing in...\n\n"
	}
	out += st.help.Render("esc back  tab next field  enter submit")
	return out
}
