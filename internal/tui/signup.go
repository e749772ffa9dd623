package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/evolt-dev/evolt/models"
)

// Input order mirrors the registration form of the mobile client.
const (
	signupEmail = iota
	signupPassword
	signupFirstName
	signupLastName
	signupPhone
	signupAddress
	signupCity
	signupState
	signupZipCode
	signupFieldCount
)

type signupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	// done holds the verification prompt shown after a successful signup.
	done string
}

func newSignupModel() signupModel {
	inputs := make([]textinput.Model, signupFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[signupPassword].EchoMode = textinput.EchoPassword
	inputs[signupPassword].EchoCharacter = '*'
	inputs[signupEmail].Focus()

	return signupModel{inputs: inputs}
}

func (m signupModel) profileFields() models.ProfileFields {
	return models.ProfileFields{
		FirstName: m.inputs[signupFirstName].Value(),
		LastName:  m.inputs[signupLastName].Value(),
		Phone:     m.inputs[signupPhone].Value(),
		Address:   m.inputs[signupAddress].Value(),
		City:      m.inputs[signupCity].Value(),
		State:     m.inputs[signupState].Value(),
		ZipCode:   m.inputs[signupZipCode].Value(),
	}
}

func (m signupModel) View(st styles) string {
	if m.done != "" {
		out := st.title.Render("Account created") + "\n\n" + m.done + "\n\n"
		out += st.help.Render("enter / esc back to start")
		return out
	}

	out := st.title.Render("Create account") + "\n\n"
	out += "Email:      [" + m.inputs[signupEmail].View() + "]\n"
	out += "Password:   [" + m.inputs[signupPassword].View() + "]\n"
	out += "First name: [" + m.inputs[signupFirstName].View() + "]\n"
	out += "Last name:  [" + m.inputs[signupLastName].View() + "]\n"
	out += "Phone:      [" + m.inputs[signupPhone].View() + "]\n"
	out += "Address:    [" + m.inputs[signupAddress].View() + "]\n"
	out += "City:       [" + m.inputs[signupCity].View() + "]\n"
	out += "State:      [" + m.inputs[signupState].View() + "]\n"
	out += "ZIP code:   [" + m.inputs[signupZipCode].View() + "]\n\n"
	if m.submitting {
		out += "Creating account...\n\n"
	}
	out += st.help.Render("esc back  tab next field  enter submit")
	return out
}
