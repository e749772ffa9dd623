package tui

import (
	"github.com/evolt-dev/evolt/models"
)

type accountModel struct {
	profile    models.Profile
	theme      models.Theme
	refreshing bool
	status     string
}

func (m accountModel) View(st styles) string {
	name := m.profile.FirstName
	if m.profile.LastName != "" {
		if name != "" {
			name += " "
		}
		name += m.profile.LastName
	}
	if name == "" {
		name = m.profile.Email
	}

	out := st.title.Render("My account") + "\n\n"
	out += "Hello, " + name + "!\n\n"
	out += "Email:   " + m.profile.Email + "\n"
	out += field("Phone:   ", m.profile.Phone)
	out += field("Address: ", m.profile.Address)
	out += field("City:    ", m.profile.City)
	out += field("State:   ", m.profile.State)
	out += field("ZIP:     ", m.profile.ZipCode)
	out += "\nTheme: " + string(m.theme) + "\n"
	if m.refreshing {
		out += "\nRefreshing profile...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	out += "\n" + st.help.Render("r refresh  t theme  s sign out  ctrl+c quit")
	return out
}

func field(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value + "\n"
}
