package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Create account"}}
}

func (m welcomeModel) View(st styles) string {
	out := st.title.Render("Evolt") + "\n\nWelcome! What would you like to do?\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + st.help.Render("enter select  ctrl+c quit")
	return out
}
