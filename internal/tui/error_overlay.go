package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(st styles) string {
	content := "Error\n\n" + m.message + "\n\nenter / esc close"
	return st.overlay.Render(content)
}
