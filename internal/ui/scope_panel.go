package ui

// RenderScopePanel wraps the rendered trace with a titled border. The trace
// itself is drawn by the scope package to avoid an import cycle.
func RenderScopePanel(width, height int, trace string) string {
	content := StylePanelTitle.Render("SIGNAL") + "\n" + trace
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
