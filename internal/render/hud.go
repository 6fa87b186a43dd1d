package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"starlane/internal/draw"
)

// HUD is the per-frame overlay data the game hands the renderer.
type HUD struct {
	Score  int
	View   string
	Shield bool
	Rapid  bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// DrawHUD writes the in-game overlay: score on the left, active view and
// power-up badges on the right.
func DrawHUD(cw *draw.ChunkWriter, termWidth int, h HUD) {
	cw.WriteAt(2, 1, scoreStyle.Render(fmt.Sprintf("Score: %d", h.Score)))

	right := h.View
	if h.Shield {
		right = badgeStyle.Render("[shield] ") + right
	}
	if h.Rapid {
		right = badgeStyle.Render("[rapid] ") + right
	}
	cw.WriteAt(termWidth-lipgloss.Width(right)-1, 1, right)
}

// DrawTitle writes the start screen.
func DrawTitle(cw *draw.ChunkWriter, termWidth, termHeight int) {
	centerX, centerY := termWidth/2, termHeight/2

	title := titleStyle.Render("S T A R L A N E")
	writeCentered(cw, centerX, centerY-2, title)

	writeCentered(cw, centerX, centerY+1, promptStyle.Render("Press ENTER to launch"))
	writeCentered(cw, centerX, centerY+4, promptStyle.Render(
		"WASD/Arrows to fly, SPACE to fire, 1-6 to switch views, Q to quit"))
}

// DrawGameOver writes the terminal screen with the final score.
func DrawGameOver(cw *draw.ChunkWriter, termWidth, termHeight, score int) {
	centerX, centerY := termWidth/2, termHeight/2

	writeCentered(cw, centerX, centerY-2, overStyle.Render("G A M E   O V E R"))
	writeCentered(cw, centerX, centerY, scoreStyle.Render(fmt.Sprintf("Final score: %d", score)))
	writeCentered(cw, centerX, centerY+2, promptStyle.Render("Press ENTER to fly again"))
}

func writeCentered(cw *draw.ChunkWriter, centerX, row int, s string) {
	cw.WriteAt(centerX-lipgloss.Width(s)/2, row, s)
}
