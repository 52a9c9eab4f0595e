package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Player displays animated code blocks in the terminal.
type Player struct{}

// NewPlayer creates a new Player.
func NewPlayer() *Player {
	return &Player{}
}

// Play shows the block and blocks until the user exits or ctx is
// cancelled.
func (p *Player) Play(ctx context.Context, block Block) error {
	prog := tea.NewProgram(block,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := prog.Run()
	return err
}
