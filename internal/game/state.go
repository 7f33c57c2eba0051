package game

import (
	"time"

	"cetkaik/internal/cetkaik/absolute"
)

// GameState is one stored game. Field is kept in the absolute frame so it
// does not depend on who is looking.
type GameState struct {
	ID        string
	Field     absolute.Field
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) clone() *GameState {
	cp := *g
	cp.Field = g.Field.Clone()
	return &cp
}
