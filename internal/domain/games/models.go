package games

// Game is the catalog entry exposed by the service.
type Game struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// WithID returns a copy of the game carrying the given identifier.
func (g Game) WithID(id int64) Game {
	g.ID = id
	return g
}
