package sticker

import "github.com/google/uuid"

// Sticker is an emoji pinned to the result card. X and Y are card-local
// cell coordinates, clamped to the card interior at render time.
type Sticker struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

func New(emoji string, x, y int) Sticker {
	return Sticker{
		ID:    uuid.New().String(),
		Emoji: emoji,
		X:     x,
		Y:     y,
	}
}
