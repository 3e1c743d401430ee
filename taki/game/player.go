package game

// Player is a seat occupant. Decision making lives outside the engine: the
// game screen adapter drives human seats and the computer driver drives bot
// seats, both through the same Resolver operations.
type Player interface {
	Name() string
	Bot() bool
}
