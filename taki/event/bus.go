// Package event carries match notifications from the rules engine to its
// observers (room broadcast writers, the computer driver). Emitters are
// instance scoped: every match owns a Bus, so listeners of one room never
// hear another room's game.
//
// Ordering guarantee: the engine emits only after the mutation behind an
// event is fully applied. Listeners must not call back into the engine
// synchronously.
package event

type Bus struct {
	StateChanged   *StateChangedEmitter
	TurnStarted    *TurnStartedEmitter
	CardPlayed     *CardPlayedEmitter
	CardsDrawn     *CardsDrawnEmitter
	ColorPicked    *ColorPickedEmitter
	SequenceClosed *SequenceClosedEmitter
	ChainBroken    *ChainBrokenEmitter
	PlayerWon      *PlayerWonEmitter
	ActionRequired *ActionRequiredEmitter
}

func NewBus() *Bus {
	return &Bus{
		StateChanged:   &StateChangedEmitter{},
		TurnStarted:    &TurnStartedEmitter{},
		CardPlayed:     &CardPlayedEmitter{},
		CardsDrawn:     &CardsDrawnEmitter{},
		ColorPicked:    &ColorPickedEmitter{},
		SequenceClosed: &SequenceClosedEmitter{},
		ChainBroken:    &ChainBrokenEmitter{},
		PlayerWon:      &PlayerWonEmitter{},
		ActionRequired: &ActionRequiredEmitter{},
	}
}
