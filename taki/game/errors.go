package game

import "errors"

var (
	ErrDeckExhausted       = errors.New("both piles are out of cards")
	ErrGameNotActive       = errors.New("game is not active")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrActionNotAvailable  = errors.New("action not available this turn")
	ErrInvalidMove         = errors.New("card cannot be played on the active card")
	ErrCardNotInHand       = errors.New("card is not in your hand")
	ErrColorChoicePending  = errors.New("a color must be chosen first")
	ErrNoColorChoice       = errors.New("no color choice is pending")
	ErrDrawDuringSequence  = errors.New("cannot draw during an open sequence")
	ErrNoOpenSequence      = errors.New("no open sequence to close")
	ErrNotSequenceOwner    = errors.New("only the sequence opener may close it")
	ErrEndTurnNotAvailable = errors.New("an action must be taken before ending the turn")
	ErrObligationsPending  = errors.New("cannot declare a winner while a chain or sequence is unresolved")
	ErrAlreadyPaused       = errors.New("game is already paused")
	ErrNotPaused           = errors.New("game is not paused")
)
