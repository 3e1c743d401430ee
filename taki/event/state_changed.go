package event

// Aspects of the game state machine a StateChanged notification can name.
const (
	AspectTurnState        = "turn_state"
	AspectInteractionState = "interaction_state"
	AspectGameStatus       = "game_status"
	AspectActiveColor      = "active_color"
	AspectTurnDirection    = "turn_direction"
)

type StateChangedPayload struct {
	Aspect string
	Value  string
}

type StateChangedListener interface {
	OnStateChanged(StateChangedPayload)
}

type StateChangedEmitter struct {
	listeners []StateChangedListener
}

func (e *StateChangedEmitter) AddListener(listener StateChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *StateChangedEmitter) Emit(payload StateChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnStateChanged(payload)
	}
}
