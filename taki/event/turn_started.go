package event

type TurnStartedPayload struct {
	Seat       int
	PlayerName string
	Skipped    bool // previous player lost their turn to a Stop card
}

type TurnStartedListener interface {
	OnTurnStarted(TurnStartedPayload)
}

type TurnStartedEmitter struct {
	listeners []TurnStartedListener
}

func (e *TurnStartedEmitter) AddListener(listener TurnStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnStartedEmitter) Emit(payload TurnStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnStarted(payload)
	}
}
