package event

// ActionRequired tells whichever adapter drives a seat (human screen or
// computer driver) that the engine is waiting for that seat's next input.
type ActionRequiredPayload struct {
	Seat       int
	PlayerName string
}

type ActionRequiredListener interface {
	OnActionRequired(ActionRequiredPayload)
}

type ActionRequiredEmitter struct {
	listeners []ActionRequiredListener
}

func (e *ActionRequiredEmitter) AddListener(listener ActionRequiredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ActionRequiredEmitter) Emit(payload ActionRequiredPayload) {
	for _, listener := range e.listeners {
		listener.OnActionRequired(payload)
	}
}
