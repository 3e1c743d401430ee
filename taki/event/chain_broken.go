package event

type ChainBrokenPayload struct {
	Seat       int
	PlayerName string
	Penalty    int
	Drawn      int
}

type ChainBrokenListener interface {
	OnChainBroken(ChainBrokenPayload)
}

type ChainBrokenEmitter struct {
	listeners []ChainBrokenListener
}

func (e *ChainBrokenEmitter) AddListener(listener ChainBrokenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ChainBrokenEmitter) Emit(payload ChainBrokenPayload) {
	for _, listener := range e.listeners {
		listener.OnChainBroken(payload)
	}
}
