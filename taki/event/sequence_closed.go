package event

import "github.com/taki-online/server/taki/card"

type SequenceClosedPayload struct {
	Seat       int
	PlayerName string
	LastCard   card.Card
	Count      int
}

type SequenceClosedListener interface {
	OnSequenceClosed(SequenceClosedPayload)
}

type SequenceClosedEmitter struct {
	listeners []SequenceClosedListener
}

func (e *SequenceClosedEmitter) AddListener(listener SequenceClosedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *SequenceClosedEmitter) Emit(payload SequenceClosedPayload) {
	for _, listener := range e.listeners {
		listener.OnSequenceClosed(payload)
	}
}
