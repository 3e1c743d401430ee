package event

type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Requested  int
	Drawn      int // less than Requested when both piles ran dry
}

func (p CardsDrawnPayload) DeckExhausted() bool {
	return p.Drawn < p.Requested
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
