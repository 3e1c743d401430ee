package player

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/taki/event"
	"github.com/taki-online/server/taki/game"
)

// Driver binds a Computer to a resolver seat. It listens for the engine's
// action prompts and commits the computer's decision after a short thinking
// delay, so bot turns never resolve instantaneously. Decisions fire one at
// a time; each applied action produces the next prompt, which schedules the
// next decision.
//
// Pausing needs no special handling here: a decision scheduled before a
// pause is rejected by the resolver when it fires, and resuming re-prompts
// the current seat.
type Driver struct {
	resolver *game.Resolver
	seat     game.Seat
	brain    *Computer
	delay    time.Duration
	log      *logrus.Entry
}

func NewDriver(resolver *game.Resolver, seat game.Seat, brain *Computer, delay time.Duration, logger *logrus.Logger) *Driver {
	driver := &Driver{
		resolver: resolver,
		seat:     seat,
		brain:    brain,
		delay:    delay,
		log:      logger.WithField("bot", brain.Name()),
	}
	resolver.Bus().ActionRequired.AddListener(driver)
	return driver
}

func (d *Driver) OnActionRequired(payload event.ActionRequiredPayload) {
	if game.Seat(payload.Seat) != d.seat {
		return
	}
	time.AfterFunc(d.delay, d.act)
}

func (d *Driver) act() {
	view := d.resolver.View(d.seat)
	if view.Status != game.StatusActive {
		return
	}
	decision := d.brain.MakeDecision(view)
	var err error
	switch decision.Kind {
	case DecisionPlay:
		err = d.resolver.Play(d.seat, decision.Card)
	case DecisionDraw:
		err = d.resolver.Draw(d.seat)
	case DecisionEndTurn:
		err = d.resolver.EndTurn(d.seat)
	case DecisionPickColor:
		err = d.resolver.PickColor(d.seat, decision.Color)
	case DecisionCloseSequence:
		err = d.resolver.CloseSequence(d.seat)
	}
	if err != nil {
		// Stale prompt (turn moved on, game paused); the next prompt will
		// schedule a fresh decision.
		d.log.WithField("decision", decision.Kind).Debug(err)
	}
}
