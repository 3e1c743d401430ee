package database

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/taki/event"
	"github.com/taki-online/server/taki/game"
	"github.com/taki-online/server/taki/player"
	"github.com/taki-online/server/taki/protocol"
)

const botName = "Takito"

// Match binds a running resolver to the room that hosts it and remembers
// which human sits in which seat.
type Match struct {
	Room     *Room
	Resolver *game.Resolver

	seats map[int64]game.Seat
}

// SeatOf resolves a human player to their seat in the match.
func (m *Match) SeatOf(playerId int64) (game.Seat, bool) {
	seat, ok := m.seats[playerId]
	return seat, ok
}

type humanSeat struct {
	name string
}

func (h humanSeat) Name() string { return h.name }
func (h humanSeat) Bot() bool    { return false }

// StartMatch builds the resolver for a waiting room, seats its humans and
// bot, wires the room broadcaster and the computer driver, and deals. The
// caller must hold the room lock.
func StartMatch(room *Room, turnLimit, botDelay time.Duration, logger *logrus.Logger) error {
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsRoomRunning
	}
	if room.seatCount() < consts.RoomSeats {
		return consts.ErrorsNotEnoughSeats
	}

	humans := make([]*Player, 0, len(room.humans))
	for _, id := range room.humans {
		human := GetPlayer(id)
		if human == nil || !human.online {
			return consts.ErrorsNotEnoughSeats
		}
		humans = append(humans, human)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	match := &Match{Room: room, seats: map[int64]game.Seat{}}

	var players [2]game.Player
	var bot *player.Computer
	for seat := game.SeatOne; seat <= game.SeatTwo; seat++ {
		if int(seat) < len(humans) {
			players[seat] = humanSeat{name: humans[seat].Name}
			match.seats[humans[seat].ID] = seat
		} else {
			// The bot decides on timer goroutines, so it gets its own source
			// instead of sharing the resolver's.
			bot = player.NewComputer(botName, rand.New(rand.NewSource(time.Now().UnixNano()+1)))
			players[seat] = bot
		}
	}

	resolver, err := game.NewResolver(game.Config{
		Players:   players,
		Rand:      rng,
		TurnLimit: turnLimit,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	match.Resolver = resolver

	caster := &matchBroadcaster{match: match, humans: humans}
	bus := resolver.Bus()
	bus.TurnStarted.AddListener(caster)
	bus.CardPlayed.AddListener(caster)
	bus.CardsDrawn.AddListener(caster)
	bus.ColorPicked.AddListener(caster)
	bus.SequenceClosed.AddListener(caster)
	bus.ChainBroken.AddListener(caster)
	bus.PlayerWon.AddListener(caster)

	if bot != nil {
		player.NewDriver(resolver, game.SeatTwo, bot, botDelay, logger)
	}

	room.match = match
	room.State = consts.RoomStateRunning

	if err := resolver.Start(); err != nil {
		room.match = nil
		room.State = consts.RoomStateWaiting
		return err
	}

	initial := protocol.InitialState{
		StartingCardIdentifier: resolver.StartingCard().ID(),
		DrawPileCount:          resolver.DrawPileCount(),
		Player1Hand:            protocol.EncodeHand(resolver.HandOf(game.SeatOne)),
		Player2Hand:            protocol.EncodeHand(resolver.HandOf(game.SeatTwo)),
		MasterActor:            resolver.PlayerName(game.SeatOne),
	}
	for _, human := range humans {
		if err := human.WriteObject(initial); err != nil {
			logrus.WithField("player", human.String()).Error(err)
		}
	}
	return nil
}

// matchBroadcaster turns engine notifications into room chatter. It only
// writes to connections; it never calls back into the resolver.
type matchBroadcaster struct {
	match  *Match
	humans []*Player
}

func (b *matchBroadcaster) send(msg string) {
	for _, human := range b.humans {
		if human.online {
			_ = human.WriteString(">> " + msg)
		}
	}
}

func (b *matchBroadcaster) OnTurnStarted(payload event.TurnStartedPayload) {
	if payload.Skipped {
		b.send(fmt.Sprintf("%s was skipped! \n", payload.PlayerName))
		return
	}
	b.send(fmt.Sprintf("It is %s's turn. \n", payload.PlayerName))
}

func (b *matchBroadcaster) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.InSequence && payload.SequenceCount > 1 {
		b.send(fmt.Sprintf("%s extended the TAKI run with %s (%d cards). \n",
			payload.PlayerName, payload.Card.String(), payload.SequenceCount))
		return
	}
	b.send(fmt.Sprintf("%s played %s. \n", payload.PlayerName, payload.Card.String()))
}

func (b *matchBroadcaster) OnCardsDrawn(payload event.CardsDrawnPayload) {
	msg := fmt.Sprintf("%s drew %d card(s). \n", payload.PlayerName, payload.Drawn)
	if payload.DeckExhausted() {
		msg = fmt.Sprintf("%s drew %d of %d card(s), the deck ran dry. \n",
			payload.PlayerName, payload.Drawn, payload.Requested)
	}
	b.send(msg)
}

func (b *matchBroadcaster) OnColorPicked(payload event.ColorPickedPayload) {
	b.send(fmt.Sprintf("%s chose %s. \n", payload.PlayerName, payload.Color.Paint(payload.Color.Name())))
}

func (b *matchBroadcaster) OnSequenceClosed(payload event.SequenceClosedPayload) {
	b.send(fmt.Sprintf("%s closed the TAKI run after %d card(s). \n", payload.PlayerName, payload.Count))
}

func (b *matchBroadcaster) OnChainBroken(payload event.ChainBrokenPayload) {
	b.send(fmt.Sprintf("%s broke the +2 chain and drew %d card(s). \n", payload.PlayerName, payload.Drawn))
}

func (b *matchBroadcaster) OnPlayerWon(payload event.PlayerWonPayload) {
	b.send(fmt.Sprintf("%s wins! \n", payload.PlayerName))
	for _, human := range b.humans {
		if human.Name == payload.PlayerName {
			human.Score += 100
		}
	}
	room := b.match.Room
	room.match = nil
	room.State = consts.RoomStateWaiting
}
