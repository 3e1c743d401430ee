package state

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
	"github.com/taki-online/server/taki/protocol"
)

// gameScreen relays one human seat to the match resolver. Input is either a
// plain command ("play 3", "draw", "color red") or a JSON move message as a
// client application would send it; both paths end in the same resolver
// operations.
type gameScreen struct{}

func (g *gameScreen) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	match := room.Match()
	if match == nil {
		_ = player.WriteError(consts.ErrorsGameNotRunning)
		return consts.StateWaiting, nil
	}
	seat, ok := match.SeatOf(player.ID)
	if !ok {
		_ = player.WriteError(consts.ErrorsGameNotRunning)
		return consts.StateWaiting, nil
	}
	resolver := match.Resolver

	_ = player.WriteString(renderView(resolver.View(seat)))
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		if resolver.MatchStatus() == game.StatusOver {
			return g.finish(player, resolver, seat)
		}
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil {
			if err == consts.ErrorsTimeout {
				continue
			}
			return 0, err
		}
		signal = strings.TrimSpace(signal)
		if signal == "" {
			continue
		}
		if err := g.handle(player, resolver, seat, signal); err != nil {
			_ = player.WriteError(err)
		}
	}
}

func (*gameScreen) Exit(player *database.Player) consts.StateID {
	return consts.StateWaiting
}

func (g *gameScreen) finish(player *database.Player, resolver *game.Resolver, seat game.Seat) (consts.StateID, error) {
	winner := resolver.Winner()
	msg := "Game over. \n"
	if winner == seat {
		msg = "You win! \n"
	} else if winner.Valid() {
		msg = fmt.Sprintf("%s wins, better luck next time. \n", resolver.PlayerName(winner))
	}
	_ = player.WriteString(msg)
	return consts.StateWaiting, nil
}

func (g *gameScreen) handle(player *database.Player, resolver *game.Resolver, seat game.Seat, signal string) error {
	if strings.HasPrefix(signal, "{") {
		move, err := protocol.UnmarshalMove([]byte(signal))
		if err != nil {
			return err
		}
		if err := applyMove(resolver, seat, move); err != nil {
			return err
		}
		return player.WriteString(renderView(resolver.View(seat)))
	}

	fields := strings.Fields(strings.ToLower(signal))
	command, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	var err error
	switch command {
	case "ls", "v", "hand":
	case "play", "p":
		var chosen card.Card
		chosen, err = cardByIndex(resolver.View(seat).Hand, arg)
		if err == nil {
			err = resolver.Play(seat, chosen)
		}
	case "draw", "d":
		err = resolver.Draw(seat)
	case "end", "e":
		err = resolver.EndTurn(seat)
	case "color", "c":
		var chosen color.Color
		chosen, err = color.ByName(arg)
		if err == nil {
			err = resolver.PickColor(seat, chosen)
		}
	case "close", "cl":
		err = resolver.CloseSequence(seat)
	case "pause":
		err = resolver.Pause()
	case "resume":
		err = resolver.Resume()
	default:
		return consts.ErrorsInputInvalid
	}
	if err != nil {
		return err
	}
	return player.WriteString(renderView(resolver.View(seat)))
}

func applyMove(resolver *game.Resolver, seat game.Seat, move protocol.Move) error {
	switch move.ActionType {
	case protocol.ActionPlayCard:
		played, err := card.ByID(move.CardIdentifier)
		if err != nil {
			return err
		}
		return resolver.Play(seat, played)
	case protocol.ActionDrawCard:
		return resolver.Draw(seat)
	case protocol.ActionEndTurn:
		return resolver.EndTurn(seat)
	case protocol.ActionChooseColor:
		chosen, err := color.ByName(move.Color)
		if err != nil {
			return err
		}
		return resolver.PickColor(seat, chosen)
	case protocol.ActionCloseSequence:
		return resolver.CloseSequence(seat)
	}
	return consts.ErrorsInputInvalid
}

func cardByIndex(hand []card.Card, arg string) (card.Card, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 1 || index > len(hand) {
		return card.Card{}, consts.ErrorsInputInvalid
	}
	return hand[index-1], nil
}

func renderView(view game.View) string {
	buf := bytes.Buffer{}
	switch view.Status {
	case game.StatusPaused:
		buf.WriteString("Game paused. Type 'resume' to continue. \n")
		return buf.String()
	case game.StatusOver:
		return buf.String()
	}
	buf.WriteString(fmt.Sprintf("Top card: %s", view.Top.String()))
	if view.ActiveColor != nil {
		buf.WriteString(fmt.Sprintf("    Active color: %s", view.ActiveColor.String()))
	}
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("Opponent holds %d card(s), draw pile has %d. \n", view.OpponentCards, view.DrawPileCount))
	buf.WriteString("Your hand:\n")
	for i, handCard := range view.Hand {
		buf.WriteString(fmt.Sprintf("%3d) %s\n", i+1, handCard.String()))
	}
	if view.ChainCount > 0 {
		buf.WriteString(fmt.Sprintf("+2 chain is open: %d card(s) in, penalty is %d. Play a +2 or draw. \n", view.ChainCount, view.ChainPenalty))
	}
	if view.SequenceCount > 0 && view.SequenceColor != nil {
		buf.WriteString(fmt.Sprintf("TAKI run open on %s (%d played). \n", view.SequenceColor.String(), view.SequenceCount))
		if view.SequenceOwner {
			buf.WriteString("Type 'close' to finish the run. \n")
		}
	}
	if view.Interaction == game.InteractionColorSelection {
		buf.WriteString("A color must be picked: 'color red|yellow|green|blue'. \n")
	}
	var allowed []string
	if view.CanPlay {
		allowed = append(allowed, "play <n>")
	}
	if view.CanDraw {
		allowed = append(allowed, "draw")
	}
	if view.CanEnd {
		allowed = append(allowed, "end")
	}
	if len(allowed) > 0 {
		buf.WriteString("Your move: " + strings.Join(allowed, ", ") + ". \n")
	}
	return buf.String()
}
