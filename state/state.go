// Package state drives one connected player through the server's screens:
// welcome, home, joining or creating a room, the waiting lobby and the game
// itself. Each screen blocks on the player's input and names the screen
// that follows.
package state

import (
	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateGame, &gameScreen{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	// Next runs the screen until it resolves to the next one. A zero
	// StateID repeats the current screen.
	Next(player *database.Player) (consts.StateID, error)
	// Exit names the screen to fall back to when the player backs out.
	Exit(player *database.Player) consts.StateID
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Load is the per-connection screen loop. It returns when the player
// disconnects or asks to leave.
func Load(player *database.Player) {
	player.State(Root())
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if errx, ok := err.(consts.Error); !ok || !errx.Exit {
				logrus.WithField("player", player.String()).Error(err)
			}
			break
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	return signal == "ls" || signal == "v"
}
