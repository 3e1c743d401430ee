package state

import (
	"fmt"

	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
)

type create struct{}

func (*create) Next(player *database.Player) (consts.StateID, error) {
	room := database.CreateRoom(player.ID)
	err := database.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	err = player.WriteString(fmt.Sprintf("Room %d created. Waiting for an opponent; type 'robot' to seat one. \n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateWaiting, nil
}

func (*create) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
