package state

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/config"
	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! \n", player.Name))
	}
	return consts.StateHome
}

// waitingForStart polls the lobby once a second so every member notices the
// match starting, whoever triggered it.
func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	access := false
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return access, err
		}
		if room.State == consts.RoomStateRunning {
			access = true
			break
		}
		signal = strings.ToLower(strings.TrimSpace(signal))
		if isExit(signal) {
			break
		}
		if isLs(signal) {
			viewRoomPlayers(room, player)
		} else if (signal == "start" || signal == "s") && room.Creator == player.ID {
			if startMatch(player, room) {
				access = true
				break
			}
		} else if signal == "robot" || signal == "r" {
			if err := room.AddBot(); err != nil {
				_ = player.WriteError(err)
				continue
			}
			database.Broadcast(room.ID, "A robot sat down! \n")
		} else if len(signal) > 0 {
			database.Broadcast(room.ID, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
	return access, nil
}

func startMatch(player *database.Player, room *database.Room) bool {
	cfg, err := config.Load()
	if err != nil {
		_ = player.WriteError(err)
		return false
	}
	room.Lock()
	err = database.StartMatch(room, cfg.TurnLimit, cfg.BotDelay, logrus.StandardLogger())
	room.Unlock()
	if err != nil {
		_ = player.WriteError(err)
		return false
	}
	return true
}

func viewRoomPlayers(room *database.Room, currPlayer *database.Player) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for _, playerId := range room.HumanIDs() {
		title := "player"
		if playerId == room.Creator {
			title = "owner"
		}
		player := database.GetPlayer(playerId)
		if player == nil {
			continue
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
	}
	if room.HasBot() {
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", "Takito", 0, "robot"))
	}
	_ = currPlayer.WriteString(buf.String())
}
