package database

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/consts"
)

// Room is a two-seat table. Humans occupy seats in join order; the second
// seat can instead be given to a bot in the waiting screen.
type Room struct {
	sync.Mutex

	ID         int64     `json:"id"`
	State      int       `json:"state"`
	Creator    int64     `json:"creator"`
	ActiveTime time.Time `json:"activeTime"`

	humans []int64
	hasBot bool
	match  *Match
}

// HumanIDs lists the human players in seat order.
func (room *Room) HumanIDs() []int64 {
	ids := make([]int64, len(room.humans))
	copy(ids, room.humans)
	return ids
}

func (room *Room) HasBot() bool {
	return room.hasBot
}

// SeatCount is humans plus the bot seat.
func (room *Room) SeatCount() int {
	room.Lock()
	defer room.Unlock()
	return room.seatCount()
}

func (room *Room) seatCount() int {
	count := len(room.humans)
	if room.hasBot {
		count++
	}
	return count
}

// AddBot fills the second seat with a computer opponent.
func (room *Room) AddBot() error {
	room.Lock()
	defer room.Unlock()
	if room.seatCount() >= consts.RoomSeats {
		return consts.ErrorsRoomFull
	}
	room.hasBot = true
	return nil
}

func (room *Room) Match() *Match {
	return room.match
}

func (room *Room) addPlayer(player *Player) {
	room.ActiveTime = time.Now()
	for _, id := range room.humans {
		if id == player.ID {
			return
		}
	}
	room.humans = append(room.humans, player.ID)
	player.RoomID = room.ID
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	for index, id := range room.humans {
		if id != player.ID {
			continue
		}
		room.humans = append(room.humans[:index], room.humans[index+1:]...)
		player.RoomID = 0
		if room.Creator == player.ID && len(room.humans) > 0 {
			room.Creator = room.humans[0]
		}
		break
	}
	if len(room.humans) == 0 {
		room.delete()
	}
}

// abortMatch stops a running game (disconnect) and reopens the room.
func (room *Room) abortMatch() {
	if room.match != nil {
		room.match.Resolver.Abort()
		room.match = nil
	}
	room.State = consts.RoomStateWaiting
}

// Cancel removes rooms that have been idle for a day or whose players are
// all gone.
func (room *Room) Cancel() {
	room.Lock()
	defer room.Unlock()
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		logrus.Infof("room %d idle for 24 hours, removed", room.ID)
		room.delete()
		return
	}
	for _, id := range room.humans {
		if player := GetPlayer(id); player != nil && player.online {
			return
		}
	}
	logrus.Infof("room %d has no living players, removed", room.ID)
	room.delete()
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, playerId := range room.humans {
		if player := GetPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	room.abortMatch()
	deleteRoom(room)
}
