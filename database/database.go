// Package database is the in-memory registry of connected players and
// rooms. Nothing is persisted: a room and its match live exactly as long
// as the session.
package database

import (
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"

	"github.com/taki-online/server/consts"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				e.Value().(*Room).Cancel()
			})
		}
	})
}

func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(player.ID, player)
	return player
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func CreateRoom(creator int64) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
	}
	rooms.Set(room.ID, room)
	return room
}

func GetRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	return list
}

func JoinRoom(roomId, playerId int64) error {
	player := GetPlayer(playerId)
	room := GetRoom(roomId)
	if player == nil || room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsRoomRunning
	}
	if room.seatCount() >= consts.RoomSeats {
		return consts.ErrorsRoomFull
	}
	room.addPlayer(player)
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := GetRoom(roomId)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	room.removePlayer(GetPlayer(playerId))
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := GetRoom(roomId)
	if room == nil {
		return
	}
	room.broadcast(msg, exclude...)
}

func deleteRoom(room *Room) {
	if room != nil {
		rooms.Del(room.ID)
	}
}
