package consts

import "time"

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateGame
)

const (
	IsStart = "IS_START"
	IsStop  = "IS_STOP"

	// Rooms hold exactly two seats: the creator and one opponent (human
	// or bot).
	RoomSeats = 2

	RoomStateWaiting = 1
	RoomStateRunning = 2

	AuthTimeout = 3 * time.Second
)

var RoomStates = map[int]string{
	RoomStateWaiting: "Waiting",
	RoomStateRunning: "Running",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Msg: msg, Exit: exit}
}

var (
	ErrorsExist          = NewErr(1, true, "Exist. ")
	ErrorsChanClosed     = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout        = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid   = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail       = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid    = NewErr(1, true, "Room invalid. ")
	ErrorsRoomFull       = NewErr(1, false, "Room already has two seats. ")
	ErrorsRoomRunning    = NewErr(1, false, "Join fail, room is running. ")
	ErrorsNotEnoughSeats = NewErr(1, false, "Need an opponent before starting. ")
	ErrorsGameNotRunning = NewErr(1, false, "No running game in this room. ")
	ErrorsNetworkDesync  = NewErr(1, false, "Network Error: state out of sync, attempting to recover. ")
)
