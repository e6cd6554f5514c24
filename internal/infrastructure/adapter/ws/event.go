package ws

// Client-sent event names
const (
	EventCreateGame   = "createGame"
	EventTestMessage  = "testMessage"
	EventNextRound    = "nextRound"
	EventEndGame      = "endGame"
	EventSendGameRule = "sendGameRule"
	EventJoinGame     = "joinGame"
	EventStartGame    = "startGame"
)

// Server-sent event names
const (
	EventGameCreated      = "gameCreated"
	EventStoredMessage    = "storedMessage"
	EventNextRoundStarted = "nextRoundStarted"
	EventGameRuleStored   = "gameRuleStored"
	EventNewPlayer        = "newPlayer"
	EventGameStarted      = "gameStarted"
	EventGameEnded        = "gameEnded"
	EventError            = "error"
)

// Event is the JSON envelope exchanged over the game socket
type Event struct {
	Event   string `json:"event"`
	GroupID string `json:"groupId,omitempty"`
	Data    string `json:"data,omitempty"`
}
