package ws

import (
	"net/http"

	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/persistence"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Gateway upgrades HTTP requests to game sockets and dispatches client events
// against the session registry
type Gateway struct {
	registry  *Registry
	groupRepo persistence.GroupRepository
	logger    coreport.Logger
	upgrader  websocket.Upgrader
}

// NewGateway creates a new websocket gateway
func NewGateway(registry *Registry, groupRepo persistence.GroupRepository, logger coreport.Logger) *Gateway {
	return &Gateway{
		registry:  registry,
		groupRepo: groupRepo,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The REST layer handles origin policy via CORS config; the
			// socket accepts the same clients
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle is the GET /ws endpoint
func (g *Gateway) Handle(c *gin.Context) {
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Error("Error upgrading WebSocket", map[string]any{
			"error": err.Error(),
		})
		return
	}

	client := NewClient(conn)

	g.logger.Debug("WebSocket client connected", map[string]any{
		"client_id": client.ID,
	})

	g.readLoop(c, client)
}

// readLoop processes client events until the connection drops
func (g *Gateway) readLoop(c *gin.Context, client *Client) {
	defer func() {
		g.registry.RemoveClient(client)
		_ = client.Close()
		g.logger.Debug("WebSocket client disconnected", map[string]any{
			"client_id": client.ID,
		})
	}()

	for {
		event, err := client.ReadEvent()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn("Unexpected WebSocket close", map[string]any{
					"client_id": client.ID,
					"error":     err.Error(),
				})
			}
			return
		}

		g.dispatch(c, client, event)
	}
}

func (g *Gateway) dispatch(c *gin.Context, client *Client, event Event) {
	switch event.Event {
	case EventCreateGame:
		g.handleCreateGame(c, client, event)
	case EventJoinGame:
		g.handleJoinGame(client, event)
	case EventTestMessage:
		g.handleTestMessage(client, event)
	case EventNextRound:
		g.handleBroadcast(client, event.GroupID, Event{
			Event:   EventNextRoundStarted,
			GroupID: event.GroupID,
			Data:    event.Data,
		})
	case EventStartGame:
		g.handleBroadcast(client, event.GroupID, Event{
			Event:   EventGameStarted,
			GroupID: event.GroupID,
			Data:    event.Data,
		})
	case EventSendGameRule:
		g.handleSendGameRule(c, client, event)
	case EventEndGame:
		g.handleEndGame(client, event)
	default:
		g.sendError(client, event.GroupID, "unknown event: "+event.Event)
	}
}

// handleCreateGame registers a session for an existing group and flags the
// group row so the frontend knows a live channel exists
func (g *Gateway) handleCreateGame(c *gin.Context, client *Client, event Event) {
	if _, err := g.groupRepo.GetByID(c.Request.Context(), event.GroupID); err != nil {
		g.sendError(client, event.GroupID, "group not found")
		return
	}

	if err := g.registry.Create(event.GroupID); err != nil {
		g.sendError(client, event.GroupID, err.Error())
		return
	}

	if err := g.groupRepo.SetGameServerCreated(c.Request.Context(), event.GroupID, true); err != nil {
		g.logger.Error("Failed to flag game server on group", map[string]any{
			"group_id": event.GroupID,
			"error":    err.Error(),
		})
	}

	// Creator joins its own channel
	if _, err := g.registry.Join(event.GroupID, client); err != nil {
		g.sendError(client, event.GroupID, err.Error())
		return
	}

	g.send(client, Event{Event: EventGameCreated, GroupID: event.GroupID})
}

func (g *Gateway) handleJoinGame(client *Client, event Event) {
	stored, err := g.registry.Join(event.GroupID, client)
	if err != nil {
		g.sendError(client, event.GroupID, err.Error())
		return
	}

	if stored != "" {
		g.send(client, Event{
			Event:   EventStoredMessage,
			GroupID: event.GroupID,
			Data:    stored,
		})
	}

	_ = g.registry.Broadcast(event.GroupID, Event{
		Event:   EventNewPlayer,
		GroupID: event.GroupID,
		Data:    client.ID,
	})
}

func (g *Gateway) handleTestMessage(client *Client, event Event) {
	if err := g.registry.StoreMessage(event.GroupID, event.Data); err != nil {
		g.sendError(client, event.GroupID, err.Error())
		return
	}

	_ = g.registry.Broadcast(event.GroupID, Event{
		Event:   EventStoredMessage,
		GroupID: event.GroupID,
		Data:    event.Data,
	})
}

// handleSendGameRule persists the rule on the group, then broadcasts it
func (g *Gateway) handleSendGameRule(c *gin.Context, client *Client, event Event) {
	if err := g.groupRepo.UpdateGameRule(c.Request.Context(), event.GroupID, event.Data); err != nil {
		g.sendError(client, event.GroupID, "failed to store game rule")
		return
	}

	g.handleBroadcast(client, event.GroupID, Event{
		Event:   EventGameRuleStored,
		GroupID: event.GroupID,
		Data:    event.Data,
	})
}

func (g *Gateway) handleEndGame(client *Client, event Event) {
	clients, err := g.registry.End(event.GroupID)
	if err != nil {
		g.sendError(client, event.GroupID, err.Error())
		return
	}

	farewell := Event{Event: EventGameEnded, GroupID: event.GroupID, Data: event.Data}
	for _, member := range clients {
		if err := member.Send(farewell); err != nil {
			g.logger.Warn("Failed to notify client of game end", map[string]any{
				"group_id":  event.GroupID,
				"client_id": member.ID,
				"error":     err.Error(),
			})
		}
	}
}

func (g *Gateway) handleBroadcast(client *Client, groupID string, event Event) {
	if err := g.registry.Broadcast(groupID, event); err != nil {
		g.sendError(client, groupID, err.Error())
	}
}

func (g *Gateway) send(client *Client, event Event) {
	if err := client.Send(event); err != nil {
		g.logger.Warn("Failed to send event", map[string]any{
			"client_id": client.ID,
			"event":     event.Event,
			"error":     err.Error(),
		})
	}
}

func (g *Gateway) sendError(client *Client, groupID, message string) {
	g.send(client, Event{
		Event:   EventError,
		GroupID: groupID,
		Data:    message,
	})
}
