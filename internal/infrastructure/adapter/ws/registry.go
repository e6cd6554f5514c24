package ws

import (
	"errors"
	"sync"

	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
)

var (
	// ErrSessionExists is returned when creating a session for a group that
	// already has one
	ErrSessionExists = errors.New("game session already exists for this group")

	// ErrSessionNotFound is returned when joining or broadcasting to a group
	// with no live session
	ErrSessionNotFound = errors.New("no game session exists for this group")
)

// session is one group's live game channel. storedMessage keeps the last
// testMessage so late joiners receive it on entry.
type session struct {
	groupID       string
	clients       map[*Client]bool
	storedMessage string
}

// Registry owns the in-memory mapping of group id to game session. It is
// volatile and unbounded; sessions are lost on restart. The registry is the
// only owner of session lifecycle, and all map access goes through its mutex.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	logger   coreport.Logger
}

// NewRegistry creates an empty session registry
func NewRegistry(logger coreport.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		logger:   logger,
	}
}

// Create registers a new session for the group. Rejects when one exists.
func (r *Registry) Create(groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[groupID]; ok {
		return ErrSessionExists
	}

	r.sessions[groupID] = &session{
		groupID: groupID,
		clients: make(map[*Client]bool),
	}

	r.logger.Info("Game session created", map[string]any{"group_id": groupID})
	return nil
}

// Exists reports whether the group has a live session
func (r *Registry) Exists(groupID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[groupID]
	return ok
}

// Join adds a client to the group's session. When no session exists the
// client is not registered anywhere. Returns the stored message, if any, so
// the caller can replay it to the joiner.
func (r *Registry) Join(groupID string, client *Client) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[groupID]
	if !ok {
		return "", ErrSessionNotFound
	}

	s.clients[client] = true

	r.logger.Info("Client joined game session", map[string]any{
		"group_id":  groupID,
		"client_id": client.ID,
		"players":   len(s.clients),
	})
	return s.storedMessage, nil
}

// StoreMessage keeps the latest test message on the group's session
func (r *Registry) StoreMessage(groupID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[groupID]
	if !ok {
		return ErrSessionNotFound
	}

	s.storedMessage = message
	return nil
}

// Broadcast sends an event to every client in the group's session
func (r *Registry) Broadcast(groupID string, event Event) error {
	r.mu.Lock()
	s, ok := r.sessions[groupID]
	if !ok {
		r.mu.Unlock()
		return ErrSessionNotFound
	}

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	r.mu.Unlock()

	for _, client := range clients {
		if err := client.Send(event); err != nil {
			r.logger.Warn("Failed to send event to client", map[string]any{
				"group_id":  groupID,
				"client_id": client.ID,
				"event":     event.Event,
				"error":     err.Error(),
			})
		}
	}

	return nil
}

// End removes the group's session and returns its clients so the caller can
// notify them before the channel disappears
func (r *Registry) End(groupID string) ([]*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[groupID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	delete(r.sessions, groupID)

	r.logger.Info("Game session ended", map[string]any{
		"group_id": groupID,
		"players":  len(clients),
	})
	return clients, nil
}

// RemoveClient detaches a disconnected client from every session
func (r *Registry) RemoveClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sessions {
		delete(s.clients, client)
	}
}
