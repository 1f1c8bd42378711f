package controllers

import (
	"context"
	"sync"

	"collab-server/repository"
	service "collab-server/services"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

// FeedSocketController keeps the live feed sockets. It doubles as the
// Notifier the feed service publishes committed events through; a user may
// hold several sockets at once (multiple tabs), each gets the event.
type FeedSocketController struct {
	mu       sync.RWMutex
	conns    map[string]map[*websocket.Conn]bool
	presence *repository.RedisPresenceRepository
}

func NewFeedSocketController(presence *repository.RedisPresenceRepository) *FeedSocketController {
	return &FeedSocketController{
		conns:    make(map[string]map[*websocket.Conn]bool),
		presence: presence,
	}
}

// Publish sends a feed event to every open socket of the user. Write errors
// are logged and ignored; the feed row is the durable record.
func (fsc *FeedSocketController) Publish(userID string, event service.FeedEvent) {
	fsc.mu.RLock()
	defer fsc.mu.RUnlock()
	for conn := range fsc.conns[userID] {
		if err := conn.WriteJSON(event); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("feed push failed")
		}
	}
}

// HandleFeedSocket serves one feed socket. The JWT middleware has already
// resolved the user; the project id in the path scopes presence only.
func (fsc *FeedSocketController) HandleFeedSocket(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	projectID := c.Params("projectId")
	if userID == "" {
		c.Close()
		return
	}

	fsc.register(userID, c)
	if fsc.presence != nil {
		if err := fsc.presence.MarkOnline(context.Background(), projectID, userID); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("presence mark online failed")
		}
	}
	log.Info().Str("user", userID).Str("project", projectID).Msg("feed socket connected")

	defer func() {
		fsc.unregister(userID, c)
		if fsc.presence != nil {
			if err := fsc.presence.MarkOffline(context.Background(), projectID, userID); err != nil {
				log.Warn().Err(err).Str("user", userID).Msg("presence mark offline failed")
			}
		}
		c.Close()
		log.Info().Str("user", userID).Msg("feed socket closed")
	}()

	// Clients never send payloads on this socket; the read loop only
	// detects the close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (fsc *FeedSocketController) register(userID string, c *websocket.Conn) {
	fsc.mu.Lock()
	defer fsc.mu.Unlock()
	if fsc.conns[userID] == nil {
		fsc.conns[userID] = make(map[*websocket.Conn]bool)
	}
	fsc.conns[userID][c] = true
}

func (fsc *FeedSocketController) unregister(userID string, c *websocket.Conn) {
	fsc.mu.Lock()
	defer fsc.mu.Unlock()
	delete(fsc.conns[userID], c)
	if len(fsc.conns[userID]) == 0 {
		delete(fsc.conns, userID)
	}
}
