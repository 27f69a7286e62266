package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wizardswar/wizards-war-go/internal/config"
	"github.com/wizardswar/wizards-war-go/internal/game"
	"github.com/wizardswar/wizards-war-go/internal/game/rules"
	"github.com/wizardswar/wizards-war-go/internal/repository"
)

// inboundMessage is one client request over the websocket.
type inboundMessage struct {
	Type    string `json:"type"`
	MatchID string `json:"matchId,omitempty"`

	// play_card
	HandIndex int `json:"handIndex,omitempty"`

	// attempt_cheat
	Cheat         string `json:"cheat,omitempty"`
	OpponentIndex int    `json:"opponentIndex,omitempty"`
	SwapWithTop   bool   `json:"swapWithTop,omitempty"`

	// use_item
	ItemID string `json:"itemId,omitempty"`

	// start_match with custom decks, card codes in deck-file notation
	PlayerDeck   string `json:"playerDeck,omitempty"`
	OpponentDeck string `json:"opponentDeck,omitempty"`
}

// outboundMessage is one server push: events plus the refreshed view, or an
// error.
type outboundMessage struct {
	Type    string          `json:"type"`
	MatchID string          `json:"matchId,omitempty"`
	Events  []rules.Event   `json:"events,omitempty"`
	View    *game.MatchView `json:"view,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type client struct {
	conn    *websocket.Conn
	send    chan []byte
	matchID string
}

// Gateway bridges websocket clients and the match engine: inbound messages
// become engine commands, engine notifications fan out to the clients
// watching the match.
type Gateway struct {
	cfg      config.WebSocketConfig
	engine   *game.Engine
	store    *repository.Store
	logger   *zap.Logger
	baseOpts game.MatchOptions

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]bool
}

// NewGateway wires the gateway to the engine and registers itself as the
// engine's notification handler. store may be nil to disable history.
func NewGateway(cfg config.WebSocketConfig, engine *game.Engine, store *repository.Store, baseOpts game.MatchOptions, logger *zap.Logger) *Gateway {
	g := &Gateway{
		cfg:      cfg,
		engine:   engine,
		store:    store,
		logger:   logger,
		baseOpts: baseOpts,
		clients:  make(map[*client]bool),
	}
	g.upgrader = websocket.Upgrader{
		CheckOrigin: g.checkOrigin,
	}
	engine.SetNotificationHandler(g.onNotification)
	return g
}

func (g *Gateway) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range g.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// Start serves the websocket endpoint until the context is cancelled.
func (g *Gateway) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.serveWS)

	srv := &http.Server{
		Addr:    g.cfg.Address,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("websocket gateway listening", zap.String("address", g.cfg.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (g *Gateway) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}

	g.mu.Lock()
	g.clients[c] = true
	g.mu.Unlock()

	go c.writePump()
	go g.readPump(c)
}

func (g *Gateway) readPump(c *client) {
	defer func() {
		g.mu.Lock()
		if g.clients[c] {
			delete(g.clients, c)
			close(c.send)
		}
		g.mu.Unlock()
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			g.sendError(c, "", "malformed message")
			continue
		}
		g.handleMessage(c, msg)
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for raw := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return
		}
	}
}

func (g *Gateway) handleMessage(c *client, msg inboundMessage) {
	switch msg.Type {
	case "start_match":
		g.handleStartMatch(c, msg)

	case "play_card":
		g.applyCommand(c, msg.MatchID, game.Command{
			Kind:      game.CommandPlayCard,
			Seat:      rules.SeatPlayer,
			HandIndex: msg.HandIndex,
		})

	case "attempt_cheat":
		g.applyCommand(c, msg.MatchID, game.Command{
			Kind:  game.CommandAttemptCheat,
			Seat:  rules.SeatPlayer,
			Cheat: game.CheatID(msg.Cheat),
			Target: game.CheatTarget{
				HandIndex:     msg.HandIndex,
				OpponentIndex: msg.OpponentIndex,
				SwapWithTop:   msg.SwapWithTop,
			},
		})

	case "use_item":
		g.applyCommand(c, msg.MatchID, game.Command{
			Kind:   game.CommandUseItem,
			Seat:   rules.SeatPlayer,
			ItemID: msg.ItemID,
		})

	case "restart":
		g.applyCommand(c, msg.MatchID, game.Command{
			Kind: game.CommandRestart,
			Seat: rules.SeatPlayer,
		})

	case "get_view":
		view, err := g.engine.View(msg.MatchID)
		if err != nil {
			g.sendError(c, msg.MatchID, err.Error())
			return
		}
		g.sendTo(c, outboundMessage{Type: "view", MatchID: msg.MatchID, View: &view})

	default:
		g.sendError(c, msg.MatchID, "unknown message type "+msg.Type)
	}
}

func (g *Gateway) handleStartMatch(c *client, msg inboundMessage) {
	opts := g.baseOpts
	if msg.PlayerDeck != "" || msg.OpponentDeck != "" {
		playerDeck, err := game.ParseDeck(msg.PlayerDeck)
		if err != nil {
			g.sendError(c, "", err.Error())
			return
		}
		oppoDeck, err := game.ParseDeck(msg.OpponentDeck)
		if err != nil {
			g.sendError(c, "", err.Error())
			return
		}
		opts.PlayerDeck, opts.OppoDeck = playerDeck, oppoDeck
	}

	matchID, events, err := g.engine.StartMatch(opts)
	if err != nil {
		g.sendError(c, "", err.Error())
		return
	}
	c.matchID = matchID

	view, err := g.engine.View(matchID)
	if err != nil {
		g.sendError(c, matchID, err.Error())
		return
	}
	g.sendTo(c, outboundMessage{Type: "match_started", MatchID: matchID, Events: sanitizeEvents(events), View: &view})
}

func (g *Gateway) applyCommand(c *client, matchID string, cmd game.Command) {
	if matchID == "" {
		matchID = c.matchID
	}
	if matchID == "" {
		g.sendError(c, "", "no match selected")
		return
	}
	c.matchID = matchID

	if _, err := g.engine.Apply(matchID, cmd); err != nil {
		g.sendError(c, matchID, err.Error())
	}
	// Success responses arrive through the engine notification fan-out.
}

// sanitizeEvents hides information the player must not see before a frame
// leaves the engine: the opponent's drawn card identities stay face-down.
// Explicit reveal events (hand revealed, pile top revealed) pass through,
// as do the counts carried on Amount.
func sanitizeEvents(events []rules.Event) []rules.Event {
	out := make([]rules.Event, len(events))
	copy(out, events)
	for i := range out {
		if out[i].Type == rules.EventCardsDrawn && out[i].SeatSet && out[i].Seat == rules.SeatOpponent {
			out[i].Cards = nil
		}
	}
	return out
}

// onNotification is the engine's notification handler: it broadcasts the
// update to every client watching the match and persists finished matches.
func (g *Gateway) onNotification(n game.MatchNotification) {
	raw, err := json.Marshal(outboundMessage{
		Type:    "update",
		MatchID: n.MatchID,
		Events:  sanitizeEvents(n.Events),
		View:    &n.View,
	})
	if err != nil {
		g.logger.Error("marshaling notification", zap.Error(err))
		return
	}

	g.mu.RLock()
	for c := range g.clients {
		if c.matchID != n.MatchID {
			continue
		}
		select {
		case c.send <- raw:
		default:
			// Slow consumer; drop the frame rather than block the engine.
		}
	}
	g.mu.RUnlock()

	if n.View.Over && g.store != nil {
		g.persistResult(n)
	}
}

func (g *Gateway) persistResult(n game.MatchNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := repository.MatchRecord{
		MatchID:       n.MatchID,
		Reason:        n.View.EndReason,
		PlayerScore:   n.View.Player.Score,
		OpponentScore: n.View.Opponent.Score,
		Rounds:        n.View.Round,
		FinishedAt:    n.Timestamp,
	}
	if err := g.store.SaveMatch(ctx, rec); err != nil {
		g.logger.Error("persisting match result",
			zap.String("match_id", n.MatchID),
			zap.Error(err),
		)
	}
}

func (g *Gateway) sendTo(c *client, msg outboundMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		g.logger.Error("marshaling message", zap.Error(err))
		return
	}
	select {
	case c.send <- raw:
	default:
	}
}

func (g *Gateway) sendError(c *client, matchID, text string) {
	g.sendTo(c, outboundMessage{Type: "error", MatchID: matchID, Error: text})
}
