package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wizardswar/wizards-war-go/internal/game/rules"
	"go.uber.org/zap"
)

// MatchNotification is pushed to the registered handler after every applied
// command, carrying the events it produced and a fresh view.
type MatchNotification struct {
	MatchID   string
	Events    []rules.Event
	View      MatchView
	Timestamp time.Time
}

// NotificationHandler receives match notifications for UI/websocket fan-out.
type NotificationHandler func(notification MatchNotification)

// managedMatch pairs a match with the mutex that serializes access to it.
type managedMatch struct {
	mu    sync.Mutex
	match *Match
}

// Engine owns all running matches. Matches are single-owner state machines;
// the engine serializes every command against its match.
type Engine struct {
	logger *zap.Logger

	mu      sync.RWMutex
	matches map[string]*managedMatch

	notificationHandler NotificationHandler
}

// NewEngine creates an engine with no matches.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:  logger,
		matches: make(map[string]*managedMatch),
	}
}

// SetNotificationHandler registers the handler that receives match
// notifications. The handler is invoked on its own goroutine, so it may
// call back into the engine.
func (e *Engine) SetNotificationHandler(handler NotificationHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notificationHandler = handler
}

func (e *Engine) notify(n MatchNotification) {
	e.mu.RLock()
	handler := e.notificationHandler
	e.mu.RUnlock()
	if handler != nil {
		go handler(n)
	}
}

// StartMatch creates a new match and returns its id along with the opening
// events (match start and the initial draws).
func (e *Engine) StartMatch(opts MatchOptions) (string, []rules.Event, error) {
	id := uuid.New().String()

	match, err := NewMatch(id, opts, e.logger.With(zap.String("match_id", id)))
	if err != nil {
		return "", nil, err
	}
	opening := match.flush()

	e.mu.Lock()
	e.matches[id] = &managedMatch{match: match}
	e.mu.Unlock()

	e.logger.Info("match started", zap.String("match_id", id))
	e.notify(MatchNotification{
		MatchID:   id,
		Events:    opening,
		View:      match.View(),
		Timestamp: time.Now(),
	})
	return id, opening, nil
}

func (e *Engine) managed(matchID string) (*managedMatch, error) {
	e.mu.RLock()
	mm, ok := e.matches[matchID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("match %s not found", matchID)
	}
	return mm, nil
}

// Apply routes a command to its match and returns the resulting events.
func (e *Engine) Apply(matchID string, cmd Command) ([]rules.Event, error) {
	mm, err := e.managed(matchID)
	if err != nil {
		return nil, err
	}

	mm.mu.Lock()
	events, err := mm.match.Apply(cmd)
	view := mm.match.View()
	mm.mu.Unlock()

	if err != nil {
		e.logger.Warn("command rejected",
			zap.String("match_id", matchID),
			zap.String("command", cmd.Kind.String()),
			zap.Error(err),
		)
		return events, err
	}

	e.notify(MatchNotification{
		MatchID:   matchID,
		Events:    events,
		View:      view,
		Timestamp: time.Now(),
	})
	return events, nil
}

// View returns the player-facing projection of a match.
func (e *Engine) View(matchID string) (MatchView, error) {
	mm, err := e.managed(matchID)
	if err != nil {
		return MatchView{}, err
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return mm.match.View(), nil
}

// EndMatchListing summarizes a finished or running match.
type EndMatchListing struct {
	MatchID string
	Over    bool
	Reason  EndReason
}

// ListMatches returns a summary of every match the engine holds.
func (e *Engine) ListMatches() []EndMatchListing {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]EndMatchListing, 0, len(e.matches))
	for id, mm := range e.matches {
		mm.mu.Lock()
		out = append(out, EndMatchListing{
			MatchID: id,
			Over:    mm.match.Over(),
			Reason:  mm.match.EndReason(),
		})
		mm.mu.Unlock()
	}
	return out
}

// RemoveMatch drops a match from the engine.
func (e *Engine) RemoveMatch(matchID string) {
	e.mu.Lock()
	delete(e.matches, matchID)
	e.mu.Unlock()
}
