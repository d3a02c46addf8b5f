package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EventType represents different event types
type EventType string

const (
	PayoutApplied       EventType = "PAYOUT_APPLIED"
	PayoutFailed        EventType = "PAYOUT_FAILED"
	BalanceDebited      EventType = "BALANCE_DEBITED"
	EnterprisePurchased EventType = "ENTERPRISE_PURCHASED"
	ProductionTick      EventType = "PRODUCTION_TICK"
	TerritoryUpgraded   EventType = "TERRITORY_UPGRADED"
	ChainDisrupted      EventType = "CHAIN_DISRUPTED"
	ChainBlocked        EventType = "CHAIN_BLOCKED"
	ChainRestored       EventType = "CHAIN_RESTORED"
	MarketTrendUpdated  EventType = "MARKET_TREND_UPDATED"
	LeaderboardComputed EventType = "LEADERBOARD_COMPUTED"
	PlayerCreated       EventType = "PLAYER_CREATED"
	ErrorOccurred       EventType = "ERROR_OCCURRED"
)

// Event represents a system event
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Module    string                 `json:"module"`
}

// Manager handles event emission, logging, and fan-out to subscribers
type Manager struct {
	log         zerolog.Logger
	mu          sync.RWMutex
	subscribers map[int]chan Event
	nextID      int
}

// NewManager creates a new event manager
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		log:         log.With().Str("service", "events").Logger(),
		subscribers: make(map[int]chan Event),
	}
}

// Subscribe registers a new subscriber and returns its channel along with
// an unsubscribe function. The channel is buffered; events are dropped for
// slow consumers rather than blocking emitters.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	ch := make(chan Event, 100)
	m.subscribers[id] = ch

	unsubscribe := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subscribers[id]; ok {
			delete(m.subscribers, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

// Emit emits an event
func (m *Manager) Emit(eventType EventType, module string, data map[string]interface{}) {
	event := Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
		Module:    module,
	}

	// Log event
	eventJSON, _ := json.Marshal(event)
	m.log.Info().
		Str("event_type", string(eventType)).
		Str("module", module).
		RawJSON("event", eventJSON).
		Msg("Event emitted")

	// Fan out to subscribers (non-blocking)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
			m.log.Warn().
				Str("event_type", string(eventType)).
				Msg("Subscriber channel full, dropping event")
		}
	}
}

// EmitError emits an error event
func (m *Manager) EmitError(module string, err error, context map[string]interface{}) {
	data := map[string]interface{}{
		"error":   err.Error(),
		"context": context,
	}
	m.Emit(ErrorOccurred, module, data)
}
