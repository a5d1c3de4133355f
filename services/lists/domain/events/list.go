package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/services/lists/domain/models"
)

// TopicListChanged is the Watermill topic published whenever a transaction
// mutates a (game, family)'s lists or items. Published transactionally with
// the mutation itself; the worker consumes it to invalidate the cached
// aggregate-list snapshot.
const TopicListChanged = "list.changed"

// ListChangedEvent notifies consumers that the lists of a (game, family) pair
// changed in some way. It deliberately carries no row data: consumers re-read
// from Postgres, so a lost or duplicated delivery can never corrupt state.
type ListChangedEvent struct {
	EventID    uuid.UUID     `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int           `json:"version"`  // Schema version; increment on breaking changes
	GameID     uuid.UUID     `json:"game_id"`
	Family     models.Family `json:"family"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewListChangedEvent builds a version-1 ListChangedEvent for the pair.
func NewListChangedEvent(gameID uuid.UUID, family models.Family) ListChangedEvent {
	return ListChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		GameID:     gameID,
		Family:     family,
		OccurredAt: time.Now().UTC(),
	}
}
