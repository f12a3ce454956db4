package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sparkle/internal/domain"
)

// WizardStateTTL is how long an abandoned booking session survives.
const WizardStateTTL = 24 * time.Hour

const wizardKeyPrefix = "wizard:session:"

// WizardStore persists per-session booking wizard state as one JSON record.
// A session that has never written state reads back as (nil, nil); only a
// transport failure produces an error. Callers must treat those two cases
// differently: an error means the state is not yet known and no redirect
// decision may be made from it.
type WizardStore struct {
	client *redis.Client
}

// NewWizardStore creates a new WizardStore.
func NewWizardStore(client *redis.Client) *WizardStore {
	return &WizardStore{client: client}
}

// Get retrieves the wizard state for a session. Returns (nil, nil) when the
// session has no stored state.
func (s *WizardStore) Get(ctx context.Context, sessionID string) (*domain.WizardState, error) {
	data, err := s.client.Get(ctx, wizardKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var state domain.WizardState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Set stores the full wizard state for a session, refreshing the TTL.
func (s *WizardStore) Set(ctx context.Context, sessionID string, state *domain.WizardState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wizardKeyPrefix+sessionID, data, WizardStateTTL).Err()
}

// Delete removes the wizard state for a session.
func (s *WizardStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, wizardKeyPrefix+sessionID).Err()
}
