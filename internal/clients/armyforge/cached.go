package armyforge

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/clock"
)

type rulesEntry struct {
	rules     []armyforge.RuleDefinition
	fetchedAt time.Time
}

// cachedClient keeps common rules per game system. Army lists are always
// fetched fresh since players edit them between imports.
type cachedClient struct {
	Client
	ttl   time.Duration
	clock clock.Clock

	mu    sync.RWMutex
	rules map[armyforge.GameSystem]rulesEntry
}

func newCachedClient(base Client, ttl time.Duration, clk clock.Clock) *cachedClient {
	return &cachedClient{
		Client: base,
		ttl:    ttl,
		clock:  clk,
		rules:  make(map[armyforge.GameSystem]rulesEntry),
	}
}

func (c *cachedClient) GetCommonRules(ctx context.Context, system armyforge.GameSystem) ([]armyforge.RuleDefinition, error) {
	c.mu.RLock()
	entry, ok := c.rules[system]
	c.mu.RUnlock()
	if ok && c.clock.Now().Sub(entry.fetchedAt) < c.ttl {
		return entry.rules, nil
	}

	rules, err := c.Client.GetCommonRules(ctx, system)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.rules[system] = rulesEntry{rules: rules, fetchedAt: c.clock.Now()}
	c.mu.Unlock()

	return rules, nil
}
