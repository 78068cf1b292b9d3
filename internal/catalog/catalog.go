// Package catalog holds the sample sentences and picks one per attempt.
package catalog

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
)

var defaultPools = map[model.Tier][]string{
	model.TierEasy: {
		"The quick brown fox jumps over the lazy dog.",
		"A small cat sat on a mat and purred softly.",
		"She sells seashells by the seashore today.",
	},
	model.TierMedium: {
		"Learning to type quickly requires practice and concentration over time.",
		"The weather forecast predicted rain, so she carried an umbrella just in case.",
		"He walked along the winding path and enjoyed the quiet afternoon.",
	},
	model.TierHard: {
		"Despite the turbulent conditions, the expedition continued with unshakable determination.",
		"Under the incandescent glow of the city, patterns of life unfurled unpredictably at midnight.",
		"Complex algorithms require both rigorous testing and careful optimization to perform.",
	},
}

// Catalog maps each tier to its sentence pool. It is not modified after construction.
type Catalog struct {
	pools map[model.Tier][]string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(nil)
}

// New builds a catalog from overrides. Tiers without sentences keep the built-in pool.
func New(overrides map[model.Tier][]string) *Catalog {
	pools := make(map[model.Tier][]string, len(defaultPools))
	for _, tier := range model.Tiers() {
		pool := nonBlank(overrides[tier])
		if len(pool) == 0 {
			pool = append([]string(nil), defaultPools[tier]...)
		}
		pools[tier] = pool
	}
	return &Catalog{pools: pools}
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Pool returns a copy of the sentences for tier, falling back to easy.
func (c *Catalog) Pool(tier model.Tier) []string {
	return append([]string(nil), c.pool(tier)...)
}

func (c *Catalog) pool(tier model.Tier) []string {
	if pool := c.pools[tier]; len(pool) > 0 {
		return pool
	}
	return c.pools[model.TierEasy]
}

// Source is the randomness a Provider draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Provider selects sample sentences from a catalog.
type Provider struct {
	catalog *Catalog
	rnd     Source
}

// NewProvider returns a Provider seeded with the current time.
func NewProvider(c *Catalog) *Provider {
	return NewProviderWithSource(c, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewProviderWithSource returns a Provider using rnd for selection.
func NewProviderWithSource(c *Catalog, rnd Source) *Provider {
	if c == nil {
		c = Default()
	}
	return &Provider{catalog: c, rnd: rnd}
}

// Catalog returns the catalog the provider draws from.
func (p *Provider) Catalog() *Catalog {
	return p.catalog
}

// Select returns a uniformly chosen sentence for tier. Unknown tiers use easy.
func (p *Provider) Select(tier model.Tier) string {
	pool := p.catalog.pool(tier)
	return pool[p.rnd.Intn(len(pool))]
}
