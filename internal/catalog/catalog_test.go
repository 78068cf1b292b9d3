package catalog

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/typetest/internal/model"
)

type fixedSource struct {
	next  int
	calls []int
}

func (f *fixedSource) Intn(n int) int {
	f.calls = append(f.calls, n)
	return f.next % n
}

func TestSelectDrawsFromTierPool(t *testing.T) {
	c := Default()
	p := NewProviderWithSource(c, rand.New(rand.NewSource(1)))
	for _, tier := range model.Tiers() {
		pool := c.Pool(tier)
		for i := 0; i < 50; i++ {
			got := p.Select(tier)
			if got == "" {
				t.Fatalf("expected non-empty sample for %s", tier)
			}
			if !contains(pool, got) {
				t.Fatalf("sample %q not in %s pool", got, tier)
			}
		}
	}
}

func TestSelectUnknownTierFallsBackToEasy(t *testing.T) {
	c := Default()
	p := NewProviderWithSource(c, rand.New(rand.NewSource(7)))
	easy := c.Pool(model.TierEasy)
	for _, tier := range []model.Tier{"", "expert", "EASY"} {
		got := p.Select(tier)
		if !contains(easy, got) {
			t.Fatalf("expected easy sample for tier %q, got %q", tier, got)
		}
	}
}

func TestSelectUsesInjectedSource(t *testing.T) {
	src := &fixedSource{next: 2}
	p := NewProviderWithSource(Default(), src)
	got := p.Select(model.TierHard)
	want := Default().Pool(model.TierHard)[2]
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(src.calls) != 1 || src.calls[0] != 3 {
		t.Fatalf("expected one Intn(3) call, got %v", src.calls)
	}
}

func TestSelectCoversWholePool(t *testing.T) {
	c := Default()
	p := NewProviderWithSource(c, rand.New(rand.NewSource(42)))
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[p.Select(model.TierMedium)] = true
	}
	if len(seen) != len(c.Pool(model.TierMedium)) {
		t.Fatalf("expected every medium sentence to be drawn, got %d", len(seen))
	}
}

func TestNewOverridesKeepOtherTiers(t *testing.T) {
	c := New(map[model.Tier][]string{
		model.TierHard: {"  Custom hard sentence.  ", ""},
		model.TierEasy: {" "},
	})
	hard := c.Pool(model.TierHard)
	if len(hard) != 1 || hard[0] != "Custom hard sentence." {
		t.Fatalf("unexpected hard pool: %v", hard)
	}
	if len(c.Pool(model.TierEasy)) != 3 {
		t.Fatalf("expected built-in easy pool for blank override")
	}
	if len(c.Pool(model.TierMedium)) != 3 {
		t.Fatalf("expected built-in medium pool")
	}
}

func TestPoolReturnsCopy(t *testing.T) {
	c := Default()
	pool := c.Pool(model.TierEasy)
	pool[0] = "mutated"
	if c.Pool(model.TierEasy)[0] == "mutated" {
		t.Fatalf("expected catalog to be immutable through Pool")
	}
}

func contains(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}
