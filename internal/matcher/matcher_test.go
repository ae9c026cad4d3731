package matcher

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"wingorder/internal"
)

type fakeOracle struct {
	answer string
	err    error
	calls  int
}

func (f *fakeOracle) Enabled() bool { return true }

func (f *fakeOracle) BestMatch(ctx context.Context, raw string, candidates []string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func testConfig() internal.PricingConfig {
	return internal.PricingConfig{
		"연두": {
			Products: map[string]internal.ProductPricing{
				"포기김치 3kg": {SupplyPrice: 16300, DisplayName: "포기김치 3kg", SiteProductName: "국산 포기김치 3키로"},
				"포기김치 5kg": {SupplyPrice: 21300, DisplayName: "포기김치 5kg", Aliases: []string{"포기5"}},
				"총각김치 2kg": {SupplyPrice: 11800, DisplayName: "총각김치 2kg"},
			},
		},
		"웰그린": {
			Products: map[string]internal.ProductPricing{
				"★A급 가정용 부사사과 2kg내외 13-15과": {SupplyPrice: 8250, DisplayName: "★A급 가정용 부사사과 2kg내외 13-15과"},
				"부사사과2kg내외 13-15과":          {SupplyPrice: 7500, DisplayName: "부사사과2kg내외 13-15과"},
			},
		},
		"홍게2": {
			Products: map[string]internal.ProductPricing{
				"홍게 3kg": {SupplyPrice: 10000, DisplayName: "홍게 3kg"},
			},
		},
	}
}

func TestResolveSiteProductName(t *testing.T) {
	m := New(&fakeOracle{}, zap.NewNop())
	got := m.Resolve(context.Background(), testConfig(), "연두", "[특가] 국산 포기김치 3키로 아삭아삭")
	if got == nil || got.Key != "포기김치 3kg" {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveAlias(t *testing.T) {
	m := New(&fakeOracle{}, zap.NewNop())
	got := m.Resolve(context.Background(), testConfig(), "연두", "엄마손 포기5 묶음")
	if got == nil || got.Key != "포기김치 5kg" {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveNormalizedDisplayName(t *testing.T) {
	m := New(&fakeOracle{}, zap.NewNop())
	got := m.Resolve(context.Background(), testConfig(), "연두", "총각김치2kg 아삭")
	if got == nil || got.Key != "총각김치 2kg" {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveOracleFallback(t *testing.T) {
	o := &fakeOracle{answer: "총각김치 2kg"}
	m := New(o, zap.NewNop())
	got := m.Resolve(context.Background(), testConfig(), "연두", "전통 무김치")
	if got == nil || got.Key != "총각김치 2kg" {
		t.Fatalf("got %+v", got)
	}
	if o.calls != 1 {
		t.Fatalf("oracle calls = %d", o.calls)
	}
}

func TestResolveCachesMisses(t *testing.T) {
	o := &fakeOracle{err: errors.New("unavailable")}
	m := New(o, zap.NewNop())
	cfg := testConfig()
	if m.Resolve(context.Background(), cfg, "연두", "정체불명 상품") != nil {
		t.Fatal("expected miss")
	}
	if m.Resolve(context.Background(), cfg, "연두", "정체불명 상품") != nil {
		t.Fatal("expected cached miss")
	}
	if o.calls != 1 {
		t.Fatalf("miss must be cached, oracle calls = %d", o.calls)
	}
}

func TestResolveSingleCandidateShortcut(t *testing.T) {
	o := &fakeOracle{}
	m := New(o, zap.NewNop())
	got := m.Resolve(context.Background(), testConfig(), "홍게2", "붉은대게 한 박스")
	if got == nil || got.Key != "홍게 3kg" {
		t.Fatalf("got %+v", got)
	}
	if o.calls != 0 {
		t.Fatal("single candidate must not reach the oracle")
	}
}

func TestResolveGradeSplit(t *testing.T) {
	m := New(&fakeOracle{}, zap.NewNop())
	cfg := testConfig()
	got := m.Resolve(context.Background(), cfg, "웰그린", "A급 부사사과2kg내외 13-15과")
	if got == nil || got.Key != "★A급 가정용 부사사과 2kg내외 13-15과" {
		t.Fatalf("A급 raw must stay in the A급 pool, got %+v", got)
	}
	got = m.Resolve(context.Background(), cfg, "웰그린", "부사사과2kg내외 13-15과")
	if got == nil || got.Key != "부사사과2kg내외 13-15과" {
		t.Fatalf("regular raw must not match A급 entries, got %+v", got)
	}
}
