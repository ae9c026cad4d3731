package matcher

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"wingorder/internal"
	"wingorder/internal/catalog"
	"wingorder/internal/oracle"
	"wingorder/internal/util"
)

// Oracle picks the best candidate display name for a raw product name.
// It is consulted only after every deterministic layer has missed.
type Oracle interface {
	Enabled() bool
	BestMatch(ctx context.Context, raw string, candidates []string) (string, error)
}

// Matcher resolves raw order-sheet product names to catalog entries.
// Results are cached for the life of the matcher, including misses, so
// one bad row does not trigger an oracle call per occurrence.
type Matcher struct {
	oracle Oracle
	logger *zap.Logger
	cache  map[string]*catalog.Match
}

func New(o Oracle, logger *zap.Logger) *Matcher {
	return &Matcher{
		oracle: o,
		logger: logger.Named("matcher"),
		cache:  map[string]*catalog.Match{},
	}
}

// Resolve finds the catalog product a raw order row refers to, or nil
// when nothing in the company's price list fits.
func (m *Matcher) Resolve(ctx context.Context, cfg internal.PricingConfig, company, raw string) *catalog.Match {
	companyCfg, ok := cfg[company]
	if !ok || len(companyCfg.Products) == 0 || strings.TrimSpace(raw) == "" {
		return nil
	}

	keys := candidateKeys(company, companyCfg.Products, raw)
	if len(keys) == 0 {
		return nil
	}
	if len(keys) == 1 {
		return matchFor(companyCfg.Products, keys[0])
	}

	cacheKey := company + "::" + raw
	if hit, ok := m.cache[cacheKey]; ok {
		return hit
	}

	result := m.resolveUncached(ctx, cfg, company, companyCfg.Products, keys, raw)
	m.cache[cacheKey] = result
	return result
}

func (m *Matcher) resolveUncached(ctx context.Context, cfg internal.PricingConfig, company string, products map[string]internal.ProductPricing, keys []string, raw string) *catalog.Match {
	lower := strings.ToLower(raw)

	// Site listing names are the most specific signal.
	if key, length := longestHit(keys, lower, func(k string) []string {
		if site := products[k].SiteProductName; site != "" {
			return []string{site}
		}
		return nil
	}); length > 0 {
		return matchFor(products, key)
	}

	if key, length := longestHit(keys, lower, func(k string) []string {
		return products[k].Aliases
	}); length > 0 {
		return matchFor(products, key)
	}

	normRaw := util.NormalizeMatchText(raw)
	var bestKey string
	bestLen := 0
	for _, key := range keys {
		normDisplay := util.NormalizeMatchText(displayOrKey(products[key], key))
		if normDisplay != "" && strings.Contains(normRaw, normDisplay) && len(normDisplay) > bestLen {
			bestKey, bestLen = key, len(normDisplay)
		}
	}
	if bestLen > 0 {
		return matchFor(products, bestKey)
	}

	if m.oracle != nil && m.oracle.Enabled() {
		names := make([]string, 0, len(keys))
		byName := make(map[string]string, len(keys))
		for _, key := range keys {
			name := displayOrKey(products[key], key)
			names = append(names, name)
			byName[name] = key
		}
		picked, err := m.oracle.BestMatch(ctx, raw, names)
		switch {
		case errors.Is(err, oracle.ErrNotConfigured):
		case err != nil:
			m.logger.Warn("oracle lookup failed", zap.String("company", company), zap.String("raw", raw), zap.Error(err))
		case picked != "":
			return matchFor(products, byName[picked])
		}
	}

	return catalog.FindProduct(cfg, company, raw)
}

// candidateKeys returns the product keys eligible for a raw name,
// deterministically ordered. 웰그린 splits its apple listings into A급
// and regular lines that must never cross-match.
func candidateKeys(company string, products map[string]internal.ProductPricing, raw string) []string {
	wantAGrade := company == "웰그린" && strings.Contains(raw, "A급")
	keys := make([]string, 0, len(products))
	for key, p := range products {
		if company == "웰그린" {
			isAGrade := strings.Contains(displayOrKey(p, key), "★A급")
			if wantAGrade != isAGrade {
				continue
			}
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// longestHit scans candidate keywords and returns the key whose longest
// keyword appears in the lowered raw name.
func longestHit(keys []string, lowerRaw string, keywords func(key string) []string) (string, int) {
	var bestKey string
	bestLen := 0
	for _, key := range keys {
		for _, kw := range keywords(key) {
			if kw == "" {
				continue
			}
			if strings.Contains(lowerRaw, strings.ToLower(kw)) && len(kw) > bestLen {
				bestKey, bestLen = key, len(kw)
			}
		}
	}
	return bestKey, bestLen
}

func displayOrKey(p internal.ProductPricing, key string) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return key
}

func matchFor(products map[string]internal.ProductPricing, key string) *catalog.Match {
	p := products[key]
	if p.DisplayName == "" {
		p.DisplayName = key
	}
	return &catalog.Match{Key: key, Product: p}
}
