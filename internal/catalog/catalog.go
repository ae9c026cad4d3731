package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"wingorder/internal"
	"wingorder/internal/util"
)

var (
	ErrCompanyExists    = errors.New("company already exists")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrProductExists    = errors.New("product already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("name must not be empty")
	ErrInvalidCatalogJSON = errors.New("invalid catalog json")
)

// Match is a resolved catalog hit. Product.DisplayName is always
// populated, falling back to the key when the entry leaves it blank.
type Match struct {
	Key     string
	Product internal.ProductPricing
}

// preferredOrder breaks ties between companies that share a deadline.
var preferredOrder = []string{
	"연두", "웰그린", "고랭지김치", "답도", "제이제이", "신선마켓",
	"귤_제주", "귤_초록", "홍게", "꽃게", "황금향", "귤",
}

// FindProduct resolves a raw order-sheet product name against a
// company's price list. Match layers, strongest first: longest alias
// substring, displayName substring (longer display names win),
// normalized displayName substring, bare key substring, and finally a
// single-product shortcut when the company sells exactly one thing.
func FindProduct(cfg internal.PricingConfig, company, productName string) *Match {
	companyCfg, ok := cfg[company]
	if !ok || len(companyCfg.Products) == 0 {
		return nil
	}
	if productName == "" {
		return nil
	}
	products := companyCfg.Products
	lower := strings.ToLower(productName)

	keys := make([]string, 0, len(products))
	for k := range products {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a := displayOrKey(products[keys[i]], keys[i])
		b := displayOrKey(products[keys[j]], keys[j])
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return keys[i] < keys[j]
	})

	var bestAliasKey string
	bestAliasLen := 0
	for _, key := range keys {
		for _, alias := range products[key].Aliases {
			if alias == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(alias)) && len(alias) > bestAliasLen {
				bestAliasKey, bestAliasLen = key, len(alias)
			}
		}
	}
	if bestAliasLen > 0 {
		return matchFor(products, bestAliasKey)
	}

	for _, key := range keys {
		display := products[key].DisplayName
		if display != "" && strings.Contains(lower, strings.ToLower(display)) {
			return matchFor(products, key)
		}
	}

	normName := util.NormalizeMatchText(productName)
	var bestNormKey string
	bestNormLen := -1
	for _, key := range keys {
		normDisplay := util.NormalizeMatchText(displayOrKey(products[key], key))
		if strings.Contains(normName, normDisplay) && len(normDisplay) > bestNormLen {
			bestNormKey, bestNormLen = key, len(normDisplay)
		}
	}
	if bestNormLen >= 0 {
		return matchFor(products, bestNormKey)
	}

	for _, key := range keys {
		if strings.Contains(lower, strings.ToLower(key)) {
			return matchFor(products, key)
		}
	}

	if len(products) == 1 {
		for key := range products {
			return matchFor(products, key)
		}
	}
	return nil
}

func displayOrKey(p internal.ProductPricing, key string) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return key
}

func matchFor(products map[string]internal.ProductPricing, key string) *Match {
	p := products[key]
	if p.DisplayName == "" {
		p.DisplayName = key
	}
	return &Match{Key: key, Product: p}
}

// SortedCompanies orders company names for settlement output: earlier
// deposit deadlines first, then the preferred ordering, then
// alphabetical for everything unlisted.
func SortedCompanies(cfg internal.PricingConfig) []string {
	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		sa, sb := deadlineScore(cfg[a].Deadline), deadlineScore(cfg[b].Deadline)
		if sa != sb {
			return sa < sb
		}
		pa, pb := preferredIndex(a), preferredIndex(b)
		if pa != pb {
			return pa < pb
		}
		return a < b
	})
	return names
}

func deadlineScore(deadline string) int {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return 9999
	}
	parts := strings.SplitN(deadline, ":", 2)
	if len(parts) != 2 {
		return 9999
	}
	var h, m int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &h, &m); err != nil {
		return 9999
	}
	return h*60 + m
}

func preferredIndex(name string) int {
	for i, p := range preferredOrder {
		if p == name {
			return i
		}
	}
	return len(preferredOrder)
}

// AddCompany inserts an empty company entry.
func AddCompany(cfg internal.PricingConfig, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := cfg[name]; ok {
		return fmt.Errorf("%w: %s", ErrCompanyExists, name)
	}
	cfg[name] = internal.CompanyConfig{Products: map[string]internal.ProductPricing{}}
	return nil
}

// RenameCompany moves a company entry to a new name. The rename is
// rejected before any mutation when the target already exists.
func RenameCompany(cfg internal.PricingConfig, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	entry, ok := cfg[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCompanyNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, ok := cfg[newName]; ok {
		return fmt.Errorf("%w: %s", ErrCompanyExists, newName)
	}
	delete(cfg, oldName)
	cfg[newName] = entry
	return nil
}

// DeleteCompany removes a company and its products.
func DeleteCompany(cfg internal.PricingConfig, name string) error {
	if _, ok := cfg[name]; !ok {
		return fmt.Errorf("%w: %s", ErrCompanyNotFound, name)
	}
	delete(cfg, name)
	return nil
}

// SetCompanyInfo updates the non-product fields of a company.
func SetCompanyInfo(cfg internal.PricingConfig, name string, info internal.CompanyConfig) error {
	entry, ok := cfg[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCompanyNotFound, name)
	}
	info.Products = entry.Products
	cfg[name] = info
	return nil
}

// AddProduct inserts a product under a company, rejecting duplicates.
func AddProduct(cfg internal.PricingConfig, company, key string, p internal.ProductPricing) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyName
	}
	entry, ok := cfg[company]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCompanyNotFound, company)
	}
	if entry.Products == nil {
		entry.Products = map[string]internal.ProductPricing{}
		cfg[company] = entry
	}
	if _, ok := entry.Products[key]; ok {
		return fmt.Errorf("%w: %s/%s", ErrProductExists, company, key)
	}
	entry.Products[key] = p
	return nil
}

// UpdateProduct replaces a product entry, optionally moving it to a new
// key. A key collision is rejected before any mutation.
func UpdateProduct(cfg internal.PricingConfig, company, key, newKey string, p internal.ProductPricing) error {
	entry, ok := cfg[company]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCompanyNotFound, company)
	}
	if _, ok := entry.Products[key]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrProductNotFound, company, key)
	}
	if newKey == "" {
		newKey = key
	}
	if newKey != key {
		if _, ok := entry.Products[newKey]; ok {
			return fmt.Errorf("%w: %s/%s", ErrProductExists, company, newKey)
		}
		delete(entry.Products, key)
	}
	entry.Products[newKey] = p
	return nil
}

// DeleteProduct removes a product from a company.
func DeleteProduct(cfg internal.PricingConfig, company, key string) error {
	entry, ok := cfg[company]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCompanyNotFound, company)
	}
	if _, ok := entry.Products[key]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrProductNotFound, company, key)
	}
	delete(entry.Products, key)
	return nil
}

// ExportJSON serializes the whole catalog.
func ExportJSON(cfg internal.PricingConfig) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// ImportJSON parses a wholesale catalog replacement.
func ImportJSON(data []byte) (internal.PricingConfig, error) {
	var cfg internal.PricingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogJSON, err)
	}
	if cfg == nil {
		return nil, ErrInvalidCatalogJSON
	}
	return cfg, nil
}
