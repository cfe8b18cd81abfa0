package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/windsor-dist/storefront-api/internal/common"
)

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// ListParams captures filters for product listing.
type ListParams struct {
	Query        string
	Category     Category
	MinPrice     *int64
	MaxPrice     *int64
	Configurable *bool
	Sort         string
	Page         int
	Limit        int
}

// ListResult contains list data and pagination metadata.
type ListResult struct {
	Items []ListItem
	Total int
	Page  int
	Limit int
}

// Service serves the in-memory product catalog with optional Redis caching
// of rendered payloads.
type Service struct {
	products     []Product
	byID         map[string]Product
	cache        *Cache
	log          zerolog.Logger
	defaultLimit int
	maxLimit     int
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Products     []Product
	Cache        *Cache
	Logger       zerolog.Logger
	DefaultLimit int
	MaxLimit     int
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if len(cfg.Products) == 0 {
		return nil, errors.New("catalog: products are required")
	}
	defaultLimit := cfg.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	maxLimit := cfg.MaxLimit
	if maxLimit < defaultLimit {
		maxLimit = 100
	}
	byID := make(map[string]Product, len(cfg.Products))
	for _, p := range cfg.Products {
		byID[p.ID] = p
	}
	return &Service{
		products:     cfg.Products,
		byID:         byID,
		cache:        cfg.Cache,
		log:          cfg.Logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}, nil
}

// Product returns a catalog record by id.
func (s *Service) Product(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Detail returns the full product payload, cached when possible.
func (s *Service) Detail(ctx context.Context, id string) (Product, error) {
	key := detailKey(id)
	var cached Product
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache read")
	} else if hit {
		return cached, nil
	}
	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	if err := s.cache.SetJSON(ctx, key, p); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache write")
	}
	return p, nil
}

// List filters, sorts, and paginates the catalog.
func (s *Service) List(ctx context.Context, params ListParams) (ListResult, error) {
	params = s.normalize(params)
	key := listKey(params)
	var cached ListResult
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache read")
	} else if hit {
		return cached, nil
	}

	matched := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if !matches(p, params) {
			continue
		}
		matched = append(matched, p)
	}
	sortProducts(matched, params.Sort)

	result := ListResult{Total: len(matched), Page: params.Page, Limit: params.Limit}
	start := (params.Page - 1) * params.Limit
	if start < len(matched) {
		end := start + params.Limit
		if end > len(matched) {
			end = len(matched)
		}
		for _, p := range matched[start:end] {
			result.Items = append(result.Items, p.listItem())
		}
	}

	if err := s.cache.SetJSON(ctx, key, result); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache write")
	}
	return result, nil
}

// ParseListParams extracts list filters from query values.
func (s *Service) ParseListParams(values url.Values) (ListParams, error) {
	params := ListParams{
		Query:    strings.TrimSpace(values.Get("q")),
		Category: Category(strings.TrimSpace(values.Get("category"))),
		Sort:     strings.TrimSpace(values.Get("sort")),
	}
	if raw := values.Get("minPrice"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return ListParams{}, common.NewAppError("BAD_REQUEST", "invalid minPrice", http.StatusBadRequest, err)
		}
		params.MinPrice = &v
	}
	if raw := values.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return ListParams{}, common.NewAppError("BAD_REQUEST", "invalid maxPrice", http.StatusBadRequest, err)
		}
		params.MaxPrice = &v
	}
	if raw := values.Get("configurable"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return ListParams{}, common.NewAppError("BAD_REQUEST", "invalid configurable flag", http.StatusBadRequest, err)
		}
		params.Configurable = &v
	}
	if raw := values.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			params.Page = v
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			params.Limit = v
		}
	}
	return params, nil
}

func (s *Service) normalize(p ListParams) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = s.defaultLimit
	}
	if p.Limit > s.maxLimit {
		p.Limit = s.maxLimit
	}
	switch p.Sort {
	case "price_asc", "price_desc", "rating":
	default:
		p.Sort = ""
	}
	return p
}

func matches(p Product, params ListParams) bool {
	if params.Category != "" && p.Category != params.Category {
		return false
	}
	if params.MinPrice != nil && p.BasePrice < *params.MinPrice {
		return false
	}
	if params.MaxPrice != nil && p.BasePrice > *params.MaxPrice {
		return false
	}
	if params.Configurable != nil && p.Configurable != *params.Configurable {
		return false
	}
	if params.Query != "" {
		q := strings.ToLower(params.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.NameTh), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			return false
		}
	}
	return true
}

func sortProducts(items []Product, by string) {
	switch by {
	case "price_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].BasePrice < items[j].BasePrice })
	case "price_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].BasePrice > items[j].BasePrice })
	case "rating":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	}
}
