package shop

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/stylelens/stylelens/internal/cache"
)

// Service fronts the shopping provider with the result cache. Cache errors
// are best-effort: any failure falls through to the provider. Provider
// failures resolve to an empty result list, never an error, so callers
// cannot distinguish "no products" from "provider unavailable".
type Service struct {
	provider Provider
	cache    cache.Cache
	ttl      time.Duration
	timeout  time.Duration
	group    singleflight.Group
}

type ServiceConfig struct {
	TTL     time.Duration
	Timeout time.Duration
}

func NewService(provider Provider, c cache.Cache, cfg ServiceConfig) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = cache.DefaultTTL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Service{
		provider: provider,
		cache:    c,
		ttl:      cfg.TTL,
		timeout:  cfg.Timeout,
	}
}

// SearchProducts searches for products matching the query with optional
// price bounds and brand filters. A non-expired cache entry short-circuits
// the provider entirely; concurrent misses on the same key share one
// provider call.
func (s *Service) SearchProducts(ctx context.Context, query string, maxResults int, minPrice, maxPrice *float64, brands []string) []Product {
	key := cache.SearchKey(query, maxResults, minPrice, maxPrice, brands)

	if products, ok := s.cachedProducts(ctx, key); ok {
		log.Printf("Retrieved cached shopping results for query: %s", query)
		return products
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.searchUpstream(ctx, key, query, maxResults, minPrice, maxPrice, brands), nil
	})
	if err != nil {
		return []Product{}
	}
	return result.([]Product)
}

func (s *Service) searchUpstream(ctx context.Context, key, query string, maxResults int, minPrice, maxPrice *float64, brands []string) []Product {
	searchQuery := BuildQuery(query, minPrice, maxPrice, brands)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.provider.Search(callCtx, searchQuery, maxResults)
	if err != nil {
		log.Printf("Failed to search products: %v", err)
		return []Product{}
	}

	products := mapItems(items)
	log.Printf("Found %d products for query: %s", len(products), query)

	if err := s.cache.Set(ctx, key, products, s.ttl); err != nil {
		log.Printf("Failed to cache shopping results: %v", err)
	}

	return products
}

// ProductDetails looks up a single product by identifier, cache-fronted
// under the detail namespace. Returns nil when nothing matches.
func (s *Service) ProductDetails(ctx context.Context, productID string) *Product {
	key := cache.DetailKey(productID)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var product Product
		if err := json.Unmarshal([]byte(raw), &product); err == nil {
			log.Printf("Retrieved cached product details for ID: %s", productID)
			return &product
		}
		log.Printf("Discarding undecodable cached product details for ID: %s", productID)
	} else if err != cache.ErrCacheMiss {
		log.Printf("Cache error on product details lookup: %v", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.provider.Search(callCtx, productID, 1)
	if err != nil {
		log.Printf("Failed to fetch product details: %v", err)
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	product := mapItem(items[0])
	if err := s.cache.Set(ctx, key, product, s.ttl); err != nil {
		log.Printf("Failed to cache product details: %v", err)
	}

	return &product
}

func (s *Service) cachedProducts(ctx context.Context, key string) ([]Product, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			log.Printf("Cache error on product search lookup: %v", err)
		}
		return nil, false
	}

	var products []Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Printf("Discarding undecodable cached search results: %v", err)
		return nil, false
	}
	return products, true
}
