package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// schemaVersion segments the key namespace. Bump it when the classification
// vocabularies in internal/fashion change so stale derivations cannot be
// served from cache.
const schemaVersion = "v1"

// SearchKey composes a canonical cache key for a product search. Identical
// logical requests always yield the identical key: absent price bounds render
// as empty fields and the brand list is sorted case-insensitively before
// composition, so caller-supplied brand order cannot split the cache.
func SearchKey(query string, maxResults int, minPrice, maxPrice *float64, brands []string) string {
	sorted := make([]string, len(brands))
	copy(sorted, brands)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	return fmt.Sprintf("stylelens:%s:search:%s:%d:%s:%s:%s",
		schemaVersion, query, maxResults,
		formatPrice(minPrice), formatPrice(maxPrice),
		strings.Join(sorted, ","))
}

// DetailKey composes the cache key for a single product lookup.
func DetailKey(productID string) string {
	return fmt.Sprintf("stylelens:%s:product:%s", schemaVersion, productID)
}

func formatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}
