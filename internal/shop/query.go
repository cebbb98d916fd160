package shop

import (
	"fmt"
	"strings"
)

// BuildQuery augments a search query with price and brand filter tokens.
// Both bounds give "price:MIN-MAX", a single bound gives "price>MIN" or
// "price<MAX"; brands render as a parenthesized OR clause in given order.
func BuildQuery(query string, minPrice, maxPrice *float64, brands []string) string {
	augmented := query

	switch {
	case minPrice != nil && maxPrice != nil:
		augmented += fmt.Sprintf(" price:%v-%v", *minPrice, *maxPrice)
	case minPrice != nil:
		augmented += fmt.Sprintf(" price>%v", *minPrice)
	case maxPrice != nil:
		augmented += fmt.Sprintf(" price<%v", *maxPrice)
	}

	if len(brands) > 0 {
		clauses := make([]string, 0, len(brands))
		for _, brand := range brands {
			clauses = append(clauses, "brand:"+brand)
		}
		augmented += fmt.Sprintf(" (%s)", strings.Join(clauses, " OR "))
	}

	return augmented
}
