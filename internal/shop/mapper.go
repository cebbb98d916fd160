package shop

import (
	"strconv"
	"strings"
)

// mapItem converts a provider item to the uniform product schema. Optional
// fields degrade to nil individually; a bad price never fails the record.
func mapItem(item Item) Product {
	product := Product{
		Title:    item.Title,
		Link:     item.Link,
		Currency: extractCurrency(item),
		Price:    extractPrice(item),
		Brand:    extractBrand(item),
	}

	product.ID = item.CacheID
	if product.ID == "" {
		product.ID = item.Link
	}

	if len(item.Pagemap.CSEImage) > 0 && item.Pagemap.CSEImage[0].Src != "" {
		src := item.Pagemap.CSEImage[0].Src
		product.Image = &src
	}
	if item.Snippet != "" {
		snippet := item.Snippet
		product.Description = &snippet
	}
	if item.DisplayLink != "" {
		source := item.DisplayLink
		product.Source = &source
	}

	return product
}

func mapItems(items []Item) []Product {
	products := make([]Product, 0, len(items))
	for _, item := range items {
		products = append(products, mapItem(item))
	}
	return products
}

func extractPrice(item Item) *float64 {
	if len(item.Pagemap.Offer) > 0 {
		if price := parsePrice(item.Pagemap.Offer[0].Price); price != nil {
			return price
		}
	}
	if len(item.Pagemap.Product) > 0 {
		if price := parsePrice(item.Pagemap.Product[0].Price); price != nil {
			return price
		}
	}
	return nil
}

// parsePrice strips currency symbols and thousands separators before
// conversion. Anything unparseable yields nil.
func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}

	cleaned := strings.TrimSpace(raw)
	for _, symbol := range []string{"$", "€", "£", "¥", ","} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

func extractCurrency(item Item) string {
	if len(item.Pagemap.Offer) > 0 && item.Pagemap.Offer[0].PriceCurrency != "" {
		return item.Pagemap.Offer[0].PriceCurrency
	}
	if len(item.Pagemap.Product) > 0 && item.Pagemap.Product[0].PriceCurrency != "" {
		return item.Pagemap.Product[0].PriceCurrency
	}
	return "USD"
}

// extractBrand reads the brand from product metadata only; titles and
// snippets are never mined for brand names.
func extractBrand(item Item) *string {
	if len(item.Pagemap.Product) > 0 && item.Pagemap.Product[0].Brand != "" {
		brand := item.Pagemap.Product[0].Brand
		return &brand
	}
	return nil
}
