package shop

import "context"

// Provider returns raw shopping search items for a text query. The wire
// schema is owned by the provider; Item mirrors the fields this core reads.
type Provider interface {
	Search(ctx context.Context, query string, num int) ([]Item, error)
}

// Item is a provider-native search result record.
type Item struct {
	CacheID     string  `json:"cacheId"`
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Snippet     string  `json:"snippet"`
	DisplayLink string  `json:"displayLink"`
	Pagemap     Pagemap `json:"pagemap"`
}

type Pagemap struct {
	CSEImage []CSEImage     `json:"cse_image"`
	Offer    []Offer        `json:"offer"`
	Product  []PagemapEntry `json:"product"`
}

type CSEImage struct {
	Src string `json:"src"`
}

type Offer struct {
	Price         string `json:"price"`
	PriceCurrency string `json:"pricecurrency"`
}

type PagemapEntry struct {
	Price         string `json:"price"`
	PriceCurrency string `json:"pricecurrency"`
	Brand         string `json:"brand"`
}

// Product is the uniform result schema. Optional fields are nil when the
// provider record lacks them; Currency falls back to "USD".
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	Source      *string  `json:"source"`
}
