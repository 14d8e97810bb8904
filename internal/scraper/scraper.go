package scraper

import "context"

// Scraper extracts offer data from a retailer's product page
type Scraper interface {
	CanHandle(url string) bool
	ScrapePrice(ctx context.Context, url string) (float64, error)
	ScrapeName(ctx context.Context, url string) (string, error)
}

// Registry keeps the available scrapers and picks one per URL
type Registry struct {
	scrapers []Scraper
}

// NewRegistry builds a registry. With no arguments it registers the
// generic HTML scraper only.
func NewRegistry(scrapers ...Scraper) *Registry {
	if len(scrapers) == 0 {
		scrapers = []Scraper{NewGenericScraper()}
	}
	return &Registry{scrapers: scrapers}
}

// Find returns the first scraper that can handle the URL, or nil
func (r *Registry) Find(url string) Scraper {
	for _, s := range r.scrapers {
		if s.CanHandle(url) {
			return s
		}
	}
	return nil
}
