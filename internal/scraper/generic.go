package scraper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// GenericScraper pulls price and title out of any product page that
// exposes them through meta tags, microdata, JSON-LD or the usual
// price CSS classes.
type GenericScraper struct {
	client *http.Client
}

func NewGenericScraper() *GenericScraper {
	return &GenericScraper{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// CanHandle accepts any absolute http(s) URL
func (g *GenericScraper) CanHandle(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func (g *GenericScraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// Retailers block obvious bots
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

var jsonLDPrice = regexp.MustCompile(`"price"\s*:\s*"?([0-9][0-9.,]*)"?`)

// ScrapePrice extracts the current price from a product page
func (g *GenericScraper) ScrapePrice(ctx context.Context, url string) (float64, error) {
	doc, err := g.fetch(ctx, url)
	if err != nil {
		return 0, err
	}

	var priceText string

	// Meta tags first, they are the least ambiguous
	metaSelectors := []string{
		"meta[property='product:price:amount']",
		"meta[property='og:price:amount']",
		"meta[itemprop='price']",
	}
	for _, selector := range metaSelectors {
		doc.Find(selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
			priceText = s.AttrOr("content", "")
			return priceText == ""
		})
		if priceText != "" {
			break
		}
	}

	// Microdata and common price classes
	if priceText == "" {
		textSelectors := []string{
			"[itemprop='price']",
			"[data-testid='price']",
			".a-price .a-offscreen",
			".price",
			".product-price",
		}
		for _, selector := range textSelectors {
			doc.Find(selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
				text := strings.TrimSpace(s.AttrOr("content", s.Text()))
				if text != "" {
					priceText = text
				}
				return priceText == ""
			})
			if priceText != "" {
				break
			}
		}
	}

	// JSON-LD offers as a last resort
	if priceText == "" {
		doc.Find("script[type='application/ld+json']").EachWithBreak(func(i int, s *goquery.Selection) bool {
			if matches := jsonLDPrice.FindStringSubmatch(s.Text()); len(matches) > 1 {
				priceText = matches[1]
			}
			return priceText == ""
		})
	}

	if priceText == "" {
		return 0, fmt.Errorf("no price found on page")
	}

	price, err := parsePrice(priceText)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", priceText, err)
	}
	return price, nil
}

// ScrapeName extracts the product title from a page
func (g *GenericScraper) ScrapeName(ctx context.Context, url string) (string, error) {
	doc, err := g.fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if name := doc.Find("meta[property='og:title']").AttrOr("content", ""); name != "" {
		return strings.TrimSpace(name), nil
	}
	if name := strings.TrimSpace(doc.Find("h1").First().Text()); name != "" {
		return name, nil
	}
	if name := strings.TrimSpace(doc.Find("title").First().Text()); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("no product name found on page")
}

// parsePrice normalizes "1,199.00", "1.199,00", "$1199" and friends
func parsePrice(text string) (float64, error) {
	cleaned := regexp.MustCompile(`[^0-9.,]`).ReplaceAllString(text, "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty after cleanup")
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	if lastComma > lastDot {
		// Comma is the decimal separator
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	return strconv.ParseFloat(cleaned, 64)
}
