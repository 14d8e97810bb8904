package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"pricex-backend/internal/scraper"
	"pricex-backend/pkg/logger"

	"github.com/joho/godotenv"
)

// One-shot scrape of a product page, handy for checking selectors
// against a retailer without running the full monitor.
func main() {
	_ = godotenv.Load()
	logger.Init("pricex-scrape", true)

	url := flag.String("url", "", "product page URL to scrape")
	flag.Parse()

	if *url == "" {
		fmt.Fprintln(os.Stderr, "usage: scrape -url <product page URL>")
		os.Exit(2)
	}

	registry := scraper.NewRegistry()
	sc := registry.Find(*url)
	if sc == nil {
		logger.Log.Fatal().Str("url", *url).Msg("no scraper can handle this URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	name, err := sc.ScrapeName(ctx, *url)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("could not extract product name")
		name = "(unknown)"
	}

	price, err := sc.ScrapePrice(ctx, *url)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("could not extract price")
	}

	fmt.Printf("%s: %.2f\n", name, price)
}
