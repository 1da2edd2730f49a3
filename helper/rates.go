package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Daily quote and exchange rates shown on the home page. Both come from
// third-party APIs, so responses are cached in Redis and refreshed once a
// day; the home page degrades to nulls when neither cache nor API answers.

type DailyQuote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type ExchangeRates struct {
	EUR       *float64 `json:"EUR"`
	GBP       *float64 `json:"GBP"`
	BYN       *float64 `json:"BYN"`
	RUB       *float64 `json:"RUB"`
	Timestamp string   `json:"timestamp"`
}

const (
	quoteCacheKey = "home:daily_quote"
	ratesCacheKey = "home:exchange_rates"
	cacheTTL      = 24 * time.Hour
)

var rateScheduler gocron.Scheduler

func FetchDailyQuote() (*DailyQuote, error) {
	resp, err := http.Get("https://favqs.com/api/qotd")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned %d", resp.StatusCode)
	}

	var payload struct {
		Quote struct {
			Body   string `json:"body"`
			Author string `json:"author"`
		} `json:"quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &DailyQuote{Quote: payload.Quote.Body, Author: payload.Quote.Author}, nil
}

func FetchExchangeRates(baseCurrency string) (*ExchangeRates, error) {
	apiKey := os.Getenv("EXCHANGE_RATE_API_KEY")
	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/%s", apiKey, baseCurrency)

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Result          string              `json:"result"`
		ConversionRates map[string]*float64 `json:"conversion_rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK || payload.Result != "success" {
		return nil, fmt.Errorf("exchange rate API returned %d (%s)", resp.StatusCode, payload.Result)
	}

	return &ExchangeRates{
		EUR:       payload.ConversionRates["EUR"],
		GBP:       payload.ConversionRates["GBP"],
		BYN:       payload.ConversionRates["BYN"],
		RUB:       payload.ConversionRates["RUB"],
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}, nil
}

// CachedDailyQuote reads the cache first and falls back to the API.
func CachedDailyQuote(ctx context.Context) *DailyQuote {
	if raw, err := Redis.Get(ctx, quoteCacheKey).Result(); err == nil {
		var quote DailyQuote
		if json.Unmarshal([]byte(raw), &quote) == nil {
			return &quote
		}
	}
	quote, err := FetchDailyQuote()
	if err != nil {
		log.Printf("daily quote unavailable: %v", err)
		return nil
	}
	storeCache(ctx, quoteCacheKey, quote)
	return quote
}

func CachedExchangeRates(ctx context.Context) *ExchangeRates {
	if raw, err := Redis.Get(ctx, ratesCacheKey).Result(); err == nil {
		var rates ExchangeRates
		if json.Unmarshal([]byte(raw), &rates) == nil {
			return &rates
		}
	}
	rates, err := FetchExchangeRates("USD")
	if err != nil {
		log.Printf("exchange rates unavailable: %v", err)
		return nil
	}
	storeCache(ctx, ratesCacheKey, rates)
	return rates
}

func storeCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Redis.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		log.Printf("failed to cache %s: %v", key, err)
	}
}

func refreshHomeCaches() {
	ctx := context.Background()
	if quote, err := FetchDailyQuote(); err == nil {
		storeCache(ctx, quoteCacheKey, quote)
	} else {
		log.Printf("quote refresh failed: %v", err)
	}
	if rates, err := FetchExchangeRates("USD"); err == nil {
		storeCache(ctx, ratesCacheKey, rates)
	} else {
		log.Printf("rates refresh failed: %v", err)
	}
}

// StartRateScheduler refreshes the home page caches shortly after midnight.
func StartRateScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	rateScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(refreshHomeCaches),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("home cache scheduler started (00:05)")
}

func StopRateScheduler() {
	if rateScheduler != nil {
		_ = rateScheduler.Shutdown()
	}
}
