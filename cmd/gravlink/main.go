package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/lemconn/gravlink"
	"github.com/lemconn/gravlink/config"
	"github.com/lemconn/gravlink/logger"
	"github.com/lemconn/gravlink/types"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	symbol := flag.String("symbol", "", "print a single symbol instead of the full ticker table")
	showBalance := flag.Bool("balance", false, "fetch account balances (requires credentials)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	log := logger.GetLogger()
	if cfg.Logging.File != "" {
		log.SetOutputFile(cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	}

	apiKey, secretKey := config.Credentials()
	ex, err := gravlink.NewExchange(cfg.Exchange.Name,
		gravlink.WithAPIKey(apiKey),
		gravlink.WithSecretKey(secretKey),
		gravlink.WithBaseURL(cfg.Exchange.BaseURL),
		gravlink.WithProxy(cfg.Exchange.Proxy),
		gravlink.WithTimeout(cfg.Exchange.Timeout),
		gravlink.WithRateLimit(cfg.Exchange.RateLimit),
		gravlink.WithDebug(cfg.Exchange.Debug),
	)
	if err != nil {
		log.WithField("exchange", cfg.Exchange.Name).Fatalf("create exchange: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := ex.LoadMarkets(ctx, false); err != nil {
		log.Fatalf("load markets: %v", err)
	}

	if *symbol != "" {
		ticker, err := ex.FetchTicker(ctx, *symbol)
		if err != nil {
			log.Fatalf("fetch ticker: %v", err)
		}
		printTicker(ticker)
	} else {
		tickers, err := ex.FetchTickers(ctx)
		if err != nil {
			log.Fatalf("fetch tickers: %v", err)
		}
		symbols := make([]string, 0, len(tickers))
		for s := range tickers {
			symbols = append(symbols, s)
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			printTicker(tickers[s])
		}
	}

	if *showBalance {
		if apiKey == "" {
			log.Fatal("balance requires GRAVIEX_API_KEY / GRAVIEX_SECRET_KEY")
		}
		balances, err := ex.FetchBalance(ctx)
		if err != nil {
			log.Fatalf("fetch balance: %v", err)
		}
		printBalances(balances)
	}
}

func printTicker(t *types.Ticker) {
	change := aurora.White(t.Change.String())
	if t.Change.Valid && t.Change.Float64 > 0 {
		change = aurora.Green(t.Change.String())
	} else if t.Change.Valid && t.Change.Float64 < 0 {
		change = aurora.Red(t.Change.String())
	}
	fmt.Printf("%-14s last=%-14s bid=%-14s ask=%-14s change=%s\n",
		aurora.Bold(t.Symbol), t.Last.String(), t.Bid.String(), t.Ask.String(), change)
}

func printBalances(balances types.Balances) {
	codes := make([]string, 0, len(balances.Accounts))
	for code := range balances.Accounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		b := balances.Accounts[code]
		if b.Total.Valid && b.Total.Float64 == 0 {
			continue
		}
		fmt.Printf("%-8s free=%-16s used=%-16s total=%s\n",
			aurora.Cyan(code), b.Free.String(), b.Used.String(), b.Total.String())
	}
}
