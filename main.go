package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"booth-extractor/activation"
	"booth-extractor/config"
	"booth-extractor/fetcher"
	"booth-extractor/models"
	"booth-extractor/notify"
	"booth-extractor/output"
	"booth-extractor/parser"
	"booth-extractor/scraper"
	"booth-extractor/sheets"
)

const (
	actionAll     = "all"
	actionCurrent = "current"
	actionItem    = "item"
)

func main() {
	pageURL := flag.String("url", config.DefaultBaseURL+activation.SectionLibrary, "Booth page the extractor runs on (library list or item page)")
	action := flag.String("action", "", "Extraction to run: all, current or item (default depends on the page)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	out := flag.String("out", "clipboard", "Where to put the JSON: clipboard, - for stdout, or a file path")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL to also write the items to")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *spreadsheetURL != "" {
		cfg.Output.SpreadsheetURL = *spreadsheetURL
	}
	if *credentialsPath != "" {
		cfg.Output.CredentialsPath = *credentialsPath
	}

	mode := activation.Match(*pageURL)
	if mode == activation.Inert {
		log.Printf("Extractor is inactive on %s\n", *pageURL)
		return
	}

	selected, err := resolveAction(mode, *action)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	publisher := buildPublisher(ctx, cfg, *out, *pageURL)

	records, scope, err := run(ctx, cfg, selected, *pageURL)
	if err != nil {
		log.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := publisher.Publish(ctx, scope, records); err != nil {
		os.Exit(1)
	}
}

// resolveAction picks the control to "click" for the page mode
func resolveAction(mode activation.Mode, action string) (string, error) {
	switch mode {
	case activation.List:
		switch action {
		case "":
			return actionAll, nil
		case actionAll, actionCurrent:
			return action, nil
		}
		return "", fmt.Errorf("action %q is not available on list pages (use all or current)", action)
	case activation.Item:
		if action == "" || action == actionItem {
			return actionItem, nil
		}
		return "", fmt.Errorf("action %q is not available on item pages (use item)", action)
	}
	return "", fmt.Errorf("no action available on %s pages", mode)
}

// run performs the extraction for the selected action
func run(ctx context.Context, cfg *config.Config, action, pageURL string) ([]models.ItemRecord, output.Scope, error) {
	p := parser.NewParser(cfg.Selectors)
	httpFetcher := fetcher.NewCollyFetcher(fetcher.CollyOptions{
		UserAgent: cfg.Site.UserAgent,
		Cookie:    cfg.Site.Cookie,
		Timeout:   cfg.Scraper.RequestTimeout,
	})

	if action == actionItem {
		record, err := extractItem(ctx, cfg, httpFetcher, p, pageURL)
		if err != nil {
			return nil, output.ScopeSingleItem, err
		}
		return []models.ItemRecord{*record}, output.ScopeSingleItem, nil
	}

	baseURL := activation.Origin(pageURL)
	if baseURL == "" {
		baseURL = cfg.Site.BaseURL
	}

	status := scraper.NewStatus(func(enabled bool, label string) {
		log.Printf("[%s] %s\n", enabledText(enabled), label)
	})
	extractor := scraper.NewExtractor(httpFetcher, p, scraper.Options{
		BaseURL: baseURL,
		Section: activation.SectionPath(pageURL),
		Delay:   cfg.Scraper.PageDelay,
		Status:  status,
	})

	if action == actionCurrent {
		records, err := extractor.ExtractCurrentPage(ctx)
		return records, output.ScopeCurrentPage, err
	}

	records, err := extractor.ExtractAllPages(ctx)
	if err != nil {
		return nil, output.ScopeAllPages, err
	}
	return records, output.ScopeAllPages, nil
}

// extractItem loads the product page, rendered by a browser when configured
func extractItem(ctx context.Context, cfg *config.Config, httpFetcher fetcher.Fetcher, p *parser.Parser, pageURL string) (*models.ItemRecord, error) {
	f := httpFetcher
	if cfg.Browser.Enabled {
		rodFetcher, err := fetcher.NewRodFetcher(cfg.Browser.Headless, cfg.Browser.Bin)
		if err != nil {
			return nil, fmt.Errorf("failed to create browser: %w", err)
		}
		defer func() {
			if err := rodFetcher.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}()
		f = rodFetcher
	}

	record, err := scraper.ExtractItem(ctx, f, p, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract item information: %w", err)
	}
	return record, nil
}

// buildPublisher wires the primary sink plus the optional Sheets and Telegram outputs
func buildPublisher(ctx context.Context, cfg *config.Config, out, pageURL string) *output.Publisher {
	publisher := &output.Publisher{
		Notifiers: []notify.Notifier{notify.NewConsoleNotifier(os.Stderr)},
	}

	switch out {
	case "clipboard", "":
		publisher.Primary = output.NewClipboardSink()
	case "-":
		publisher.Primary = output.NewWriterSink("stdout", os.Stdout)
	default:
		publisher.Primary = output.NewFileSink(out)
	}

	if cfg.Output.SpreadsheetURL != "" {
		spreadsheetID := sheets.ExtractSpreadsheetID(cfg.Output.SpreadsheetURL)
		if spreadsheetID == "" {
			log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", cfg.Output.SpreadsheetURL)
		} else if writer, err := sheets.NewWriter(ctx, spreadsheetID, cfg.Output.CredentialsPath); err != nil {
			log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		} else {
			publisher.Extra = append(publisher.Extra, output.NewSheetsSink(writer, pageURL))
		}
	}

	if cfg.Telegram.Token != "" {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("Warning: Failed to initialize Telegram notifier: %v\n", err)
		} else {
			publisher.Notifiers = append(publisher.Notifiers, tg)
		}
	}

	return publisher
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err != nil {
		log.Println("Config file not found. Using default configuration.")
		cfg := config.GetDefaultConfig()
		cfg.ApplyEnv()
		return cfg
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Error: Failed to load config file: %v\n", err)
	}
	return cfg
}

func enabledText(enabled bool) string {
	if enabled {
		return "ready"
	}
	return "busy"
}
