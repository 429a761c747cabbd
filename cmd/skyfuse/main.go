// Command skyfuse is a terminal UI for visualizing multi-messenger
// astronomical transients on a rotating celestial globe.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/skyfuse/skyfuse/internal/feed"
	"github.com/skyfuse/skyfuse/internal/logging"
	"github.com/skyfuse/skyfuse/internal/scene"
	"github.com/skyfuse/skyfuse/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	snapshotPath  string
	watchInterval time.Duration
	demoMode      bool
	mockMode      bool
)

const (
	minTimeout = 1 * time.Second
	maxTimeout = 2 * time.Minute
)

func main() {
	feedURL := flag.String("feed-url", "", "Fetch a pre-aggregated catalog from this URL instead of the live archives")
	timeout := flag.Duration("timeout", feed.DefaultTimeout, "HTTP timeout for catalog fetches")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON catalog to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat fetch at interval (e.g., 30s)")
	flag.BoolVar(&demoMode, "demo", false, "Use the built-in demo catalog, no network")
	flag.BoolVar(&mockMode, "mock", false, "Use mock optical events only, no network")
	flag.Parse()

	if *timeout < minTimeout {
		*timeout = minTimeout
	} else if *timeout > maxTimeout {
		*timeout = maxTimeout
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	load := newLoader(*feedURL, *timeout, logger)

	headless := summaryMode || snapshotPath != ""
	if headless {
		runHeadless(ctx, load)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Not a terminal; use -summary for headless output")
		os.Exit(1)
	}

	model := ui.New()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Fetch in the background so the globe starts rotating immediately.
	go func() {
		start := time.Now()
		events, pairs, err := load(ctx)
		if err != nil {
			logger.Error("Catalog fetch failed: %v", err)
			p.Send(ui.ErrorMsg{Error: err})
			return
		}
		logger.Debug("Catalog loaded: %d events, %d correlations in %v",
			len(events), len(pairs), time.Since(start))
		p.Send(ui.DataLoadedMsg{
			Events:        events,
			Correlations:  pairs,
			FetchDuration: time.Since(start),
		})
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loader produces the event catalog and its correlation pairs.
type loader func(ctx context.Context) ([]scene.EventRecord, [][2]string, error)

func newLoader(feedURL string, timeout time.Duration, logger *logging.Logger) loader {
	switch {
	case demoMode:
		return func(context.Context) ([]scene.EventRecord, [][2]string, error) {
			events, pairs := feed.Demo()
			return events, pairs, nil
		}

	case mockMode:
		return func(context.Context) ([]scene.EventRecord, [][2]string, error) {
			events := feed.MockEvents(feed.MockEventCount)
			return events, feed.Correlate(events), nil
		}

	case feedURL != "":
		fetcher := feed.NewFetcher(feedURL, feed.WithTimeout(timeout))
		return func(ctx context.Context) ([]scene.EventRecord, [][2]string, error) {
			result := fetcher.Fetch(ctx)
			if result.Error != nil {
				return nil, nil, result.Error
			}
			return result.Payload.Records(), result.Payload.Correlations, nil
		}

	default:
		client := &http.Client{Timeout: timeout}
		return func(ctx context.Context) ([]scene.EventRecord, [][2]string, error) {
			events, pairs := feed.Live(ctx, client, logger)
			return events, pairs, nil
		}
	}
}

// runHeadless handles summary and snapshot output without starting the TUI.
func runHeadless(ctx context.Context, load loader) {
	outputOnce := func() error {
		events, pairs, err := load(ctx)
		if err != nil {
			return err
		}
		fetched := time.Now()

		if snapshotPath != "" {
			export := feed.ExportCatalog(events, pairs, fetched)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			feed.WriteSummaryTable(os.Stdout, events, pairs, fetched)
		}

		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
