package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/sharkfin/internal/journal"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"
)

const maxRecentCalls = 8

// Config holds TUI configuration options
type Config struct {
	RefreshRate time.Duration // How often to refetch the charts
	Limit       int           // Songs per chart
}

// DefaultConfig returns the default TUI configuration
func DefaultConfig() Config {
	return Config{
		RefreshRate: 5 * time.Minute,
		Limit:       grooveshark.DefaultLimit,
	}
}

// ChartSource fetches the popularity charts. *grooveshark.CatalogService
// satisfies it.
type ChartSource interface {
	PopularSongsToday(ctx context.Context, opts ...grooveshark.ListOption) (json.RawMessage, error)
	PopularSongsMonth(ctx context.Context, opts ...grooveshark.ListOption) (json.RawMessage, error)
}

// CallSource returns the newest journaled calls
type CallSource func(ctx context.Context, limit int) ([]journal.Entry, error)

// App is the TUI dashboard for the popularity charts
type App struct {
	app    *tview.Application
	today  *tview.TextView
	month  *tview.TextView
	calls  *tview.TextView
	status *tview.TextView

	// Configuration
	config Config

	source ChartSource
	recent CallSource

	// Mutex protects state written by the poller and read by redraws
	mu sync.Mutex

	// Current state (guarded by mu)
	todaySongs  []grooveshark.Song
	monthSongs  []grooveshark.Song
	recentCalls []journal.Entry
	lastErr     error
	lastUpdated time.Time

	// Last-rendered content for change detection
	lastToday  string
	lastMonth  string
	lastCalls  string
	lastStatus string

	refreshNow chan struct{}

	// Context cancel function
	cancelFunc context.CancelFunc
}

// New creates a new dashboard with default config
func New(source ChartSource) *App {
	return NewWithConfig(source, DefaultConfig())
}

// NewWithConfig creates a new dashboard with the given config
func NewWithConfig(source ChartSource, cfg Config) *App {
	a := &App{
		app:        tview.NewApplication(),
		config:     cfg,
		source:     source,
		refreshNow: make(chan struct{}, 1),
	}
	a.setupUI()
	return a
}

// SetCallSource enables the recent calls panel
func (a *App) SetCallSource(recent CallSource) {
	a.recent = recent
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.today = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.today.SetBorder(true).
		SetTitle(" Popular Today ").
		SetTitleAlign(tview.AlignLeft)

	a.month = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.month.SetBorder(true).
		SetTitle(" Popular This Month ").
		SetTitleAlign(tview.AlignLeft)

	a.calls = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.calls.SetBorder(true).
		SetTitle(" Recent Calls ").
		SetTitleAlign(tview.AlignLeft)

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]q:quit  r:refresh[-]")

	// Top row: today | month
	// Middle row: recent calls
	// Footer: status bar
	charts := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.today, 0, 1, false).
		AddItem(a.month, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(charts, 0, 3, false).
		AddItem(a.calls, maxRecentCalls+2, 1, false).
		AddItem(a.status, 1, 1, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true)
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		a.Stop()
		return nil
	}
	switch event.Rune() {
	case 'q', 'Q':
		a.Stop()
		return nil
	case 'r', 'R':
		a.requestRefresh()
		return nil
	}
	return event
}

// requestRefresh asks the poller for an immediate fetch
func (a *App) requestRefresh() {
	select {
	case a.refreshNow <- struct{}{}:
	default:
	}
}

// Run starts the dashboard and blocks until it exits
func (a *App) Run(ctx context.Context) error {
	ctx, a.cancelFunc = context.WithCancel(ctx)
	defer a.cancelFunc()

	go a.poll(ctx)

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// poll fetches on start, on every tick and on request. It is the only
// source of redraws.
func (a *App) poll(ctx context.Context) {
	refreshRate := a.config.RefreshRate
	if refreshRate <= 0 {
		refreshRate = DefaultConfig().RefreshRate
	}
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	// Redraw the status line once a second so the age stays current
	clock := time.NewTicker(time.Second)
	defer clock.Stop()

	a.update(ctx)
	for {
		select {
		case <-ctx.Done():
			a.app.Stop()
			return
		case <-ticker.C:
			a.update(ctx)
		case <-a.refreshNow:
			a.update(ctx)
		case <-clock.C:
			a.redraw()
		}
	}
}

// update refetches and redraws
func (a *App) update(ctx context.Context) {
	a.fetch(ctx)
	a.redraw()
}

// fetch loads both charts concurrently along with the recent calls
func (a *App) fetch(ctx context.Context) {
	var today, month grooveshark.SongList

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := a.source.PopularSongsToday(gctx, grooveshark.WithLimit(a.config.Limit))
		if err != nil {
			return err
		}
		return grooveshark.DecodeResult(raw, &today)
	})
	g.Go(func() error {
		raw, err := a.source.PopularSongsMonth(gctx, grooveshark.WithLimit(a.config.Limit))
		if err != nil {
			return err
		}
		return grooveshark.DecodeResult(raw, &month)
	})
	err := g.Wait()

	// Calls are read after the fetch so the panel includes it
	var calls []journal.Entry
	if a.recent != nil {
		calls, _ = a.recent(ctx, maxRecentCalls)
	}

	a.mu.Lock()
	a.lastErr = err
	if err == nil {
		a.todaySongs = today.Songs
		a.monthSongs = month.Songs
		a.lastUpdated = time.Now()
	}
	a.recentCalls = calls
	a.mu.Unlock()
}

// redraw updates all UI components
func (a *App) redraw() {
	a.app.QueueUpdateDraw(func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		setIfChanged(a.today, &a.lastToday, formatChart(a.todaySongs))
		setIfChanged(a.month, &a.lastMonth, formatChart(a.monthSongs))
		setIfChanged(a.calls, &a.lastCalls, formatCalls(a.recentCalls, a.recent != nil))
		setIfChanged(a.status, &a.lastStatus, formatStatus(a.lastUpdated, a.lastErr, time.Now()))
	})
}

// setIfChanged avoids resetting text views whose content is unchanged
func setIfChanged(view *tview.TextView, last *string, text string) {
	if text != *last {
		*last = text
		view.SetText(text)
	}
}

// Stop stops the dashboard
func (a *App) Stop() {
	if a.cancelFunc != nil {
		a.cancelFunc()
	}
	a.app.Stop()
}

// formatChart renders a ranked song list with tview color tags
func formatChart(songs []grooveshark.Song) string {
	if len(songs) == 0 {
		return "[gray]No songs[-]"
	}

	var sb strings.Builder
	for i, song := range songs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("[gray]%2d.[-] [white::b]%s[-:-:-] [yellow]%s[-]",
			i+1, tview.Escape(song.SongName), tview.Escape(song.ArtistName)))
	}
	return sb.String()
}

// formatCalls renders journal entries, newest first
func formatCalls(entries []journal.Entry, enabled bool) string {
	if !enabled {
		return "[gray]Journal disabled[-]"
	}
	if len(entries) == 0 {
		return "[gray]No calls recorded[-]"
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}

		// Outcome indicator
		if e.Outcome == journal.OutcomeOK {
			sb.WriteString("[green]✓[-] ")
		} else {
			sb.WriteString("[red]✗[-] ")
		}

		sb.WriteString(fmt.Sprintf("%s [white]%s[-] [gray]%s[-]",
			e.Timestamp.Format("15:04:05"), tview.Escape(e.Method), e.Duration))
		if e.Error != "" {
			sb.WriteString(fmt.Sprintf(" [red]%s[-]", tview.Escape(e.Error)))
		}
	}
	return sb.String()
}

// formatStatus renders the footer with the age of the data and any error
func formatStatus(updated time.Time, err error, now time.Time) string {
	var sb strings.Builder
	if updated.IsZero() {
		sb.WriteString("[gray]loading...[-]")
	} else {
		sb.WriteString(fmt.Sprintf("[gray]updated %s ago[-]", formatDuration(now.Sub(updated))))
	}
	if err != nil {
		sb.WriteString(fmt.Sprintf("  [red]%s[-]", tview.Escape(err.Error())))
	}
	sb.WriteString("  [gray]q:quit  r:refresh[-]")
	return sb.String()
}

// formatDuration formats a duration as MM:SS or HH:MM:SS for longer durations
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
