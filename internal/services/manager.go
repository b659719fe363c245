// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"launchdeck/internal/config"
	"launchdeck/internal/db"
	"launchdeck/internal/logger"
	"launchdeck/internal/models"
	"launchdeck/internal/services/bookmarks"
	"launchdeck/internal/services/catalog"
	"launchdeck/internal/services/heaviest"
	"launchdeck/internal/services/masses"
	"launchdeck/internal/spacex"
)

// LookupResult holds everything a finished range lookup produced.
type LookupResult struct {
	Range    models.DateRange
	Launches []models.WeighedLaunch
	Heaviest *models.WeighedLaunch
	Duration time.Duration
}

type (
	// BookmarksChangedEvent is emitted when the bookmark list changes.
	BookmarksChangedEvent struct {
		Bookmarks []models.Bookmark
	}

	// LookupStartedEvent is emitted when a range lookup begins.
	LookupStartedEvent struct {
		Range models.DateRange
	}

	// LookupCompletedEvent is emitted when a range lookup finishes.
	LookupCompletedEvent struct {
		Result *LookupResult
	}

	// HistoryChangedEvent is emitted when the recorded lookup history changes.
	HistoryChangedEvent struct {
		Lookups []models.Lookup
		Stats   *models.LookupStats
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (BookmarksChangedEvent) isServiceEvent() {}
func (LookupStartedEvent) isServiceEvent()    {}
func (LookupCompletedEvent) isServiceEvent()  {}
func (HistoryChangedEvent) isServiceEvent()   {}
func (ErrorEvent) isServiceEvent()            {}

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	gateway     *spacex.Client
	catalog     *catalog.Service
	resolver    *masses.Resolver
	finder      *heaviest.Finder
	bookmarks   *bookmarks.Service
	database    *db.DB
	cfg         *config.Config
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	m.gateway = spacex.New(cfg.APIBaseURL,
		spacex.WithHTTP(&http.Client{Timeout: cfg.HTTPTimeout}),
		spacex.WithPageSize(cfg.QueryPageSize),
	)
	m.catalog = catalog.New(m.gateway)
	m.resolver = masses.New(m.gateway)
	m.finder = heaviest.New(m.catalog, m.resolver, heaviest.Config{
		MaxConcurrent: cfg.MassWorkers,
	})

	var err error
	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	m.bookmarks, err = bookmarks.New(cfg.BookmarksPath)
	if err != nil {
		return nil, err
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.bookmarks.Events():
			m.handleBookmarkEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleBookmarkEvent converts and broadcasts bookmark events.
func (m *Manager) handleBookmarkEvent(event bookmarks.Event) {
	switch event.Type {
	case bookmarks.EventBookmarksLoaded, bookmarks.EventBookmarksChanged,
		bookmarks.EventBookmarkAdded, bookmarks.EventBookmarkDeleted:

		m.broadcast(BookmarksChangedEvent{
			Bookmarks: m.bookmarks.All(),
		})

	case bookmarks.EventError:
		m.broadcast(ErrorEvent{
			Service: "bookmarks",
			Error:   event.Error,
		})
	}
}

// LookupRange queries the remote catalog for every launch in r, weighs
// them and records the outcome in the lookup history.
func (m *Manager) LookupRange(ctx context.Context, r models.DateRange) (*LookupResult, error) {
	m.broadcast(LookupStartedEvent{Range: r})
	started := time.Now()

	launches, err := m.catalog.LaunchesInRange(ctx, r)
	if err != nil {
		m.broadcast(ErrorEvent{Service: "catalog", Error: err})
		return nil, err
	}

	weighed, err := m.finder.WeighAll(ctx, launches)
	if err != nil {
		m.broadcast(ErrorEvent{Service: "masses", Error: err})
		return nil, err
	}

	result := &LookupResult{
		Range:    r,
		Launches: weighed,
		Heaviest: heaviest.Heaviest(weighed),
		Duration: time.Since(started),
	}

	m.notifyIfSlow(result)
	m.recordLookup(result)
	m.broadcast(LookupCompletedEvent{Result: result})
	m.broadcastHistory()

	return result, nil
}

// HeaviestLaunch answers the single question without the dashboard extras.
func (m *Manager) HeaviestLaunch(ctx context.Context, r models.DateRange) (*models.WeighedLaunch, error) {
	return m.finder.HeaviestLaunch(ctx, r)
}

// notifyIfSlow raises a desktop notification for lookups that took long
// enough that the user probably switched away.
func (m *Manager) notifyIfSlow(result *LookupResult) {
	if m.cfg.SlowLookupNotify <= 0 || result.Duration < m.cfg.SlowLookupNotify {
		return
	}

	title := "Launch lookup finished"
	body := fmt.Sprintf("%d launches in %s (%.1fs)",
		len(result.Launches), result.Range.String(), result.Duration.Seconds())
	if err := beeep.Notify(title, body, ""); err != nil {
		logger.Debug("desktop notification failed", "error", err)
	}
}

// recordLookup appends the result to the lookup history.
func (m *Manager) recordLookup(result *LookupResult) {
	lookup := &models.Lookup{
		RangeStart:  result.Range.Start,
		RangeEnd:    result.Range.End,
		LaunchCount: len(result.Launches),
		DurationMs:  result.Duration.Milliseconds(),
	}
	if result.Heaviest != nil {
		lookup.HeaviestID = result.Heaviest.ID
		lookup.HeaviestDate = result.Heaviest.LaunchTime
		lookup.HeaviestMassKg = result.Heaviest.TotalPayloadMassKg
	}

	if err := m.database.InsertLookup(lookup); err != nil {
		logger.Error("failed to record lookup", "error", err)
		m.broadcast(ErrorEvent{Service: "db", Error: err})
	}
}

// broadcastHistory publishes the refreshed history and stats.
func (m *Manager) broadcastHistory() {
	lookups, err := m.database.GetRecentLookups(50)
	if err != nil {
		m.broadcast(ErrorEvent{Service: "db", Error: err})
		return
	}
	stats, err := m.database.GetLookupStats()
	if err != nil {
		m.broadcast(ErrorEvent{Service: "db", Error: err})
		return
	}
	m.broadcast(HistoryChangedEvent{Lookups: lookups, Stats: stats})
}

// SaveBookmark stores a named date range.
func (m *Manager) SaveBookmark(name string, r models.DateRange) error {
	return m.bookmarks.Add(name, r)
}

// DeleteBookmark removes a named date range.
func (m *Manager) DeleteBookmark(name string) error {
	return m.bookmarks.Delete(name)
}

// Bookmarks returns the bookmarks service.
func (m *Manager) Bookmarks() *bookmarks.Service {
	return m.bookmarks
}

// History returns the most recent recorded lookups.
func (m *Manager) History(limit int) ([]models.Lookup, error) {
	return m.database.GetRecentLookups(limit)
}

// Stats returns aggregate statistics over the lookup history.
func (m *Manager) Stats() (*models.LookupStats, error) {
	return m.database.GetLookupStats()
}

// ClearHistory wipes the recorded lookup history.
func (m *Manager) ClearHistory() error {
	if err := m.database.ClearLookups(); err != nil {
		return err
	}
	m.broadcastHistory()
	return nil
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if err := m.bookmarks.Close(); err != nil {
		errs = append(errs, err)
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
