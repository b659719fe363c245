package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"launchdeck/internal/models"
	"launchdeck/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second

	// historyPageSize is how many history rows the history tab loads.
	historyPageSize = 50
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadInitialData returns a command that loads all initial data.
func loadInitialData(mgr *services.Manager) tea.Cmd {
	return tea.Batch(
		loadHistoryCmd(mgr),
		loadBookmarksCmd(mgr),
	)
}

// lookupRangeCmd runs a range lookup against the remote catalog.
func lookupRangeCmd(mgr *services.Manager, r models.DateRange) tea.Cmd {
	return func() tea.Msg {
		result, err := mgr.LookupRange(context.Background(), r)
		return LookupFinishedMsg{Result: result, Error: err}
	}
}

// loadHistoryCmd loads the recorded lookup history.
func loadHistoryCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		lookups, err := mgr.History(historyPageSize)
		if err != nil {
			return HistoryLoadedMsg{Error: err}
		}
		stats, err := mgr.Stats()
		if err != nil {
			return HistoryLoadedMsg{Lookups: lookups, Error: err}
		}
		return HistoryLoadedMsg{Lookups: lookups, Stats: stats}
	}
}

// loadBookmarksCmd loads the bookmark list.
func loadBookmarksCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return BookmarksLoadedMsg{Bookmarks: mgr.Bookmarks().All()}
	}
}

// saveBookmarkCmd saves a named range.
func saveBookmarkCmd(mgr *services.Manager, name string, r models.DateRange) tea.Cmd {
	return func() tea.Msg {
		err := mgr.SaveBookmark(name, r)
		return BookmarkSavedMsg{Name: name, Error: err}
	}
}

// deleteBookmarkCmd deletes a named range.
func deleteBookmarkCmd(mgr *services.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		err := mgr.DeleteBookmark(name)
		return BookmarkDeletedMsg{Name: name, Error: err}
	}
}

// clearHistoryCmd wipes the lookup history.
func clearHistoryCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return HistoryClearedMsg{Error: mgr.ClearHistory()}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// delayedCmd returns a command that sends a message after a delay.
func delayedCmd(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return msg
	})
}

// Commands provides a public interface to the command functions.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a tick command with the specified interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tickCmd(interval)
}

// Lookup returns a command that requests a range lookup.
func (c *Commands) Lookup(r models.DateRange) tea.Cmd {
	return func() tea.Msg {
		return LookupRequestedMsg{Range: r}
	}
}

// LoadHistory returns a command that loads the lookup history.
func (c *Commands) LoadHistory() tea.Cmd {
	return loadHistoryCmd(c.manager)
}

// LoadBookmarks returns a command that loads the bookmark list.
func (c *Commands) LoadBookmarks() tea.Cmd {
	return loadBookmarksCmd(c.manager)
}

// SaveBookmark returns a command that requests saving a named range.
func (c *Commands) SaveBookmark(name string, r models.DateRange) tea.Cmd {
	return func() tea.Msg {
		return SaveBookmarkMsg{Name: name, Range: r}
	}
}

// DeleteBookmark returns a command that requests removing a named range.
func (c *Commands) DeleteBookmark(name string) tea.Cmd {
	return func() tea.Msg {
		return DeleteBookmarkMsg{Name: name}
	}
}

// ClearHistory returns a command that requests wiping the lookup history.
func (c *Commands) ClearHistory() tea.Cmd {
	return func() tea.Msg {
		return ClearHistoryMsg{}
	}
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}

// Delayed returns a command that sends a message after a delay.
func (c *Commands) Delayed(delay time.Duration, msg tea.Msg) tea.Cmd {
	return delayedCmd(delay, msg)
}
