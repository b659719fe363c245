package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"launchdeck/internal/models"
	"launchdeck/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// LookupRequestedMsg asks the app to run a range lookup.
type LookupRequestedMsg struct {
	Range models.DateRange
}

// LookupFinishedMsg carries the outcome of a range lookup.
type LookupFinishedMsg struct {
	Result *services.LookupResult
	Error  error
}

// HistoryLoadedMsg contains the recorded lookup history.
type HistoryLoadedMsg struct {
	Lookups []models.Lookup
	Stats   *models.LookupStats
	Error   error
}

// BookmarksLoadedMsg contains the current bookmark list.
type BookmarksLoadedMsg struct {
	Bookmarks []models.Bookmark
}

// SaveBookmarkMsg requests saving the given range under a name.
type SaveBookmarkMsg struct {
	Name  string
	Range models.DateRange
}

// BookmarkSavedMsg contains the result of a bookmark save.
type BookmarkSavedMsg struct {
	Name  string
	Error error
}

// DeleteBookmarkMsg requests deletion of a named bookmark.
type DeleteBookmarkMsg struct {
	Name string
}

// BookmarkDeletedMsg contains the result of a bookmark deletion.
type BookmarkDeletedMsg struct {
	Name  string
	Error error
}

// ClearHistoryMsg requests wiping the lookup history.
type ClearHistoryMsg struct{}

// HistoryClearedMsg contains the result of a history wipe.
type HistoryClearedMsg struct {
	Error error
}

// RefreshMsg requests a refresh of data.
type RefreshMsg struct {
	Resource string // "all", "lookup", "history", "bookmarks"
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// DelayedMsg wraps a message to be sent after a delay.
type DelayedMsg struct {
	Delay time.Duration
	Msg   tea.Msg
}
