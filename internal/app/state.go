// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"launchdeck/internal/models"
	"launchdeck/internal/services"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial   bool
	Lookup    bool
	History   bool
	Bookmarks bool
}

// State is the shared application state read by every tab.
type State struct {
	mu sync.RWMutex

	Result        *services.LookupResult
	CurrentRange  models.DateRange
	Bookmarks     []models.Bookmark
	History       []models.Lookup
	HistoryStats  *models.LookupStats
	SelectedIndex int

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		Bookmarks:     make([]models.Bookmark, 0),
		History:       make([]models.Lookup, 0),
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "lookup":
		s.Loading.Lookup = loading
	case "history":
		s.Loading.History = loading
	case "bookmarks":
		s.Loading.Bookmarks = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial ||
		s.Loading.Lookup ||
		s.Loading.History ||
		s.Loading.Bookmarks
}

// IsLookupRunning returns true while a range lookup is in flight.
func (s *State) IsLookupRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Lookup
}

// IsHistoryLoading returns true while the lookup history is being reloaded.
func (s *State) IsHistoryLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.History
}

// SetResult stores the latest completed lookup.
func (s *State) SetResult(result *services.LookupResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Result = result
	if result != nil {
		s.CurrentRange = result.Range
	}
	s.SelectedIndex = 0
	s.LastUpdated = time.Now()
}

// GetResult returns the latest completed lookup, or nil.
func (s *State) GetResult() *services.LookupResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Result
}

// SetCurrentRange remembers the range being queried.
func (s *State) SetCurrentRange(r models.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentRange = r
}

// GetCurrentRange returns the range of the latest (or in-flight) lookup.
func (s *State) GetCurrentRange() models.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.CurrentRange
}

// SetBookmarks replaces the bookmark list.
func (s *State) SetBookmarks(bookmarks []models.Bookmark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Bookmarks = bookmarks
}

// GetBookmarks returns a copy of the bookmark list.
func (s *State) GetBookmarks() []models.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarks := make([]models.Bookmark, len(s.Bookmarks))
	copy(bookmarks, s.Bookmarks)
	return bookmarks
}

// SetHistory replaces the lookup history and its stats.
func (s *State) SetHistory(lookups []models.Lookup, stats *models.LookupStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.History = lookups
	s.HistoryStats = stats
	s.LastUpdated = time.Now()
}

// GetHistory returns a copy of the lookup history.
func (s *State) GetHistory() []models.Lookup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]models.Lookup, len(s.History))
	copy(history, s.History)
	return history
}

// GetHistoryStats returns the aggregate history statistics.
func (s *State) GetHistoryStats() *models.LookupStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HistoryStats
}

// GetSelectedIndex returns the selected launch row.
func (s *State) GetSelectedIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SelectedIndex
}

// SetSelectedIndex updates the selected launch row.
func (s *State) SetSelectedIndex(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SelectedIndex = idx
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
