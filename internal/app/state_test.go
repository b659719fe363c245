package app

import (
	"testing"
	"time"

	"launchdeck/internal/models"
	"launchdeck/internal/services"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if len(s.Bookmarks) != 0 {
		t.Error("Bookmarks should be empty")
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading("lookup", true)
	if !s.IsLookupRunning() {
		t.Error("lookup should be running")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("lookup", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}

	s.SetLoading("history", true)
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (History)")
	}
}

func TestState_SetResult(t *testing.T) {
	s := NewState()
	s.SetSelectedIndex(7)

	r := models.RangeBetween(
		models.NewDate(2020, time.January, 1),
		models.NewDate(2020, time.December, 31),
	)
	result := &services.LookupResult{
		Range: r,
		Launches: []models.WeighedLaunch{
			{Launch: models.Launch{ID: "L1"}, TotalPayloadMassKg: 1200},
		},
	}

	s.SetResult(result)

	got := s.GetResult()
	if got == nil {
		t.Fatal("GetResult returned nil")
	}
	if len(got.Launches) != 1 {
		t.Errorf("Launches len = %d, want 1", len(got.Launches))
	}
	if s.GetCurrentRange().String() != r.String() {
		t.Errorf("CurrentRange = %s, want %s", s.GetCurrentRange(), r)
	}
	if s.GetSelectedIndex() != 0 {
		t.Error("SetResult should reset SelectedIndex")
	}
}

func TestState_Bookmarks(t *testing.T) {
	s := NewState()

	marks := []models.Bookmark{
		{Name: "2020"},
		{Name: "all"},
	}
	s.SetBookmarks(marks)

	got := s.GetBookmarks()
	if len(got) != 2 {
		t.Fatalf("GetBookmarks len = %d, want 2", len(got))
	}

	// Returned slice is a copy
	got[0].Name = "mutated"
	if s.GetBookmarks()[0].Name != "2020" {
		t.Error("GetBookmarks should return a copy")
	}
}

func TestState_History(t *testing.T) {
	s := NewState()

	lookups := []models.Lookup{{ID: 1, LaunchCount: 12}}
	stats := &models.LookupStats{TotalLookups: 1, TotalLaunches: 12}

	s.SetHistory(lookups, stats)

	if len(s.GetHistory()) != 1 {
		t.Errorf("GetHistory len = %d, want 1", len(s.GetHistory()))
	}
	gotStats := s.GetHistoryStats()
	if gotStats == nil {
		t.Fatal("GetHistoryStats returned nil")
	}
	if gotStats.TotalLaunches != 12 {
		t.Errorf("TotalLaunches = %d, want 12", gotStats.TotalLaunches)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	// Expired
	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})

	// Active
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("Expected active notification, got %s", notifs[0].ID)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != LoadingNotificationID {
		t.Errorf("Expected ID %s, got %s", LoadingNotificationID, notifs[0].ID)
	}
	if notifs[0].Message != "loading..." {
		t.Errorf("Expected message loading..., got %s", notifs[0].Message)
	}

	// Update message
	s.SetLoadingNotification("still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification after update")
	}
	if notifs[0].Message != "still loading..." {
		t.Errorf("Expected message still loading..., got %s", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("Loading notification should be cleared")
	}
}

func TestState_SelectedIndex(t *testing.T) {
	s := NewState()

	s.SetSelectedIndex(5)
	if s.GetSelectedIndex() != 5 {
		t.Errorf("GetSelectedIndex = %d, want 5", s.GetSelectedIndex())
	}
}

func TestState_TimeSinceUpdate(t *testing.T) {
	s := NewState()

	before := s.GetLastUpdated()
	time.Sleep(time.Millisecond) // Ensure time advances

	s.SetResult(&services.LookupResult{})

	if !s.GetLastUpdated().After(before) {
		t.Error("LastUpdated should be updated")
	}
	if s.TimeSinceUpdate() == 0 {
		t.Error("TimeSinceUpdate should be > 0")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		t    NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationType(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
