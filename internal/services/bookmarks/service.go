// Package bookmarks provides named date-range bookmarks with file watching and persistence.
package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"launchdeck/internal/logger"
	"launchdeck/internal/models"
)

// BookmarksFile represents the JSON file structure for bookmark storage.
type BookmarksFile struct {
	Bookmarks []models.Bookmark `json:"bookmarks"`
	Version   int               `json:"version,omitempty"`
}

// Event represents a bookmark service event.
type Event struct {
	Type     EventType
	Error    error
	Bookmark *models.Bookmark
}

// EventType defines the type of bookmark event.
type EventType int

const (
	EventBookmarksLoaded EventType = iota
	EventBookmarksChanged
	EventBookmarkAdded
	EventBookmarkDeleted
	EventError
)

// Service manages bookmarks with file watching and change notifications.
type Service struct {
	mu            sync.RWMutex
	bookmarks     []models.Bookmark
	filePath      string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// New creates a new bookmarks service and starts file watching.
func New(filePath string) (*Service, error) {
	s := &Service{
		bookmarks: make([]models.Bookmark, 0),
		filePath:  filePath,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load bookmarks from file
	if err := s.load(); err != nil {
		// If file doesn't exist, create an empty bookmarks file
		if os.IsNotExist(err) {
			if err := s.save(); err != nil {
				return nil, fmt.Errorf("failed to create bookmarks file: %w", err)
			}
		} else {
			return nil, fmt.Errorf("failed to load bookmarks: %w", err)
		}
	}

	// Start file watcher
	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("failed to start file watcher: %w", err)
	}

	s.sendEvent(Event{Type: EventBookmarksLoaded})

	return s, nil
}

// Events returns the event channel for subscribing to bookmark changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// All returns a copy of all bookmarks.
func (s *Service) All() []models.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarks := make([]models.Bookmark, len(s.bookmarks))
	copy(bookmarks, s.bookmarks)
	return bookmarks
}

// Get returns a bookmark by name.
func (s *Service) Get(name string) *models.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookmarks {
		if s.bookmarks[i].Name == name {
			b := s.bookmarks[i]
			return &b
		}
	}
	return nil
}

// Count returns the number of bookmarks.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookmarks)
}

// Add saves a named date range.
func (s *Service) Add(name string, r models.DateRange) error {
	if name == "" {
		return fmt.Errorf("bookmark name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check for duplicate
	for _, b := range s.bookmarks {
		if b.Name == name {
			return fmt.Errorf("bookmark %q already exists", name)
		}
	}

	bookmark := models.Bookmark{
		Name:    name,
		Start:   r.Start,
		End:     r.End,
		AddedAt: time.Now(),
	}
	s.bookmarks = append(s.bookmarks, bookmark)

	if err := s.saveLocked(); err != nil {
		// Rollback
		s.bookmarks = s.bookmarks[:len(s.bookmarks)-1]
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}

	s.sendEvent(Event{Type: EventBookmarkAdded, Bookmark: &bookmark})
	return nil
}

// Delete removes a bookmark by name.
func (s *Service) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	var deleted models.Bookmark
	for i, b := range s.bookmarks {
		if b.Name == name {
			idx = i
			deleted = b
			break
		}
	}

	if idx == -1 {
		return fmt.Errorf("bookmark not found: %s", name)
	}

	s.bookmarks = append(s.bookmarks[:idx], s.bookmarks[idx+1:]...)

	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}

	s.sendEvent(Event{Type: EventBookmarkDeleted, Bookmark: &deleted})
	return nil
}

// parseBookmarks parses the file content, accepting the wrapped format
// or a bare array.
func parseBookmarks(data []byte) ([]models.Bookmark, error) {
	var file BookmarksFile
	if err := json.Unmarshal(data, &file); err == nil && file.Bookmarks != nil {
		return file.Bookmarks, nil
	}

	var bookmarks []models.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err == nil {
		return bookmarks, nil
	}

	return nil, fmt.Errorf("failed to parse bookmarks file: invalid format")
}

// load reads the bookmarks file.
func (s *Service) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	bookmarks, err := parseBookmarks(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bookmarks = bookmarks
	s.mu.Unlock()
	return nil
}

// save writes the bookmarks file (public version).
func (s *Service) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked writes the bookmarks file (must hold lock).
func (s *Service) saveLocked() error {
	file := BookmarksFile{
		Bookmarks: s.bookmarks,
		Version:   1,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bookmarks: %w", err)
	}

	// Write to temp file first, then rename
	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		if removeErr := os.Remove(tmpFile); removeErr != nil {
			logger.Error("failed to remove temp file", "error", removeErr)
		}
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory (to catch file creation/deletion)
	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			// Only care about our bookmarks file
			if filepath.Base(event.Name) != filepath.Base(s.filePath) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Debounce rapid changes
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleFileChange()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleFileChange reloads bookmarks after an external change.
func (s *Service) handleFileChange() {
	if err := s.load(); err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}
	s.sendEvent(Event{Type: EventBookmarksChanged})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (s *Service) Close() error {
	close(s.stopChan)

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
