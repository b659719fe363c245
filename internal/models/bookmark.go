package models

import "time"

// Bookmark is a named, saved date range kept in the bookmarks JSON file.
type Bookmark struct {
	Name    string    `json:"name"`
	Start   *Date     `json:"start,omitempty"`
	End     *Date     `json:"end,omitempty"`
	AddedAt time.Time `json:"addedAt,omitempty"`
}

// Range returns the bookmark's date range.
func (b Bookmark) Range() DateRange {
	return DateRange{Start: b.Start, End: b.End}
}
