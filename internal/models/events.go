// Package models defines data structures and domain types.
package models

import "time"

// ContentResponse is one AI-generated content response (ai_response row).
type ContentResponse struct {
	Date   time.Time
	JobID  string
	Tokens int64
}

// EventDate returns the calendar date of the response.
func (c ContentResponse) EventDate() time.Time { return c.Date }

// ModelCreation is one automated model record creation (model_create row).
type ModelCreation struct {
	Date     time.Time
	Standard *int // nil when the source has no standardization column
	ModelID  string
}

// EventDate returns the calendar date of the creation.
func (m ModelCreation) EventDate() time.Time { return m.Date }

// IsStandardized reports whether the record passed standardization (flag == 1).
func (m ModelCreation) IsStandardized() bool {
	return m.Standard != nil && *m.Standard == 1
}

// PhotoUpload is one batch of uploaded images for a product listing (photo_upload row).
type PhotoUpload struct {
	Date       time.Time
	SGNo       string
	ImageCount int64
	WebOpen    int
}

// EventDate returns the calendar date of the upload.
func (p PhotoUpload) EventDate() time.Time { return p.Date }

// Snapshot holds the three source tables as loaded for one cache epoch.
// A snapshot is never modified after the loader returns it.
type Snapshot struct {
	LoadedAt         time.Time
	ContentResponses []ContentResponse
	ModelCreations   []ModelCreation
	PhotoUploads     []PhotoUpload
	Epoch            uint64
}

// IsEmpty returns true if none of the tables contain rows.
func (s *Snapshot) IsEmpty() bool {
	return s == nil ||
		len(s.ContentResponses) == 0 && len(s.ModelCreations) == 0 && len(s.PhotoUploads) == 0
}

// RowCounts returns the number of rows per table.
func (s *Snapshot) RowCounts() (content, models, photos int) {
	if s == nil {
		return 0, 0, 0
	}
	return len(s.ContentResponses), len(s.ModelCreations), len(s.PhotoUploads)
}
