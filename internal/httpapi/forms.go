package httpapi

import (
	"errors"
	"strings"
	"time"
)

type searchForm struct {
	SearchTerm string `form:"search_term"`
}

type venueForm struct {
	Name    string `form:"name"`
	City    string `form:"city"`
	State   string `form:"state"`
	Address string `form:"address"`
	Phone   string `form:"phone"`
}

type artistForm struct {
	Name  string `form:"name"`
	City  string `form:"city"`
	State string `form:"state"`
	Phone string `form:"phone"`
}

type showForm struct {
	VenueID   int64  `form:"venue_id" validate:"gt=0"`
	ArtistID  int64  `form:"artist_id" validate:"gt=0"`
	StartTime string `form:"start_time" validate:"required"`
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var errBadStartTime = errors.New("unrecognised start_time")

// parseStartTime accepts the formats produced by datetime inputs and the
// seed data. Times without a zone are read as UTC.
func parseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadStartTime
}
