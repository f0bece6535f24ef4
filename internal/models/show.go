package models

import "time"

// Show books an artist at a venue. Whether it is past or upcoming is derived
// from StartTime when it is read.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowWithDetails includes venue and artist information (populated via JOIN queries)
type ShowWithDetails struct {
	Show
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	Upcoming        bool   `json:"upcoming"`
}

// SplitShows partitions shows into past and upcoming, preserving order.
func SplitShows(shows []*ShowWithDetails) (past, upcoming []*ShowWithDetails) {
	for _, s := range shows {
		if s.Upcoming {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}
