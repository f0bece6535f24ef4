package models

// Artist represents a performer that can be booked at venues
type Artist struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone"`
	Genres             string `json:"genres"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	Website            string `json:"website"`
	SeekingVenues      bool   `json:"seeking_venues"`
	SeekingDescription string `json:"seeking_description"`

	PastShowsCount     int `json:"past_shows_count"`
	UpcomingShowsCount int `json:"upcoming_shows_count"`
}

// ArtistUpdate holds the fields editable on an existing artist.
type ArtistUpdate struct {
	Name  string
	City  string
	State string
	Phone string
}

// ArtistDetail is an artist together with its shows split by start time.
type ArtistDetail struct {
	*Artist
	PastShows     []*ShowWithDetails `json:"past_shows"`
	UpcomingShows []*ShowWithDetails `json:"upcoming_shows"`
}
