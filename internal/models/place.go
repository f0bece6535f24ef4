package models

// Area groups venues by locality. (City, State) is unique.
type Area struct {
	ID    int64  `json:"id"`
	City  string `json:"city"`
	State string `json:"state"`
}

// AreaWithVenues is an area together with every venue located in it.
type AreaWithVenues struct {
	Area
	Venues []*Venue `json:"venues"`
}

// Venue represents a place that hosts shows
type Venue struct {
	ID                 int64  `json:"id"`
	AreaID             int64  `json:"area_id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	Genres             string `json:"genres"`
	Website            string `json:"website"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`

	// Computed from the shows table at read time
	PastShowsCount     int `json:"past_shows_count"`
	UpcomingShowsCount int `json:"upcoming_shows_count"`
}

// VenueUpdate holds the fields editable on an existing venue.
type VenueUpdate struct {
	Name    string
	Phone   string
	City    string
	State   string
	Address string
}

// VenueDetail is a venue together with its shows split by start time.
type VenueDetail struct {
	*Venue
	PastShows     []*ShowWithDetails `json:"past_shows"`
	UpcomingShows []*ShowWithDetails `json:"upcoming_shows"`
}

// SearchResult pairs matching records with their count.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// NewSearchResult builds a SearchResult whose Count always matches Data.
func NewSearchResult[T any](data []T) SearchResult[T] {
	return SearchResult[T]{Count: len(data), Data: data}
}
