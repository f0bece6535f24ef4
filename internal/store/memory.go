package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"fyyur/internal/models"
)

// Memory keeps the booking directory in process memory. It mirrors the
// semantics of Store and backs local runs without a database.
type Memory struct {
	mu      sync.RWMutex
	areas   map[int64]*models.Area
	venues  map[int64]*models.Venue
	artists map[int64]*models.Artist
	shows   map[int64]*models.Show

	nextAreaID   int64
	nextVenueID  int64
	nextArtistID int64
	nextShowID   int64

	now func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		areas:        make(map[int64]*models.Area),
		venues:       make(map[int64]*models.Venue),
		artists:      make(map[int64]*models.Artist),
		shows:        make(map[int64]*models.Show),
		nextAreaID:   1,
		nextVenueID:  1,
		nextArtistID: 1,
		nextShowID:   1,
		now:          time.Now,
	}
}

// SetClock replaces the time source used to tell past shows from upcoming ones.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// GetArea looks up the area for an exact city/state pair.
func (m *Memory) GetArea(_ context.Context, city, state string) (*models.Area, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	area := m.findArea(city, state)
	if area == nil {
		return nil, ErrAreaNotFound
	}
	clone := *area
	return &clone, nil
}

// ListAreas returns every area with its venues nested, ordered by state then city.
func (m *Memory) ListAreas(_ context.Context) ([]*models.AreaWithVenues, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byID := make(map[int64]*models.AreaWithVenues, len(m.areas))
	areas := make([]*models.AreaWithVenues, 0, len(m.areas))
	for _, a := range m.areas {
		entry := &models.AreaWithVenues{Area: *a, Venues: []*models.Venue{}}
		byID[a.ID] = entry
		areas = append(areas, entry)
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].City < areas[j].City
	})

	for _, v := range m.sortedVenues(nil) {
		if a, ok := byID[v.AreaID]; ok {
			a.Venues = append(a.Venues, v)
		}
	}

	return areas, nil
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (m *Memory) SearchVenues(_ context.Context, term string) ([]*models.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(term)
	return m.sortedVenues(func(v *models.Venue) bool {
		return strings.Contains(strings.ToLower(v.Name), needle)
	}), nil
}

// GetVenue retrieves a single venue by ID
func (m *Memory) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return m.venueView(v), nil
}

// CreateVenue stores a new venue, creating the area for its city/state first
// when none exists.
func (m *Memory) CreateVenue(_ context.Context, venue *models.Venue) (*models.Venue, error) {
	if venue == nil {
		return nil, errors.New("venue is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	venue.AreaID = m.findOrCreateArea(venue.City, venue.State)
	venue.ID = m.nextVenueID
	m.nextVenueID++

	stored := *venue
	m.venues[venue.ID] = &stored

	return m.venueView(&stored), nil
}

// UpdateVenue rewrites the editable fields of a venue.
func (m *Memory) UpdateVenue(_ context.Context, id int64, update models.VenueUpdate) (*models.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}

	v.Name = update.Name
	v.Phone = update.Phone
	v.City = update.City
	v.State = update.State
	v.Address = update.Address
	v.AreaID = m.findOrCreateArea(update.City, update.State)

	return m.venueView(v), nil
}

// DeleteVenue removes a venue together with its shows.
func (m *Memory) DeleteVenue(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.venues[id]; !ok {
		return ErrVenueNotFound
	}
	delete(m.venues, id)
	for showID, s := range m.shows {
		if s.VenueID == id {
			delete(m.shows, showID)
		}
	}
	return nil
}

// ListArtists returns every artist ordered by name.
func (m *Memory) ListArtists(_ context.Context) ([]*models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sortedArtists(nil), nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (m *Memory) SearchArtists(_ context.Context, term string) ([]*models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(term)
	return m.sortedArtists(func(a *models.Artist) bool {
		return strings.Contains(strings.ToLower(a.Name), needle)
	}), nil
}

// GetArtist retrieves a single artist by ID
func (m *Memory) GetArtist(_ context.Context, id int64) (*models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.artists[id]
	if !ok {
		return nil, ErrArtistNotFound
	}
	return m.artistView(a), nil
}

// CreateArtist stores a new artist.
func (m *Memory) CreateArtist(_ context.Context, artist *models.Artist) (*models.Artist, error) {
	if artist == nil {
		return nil, errors.New("artist is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	artist.ID = m.nextArtistID
	m.nextArtistID++

	stored := *artist
	m.artists[artist.ID] = &stored

	return m.artistView(&stored), nil
}

// UpdateArtist rewrites name, city, state and phone.
func (m *Memory) UpdateArtist(_ context.Context, id int64, update models.ArtistUpdate) (*models.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.artists[id]
	if !ok {
		return nil, ErrArtistNotFound
	}

	a.Name = update.Name
	a.City = update.City
	a.State = update.State
	a.Phone = update.Phone

	return m.artistView(a), nil
}

// CreateShow books an artist at a venue. Both must exist.
func (m *Memory) CreateShow(_ context.Context, show *models.Show) (*models.Show, error) {
	if show == nil {
		return nil, errors.New("show is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.venues[show.VenueID]; !ok {
		return nil, ErrVenueNotFound
	}
	if _, ok := m.artists[show.ArtistID]; !ok {
		return nil, ErrArtistNotFound
	}

	show.ID = m.nextShowID
	m.nextShowID++

	stored := *show
	m.shows[show.ID] = &stored

	clone := stored
	return &clone, nil
}

// ListShows returns every show joined with its venue and artist, oldest first.
func (m *Memory) ListShows(_ context.Context) ([]*models.ShowWithDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.joinedShows(func(*models.Show) bool { return true }), nil
}

// ListShowsByVenue returns all shows at a specific venue
func (m *Memory) ListShowsByVenue(_ context.Context, venueID int64) ([]*models.ShowWithDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.joinedShows(func(s *models.Show) bool { return s.VenueID == venueID }), nil
}

// ListShowsByArtist returns all shows for a specific artist
func (m *Memory) ListShowsByArtist(_ context.Context, artistID int64) ([]*models.ShowWithDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.joinedShows(func(s *models.Show) bool { return s.ArtistID == artistID }), nil
}

// Counts reports how many areas, venues, artists and shows are stored.
func (m *Memory) Counts() (areas, venues, artists, shows int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.areas), len(m.venues), len(m.artists), len(m.shows)
}

func (m *Memory) findArea(city, state string) *models.Area {
	for _, a := range m.areas {
		if a.City == city && a.State == state {
			return a
		}
	}
	return nil
}

func (m *Memory) findOrCreateArea(city, state string) int64 {
	if a := m.findArea(city, state); a != nil {
		return a.ID
	}
	a := &models.Area{ID: m.nextAreaID, City: city, State: state}
	m.nextAreaID++
	m.areas[a.ID] = a
	return a.ID
}

// showCounts splits the shows matching fn into past and upcoming totals.
func (m *Memory) showCounts(fn func(*models.Show) bool) (past, upcoming int) {
	now := m.now()
	for _, s := range m.shows {
		if !fn(s) {
			continue
		}
		if s.StartTime.Before(now) {
			past++
		} else {
			upcoming++
		}
	}
	return past, upcoming
}

func (m *Memory) venueView(v *models.Venue) *models.Venue {
	clone := *v
	clone.PastShowsCount, clone.UpcomingShowsCount = m.showCounts(func(s *models.Show) bool {
		return s.VenueID == v.ID
	})
	return &clone
}

func (m *Memory) artistView(a *models.Artist) *models.Artist {
	clone := *a
	clone.PastShowsCount, clone.UpcomingShowsCount = m.showCounts(func(s *models.Show) bool {
		return s.ArtistID == a.ID
	})
	return &clone
}

func (m *Memory) sortedVenues(keep func(*models.Venue) bool) []*models.Venue {
	venues := []*models.Venue{}
	for _, v := range m.venues {
		if keep == nil || keep(v) {
			venues = append(venues, m.venueView(v))
		}
	}
	sort.Slice(venues, func(i, j int) bool {
		if venues[i].Name != venues[j].Name {
			return venues[i].Name < venues[j].Name
		}
		return venues[i].ID < venues[j].ID
	})
	return venues
}

func (m *Memory) sortedArtists(keep func(*models.Artist) bool) []*models.Artist {
	artists := []*models.Artist{}
	for _, a := range m.artists {
		if keep == nil || keep(a) {
			artists = append(artists, m.artistView(a))
		}
	}
	sort.Slice(artists, func(i, j int) bool {
		if artists[i].Name != artists[j].Name {
			return artists[i].Name < artists[j].Name
		}
		return artists[i].ID < artists[j].ID
	})
	return artists
}

func (m *Memory) joinedShows(keep func(*models.Show) bool) []*models.ShowWithDetails {
	now := m.now()
	shows := []*models.ShowWithDetails{}
	for _, s := range m.shows {
		if !keep(s) {
			continue
		}
		v, vok := m.venues[s.VenueID]
		a, aok := m.artists[s.ArtistID]
		if !vok || !aok {
			continue
		}
		shows = append(shows, &models.ShowWithDetails{
			Show:            *s,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			Upcoming:        !s.StartTime.Before(now),
		})
	}
	sort.Slice(shows, func(i, j int) bool {
		if !shows[i].StartTime.Equal(shows[j].StartTime) {
			return shows[i].StartTime.Before(shows[j].StartTime)
		}
		return shows[i].ID < shows[j].ID
	})
	return shows
}
