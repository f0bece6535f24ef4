package artists

import (
	"context"
	"strings"

	"fyyur/internal/models"
)

// Store defines persistence operations for artists
type Store interface {
	ListArtists(ctx context.Context) ([]*models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]*models.Artist, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, update models.ArtistUpdate) (*models.Artist, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]*models.ShowWithDetails, error)
}

// NewArtist carries the fields accepted when listing an artist.
type NewArtist struct {
	Name  string
	City  string
	State string
	Phone string
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context) ([]*models.Artist, error)
	Search(ctx context.Context, term string) (models.SearchResult[*models.Artist], error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, input NewArtist) (*models.Artist, error)
	Update(ctx context.Context, id int64, update models.ArtistUpdate) (*models.Artist, error)
}

type service struct {
	store Store
}

// New constructs an artist Service backed by the supplied store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult[*models.Artist], error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult[*models.Artist]{}, err
	}
	artists, err := s.store.SearchArtists(ctx, term)
	if err != nil {
		return models.SearchResult[*models.Artist]{}, err
	}
	return models.NewSearchResult(artists), nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming := models.SplitShows(shows)
	return &models.ArtistDetail{Artist: artist, PastShows: past, UpcomingShows: upcoming}, nil
}

func (s *service) Create(ctx context.Context, input NewArtist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, &models.Artist{
		Name:          strings.TrimSpace(input.Name),
		City:          strings.TrimSpace(input.City),
		State:         strings.TrimSpace(input.State),
		Phone:         strings.TrimSpace(input.Phone),
		SeekingVenues: true,
	})
}

func (s *service) Update(ctx context.Context, id int64, update models.ArtistUpdate) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	update.Name = strings.TrimSpace(update.Name)
	update.City = strings.TrimSpace(update.City)
	update.State = strings.TrimSpace(update.State)
	update.Phone = strings.TrimSpace(update.Phone)
	return s.store.UpdateArtist(ctx, id, update)
}
