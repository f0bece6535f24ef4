package shows

import (
	"context"
	"errors"
	"time"

	"fyyur/internal/models"
)

// ErrInvalidShow is returned when a show is missing its venue, artist or start time.
var ErrInvalidShow = errors.New("show requires venue_id, artist_id and start_time")

// Store defines persistence operations for shows
type Store interface {
	ListShows(ctx context.Context) ([]*models.ShowWithDetails, error)
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
}

// NewShow carries the fields accepted when scheduling a show.
type NewShow struct {
	VenueID   int64
	ArtistID  int64
	StartTime time.Time
}

// Service coordinates show scheduling
type Service interface {
	List(ctx context.Context) ([]*models.ShowWithDetails, error)
	Create(ctx context.Context, input NewShow) (*models.Show, error)
}

type service struct {
	store Store
}

// New constructs a shows Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.ShowWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

// Create schedules a show. The venue's and artist's show counts are derived
// from the shows table, so the insert is the only write.
func (s *service) Create(ctx context.Context, input NewShow) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.VenueID <= 0 || input.ArtistID <= 0 || input.StartTime.IsZero() {
		return nil, ErrInvalidShow
	}
	return s.store.CreateShow(ctx, &models.Show{
		VenueID:   input.VenueID,
		ArtistID:  input.ArtistID,
		StartTime: input.StartTime,
	})
}
