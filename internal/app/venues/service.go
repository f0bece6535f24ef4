package venues

import (
	"context"
	"strings"

	"fyyur/internal/models"
)

// Store defines persistence operations for venues and the areas grouping them
type Store interface {
	ListAreas(ctx context.Context) ([]*models.AreaWithVenues, error)
	SearchVenues(ctx context.Context, term string) ([]*models.Venue, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, update models.VenueUpdate) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	ListShowsByVenue(ctx context.Context, venueID int64) ([]*models.ShowWithDetails, error)
}

// NewVenue carries the fields accepted when listing a venue.
type NewVenue struct {
	Name    string
	City    string
	State   string
	Address string
	Phone   string
}

// Service coordinates venue-related operations
type Service interface {
	List(ctx context.Context) ([]*models.AreaWithVenues, error)
	Search(ctx context.Context, term string) (models.SearchResult[*models.Venue], error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, input NewVenue) (*models.Venue, error)
	Update(ctx context.Context, id int64, update models.VenueUpdate) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a venues Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.AreaWithVenues, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAreas(ctx)
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult[*models.Venue], error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult[*models.Venue]{}, err
	}
	venues, err := s.store.SearchVenues(ctx, term)
	if err != nil {
		return models.SearchResult[*models.Venue]{}, err
	}
	return models.NewSearchResult(venues), nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming := models.SplitShows(shows)
	return &models.VenueDetail{Venue: venue, PastShows: past, UpcomingShows: upcoming}, nil
}

// Create lists a venue. New venues are seeking talent and carry no optional
// details until edited.
func (s *service) Create(ctx context.Context, input NewVenue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, &models.Venue{
		Name:          strings.TrimSpace(input.Name),
		City:          strings.TrimSpace(input.City),
		State:         strings.TrimSpace(input.State),
		Address:       strings.TrimSpace(input.Address),
		Phone:         strings.TrimSpace(input.Phone),
		SeekingTalent: true,
	})
}

func (s *service) Update(ctx context.Context, id int64, update models.VenueUpdate) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	update.Name = strings.TrimSpace(update.Name)
	update.City = strings.TrimSpace(update.City)
	update.State = strings.TrimSpace(update.State)
	update.Address = strings.TrimSpace(update.Address)
	update.Phone = strings.TrimSpace(update.Phone)
	return s.store.UpdateVenue(ctx, id, update)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}
