package store

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/models"
)

const showSelect = `
	SELECT
		s.id, s.venue_id, s.artist_id, s.start_time,
		v.name AS venue_name, v.image_link AS venue_image_link,
		a.name AS artist_name, a.image_link AS artist_image_link,
		s.start_time >= NOW() AS upcoming
	FROM shows s
	INNER JOIN venues v ON s.venue_id = v.id
	INNER JOIN artists a ON s.artist_id = a.id
`

// CreateShow books an artist at a venue. Both must exist; the checks and the
// insert run in one transaction.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := ensureExists(ctx, tx, `SELECT id FROM venues WHERE id = $1`, show.VenueID, ErrVenueNotFound); err != nil {
			return err
		}
		if err := ensureExists(ctx, tx, `SELECT id FROM artists WHERE id = $1`, show.ArtistID, ErrArtistNotFound); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx, `
			INSERT INTO shows (venue_id, artist_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
		if err != nil {
			return wrap("insert show", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return show, nil
}

// ListShows returns every show joined with its venue and artist, oldest first.
func (s *Store) ListShows(ctx context.Context) ([]*models.ShowWithDetails, error) {
	return s.listShows(ctx, showSelect+`ORDER BY s.start_time ASC, s.id ASC`)
}

// ListShowsByVenue returns all shows at a specific venue
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]*models.ShowWithDetails, error) {
	return s.listShows(ctx, showSelect+`WHERE s.venue_id = $1 ORDER BY s.start_time ASC, s.id ASC`, venueID)
}

// ListShowsByArtist returns all shows for a specific artist
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]*models.ShowWithDetails, error) {
	return s.listShows(ctx, showSelect+`WHERE s.artist_id = $1 ORDER BY s.start_time ASC, s.id ASC`, artistID)
}

func (s *Store) listShows(ctx context.Context, query string, args ...any) ([]*models.ShowWithDetails, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("select shows", err)
	}
	defer rows.Close()

	shows := []*models.ShowWithDetails{}
	for rows.Next() {
		var sh models.ShowWithDetails
		err := rows.Scan(
			&sh.ID, &sh.VenueID, &sh.ArtistID, &sh.StartTime,
			&sh.VenueName, &sh.VenueImageLink,
			&sh.ArtistName, &sh.ArtistImageLink,
			&sh.Upcoming,
		)
		if err != nil {
			return nil, wrap("scan show", err)
		}
		shows = append(shows, &sh)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate shows", err)
	}

	return shows, nil
}

func ensureExists(ctx context.Context, tx *sql.Tx, query string, id int64, notFound error) error {
	var found int64
	err := tx.QueryRowContext(ctx, query, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return wrap("lookup", err)
	}
	return nil
}
