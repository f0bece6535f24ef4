package store

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/models"
)

const venueSelect = `
	SELECT v.id, v.area_id, v.name, v.city, v.state, v.address, v.phone,
	       v.image_link, v.facebook_link, v.genres, v.website,
	       v.seeking_talent, v.seeking_description,
	       COUNT(s.id) FILTER (WHERE s.start_time < NOW()) AS past_shows_count,
	       COUNT(s.id) FILTER (WHERE s.start_time >= NOW()) AS upcoming_shows_count
	FROM venues v
	LEFT JOIN shows s ON s.venue_id = v.id
`

const venueGroupBy = `
	GROUP BY v.id
`

func scanVenue(row rowScanner) (*models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID, &v.AreaID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Genres, &v.Website,
		&v.SeekingTalent, &v.SeekingDescription,
		&v.PastShowsCount, &v.UpcomingShowsCount,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) listVenues(ctx context.Context, query string, args ...any) ([]*models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("select venues", err)
	}
	defer rows.Close()

	venues := []*models.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, wrap("scan venue", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate venues", err)
	}

	return venues, nil
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]*models.Venue, error) {
	return s.listVenues(ctx,
		venueSelect+`WHERE v.name ILIKE $1 ESCAPE '\'`+venueGroupBy+`ORDER BY v.name ASC, v.id ASC`,
		containsPattern(term),
	)
}

// GetVenue retrieves a single venue by ID
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	v, err := scanVenue(s.db.QueryRowContext(ctx, venueSelect+`WHERE v.id = $1`+venueGroupBy, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, wrap("select venue", err)
	}
	return v, nil
}

// CreateVenue stores a new venue, creating the area for its city/state first
// when none exists. Both writes share one transaction.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		areaID, err := findOrCreateArea(ctx, tx, venue.City, venue.State)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO venues (area_id, name, city, state, address, phone,
			                    image_link, facebook_link, genres, website,
			                    seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`,
			areaID, venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
			venue.ImageLink, venue.FacebookLink, venue.Genres, venue.Website,
			venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venue.ID)
		if err != nil {
			return wrap("insert venue", err)
		}

		venue.AreaID = areaID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return venue, nil
}

// UpdateVenue rewrites the editable fields of a venue. The venue moves to the
// area matching its new city/state.
func (s *Store) UpdateVenue(ctx context.Context, id int64, update models.VenueUpdate) (*models.Venue, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		areaID, err := findOrCreateArea(ctx, tx, update.City, update.State)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE venues
			SET name = $1, phone = $2, city = $3, state = $4, address = $5, area_id = $6
			WHERE id = $7
		`, update.Name, update.Phone, update.City, update.State, update.Address, areaID, id)
		if err != nil {
			return wrap("update venue", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return wrap("update venue", err)
		}
		if rows == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetVenue(ctx, id)
}

// DeleteVenue removes a venue and, through the foreign key, its shows.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return wrap("delete venue", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrap("delete venue", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	return nil
}
