package store

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/models"
)

const artistSelect = `
	SELECT a.id, a.name, a.city, a.state, a.phone, a.genres,
	       a.image_link, a.facebook_link, a.website,
	       a.seeking_venues, a.seeking_description,
	       COUNT(s.id) FILTER (WHERE s.start_time < NOW()) AS past_shows_count,
	       COUNT(s.id) FILTER (WHERE s.start_time >= NOW()) AS upcoming_shows_count
	FROM artists a
	LEFT JOIN shows s ON s.artist_id = a.id
`

const artistGroupBy = `
	GROUP BY a.id
`

func scanArtist(row rowScanner) (*models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenues, &a.SeekingDescription,
		&a.PastShowsCount, &a.UpcomingShowsCount,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) listArtists(ctx context.Context, query string, args ...any) ([]*models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("select artists", err)
	}
	defer rows.Close()

	artists := []*models.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, wrap("scan artist", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate artists", err)
	}

	return artists, nil
}

// ListArtists returns every artist ordered by name.
func (s *Store) ListArtists(ctx context.Context) ([]*models.Artist, error) {
	return s.listArtists(ctx, artistSelect+artistGroupBy+`ORDER BY a.name ASC, a.id ASC`)
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]*models.Artist, error) {
	return s.listArtists(ctx,
		artistSelect+`WHERE a.name ILIKE $1 ESCAPE '\'`+artistGroupBy+`ORDER BY a.name ASC, a.id ASC`,
		containsPattern(term),
	)
}

// GetArtist retrieves a single artist by ID
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	a, err := scanArtist(s.db.QueryRowContext(ctx, artistSelect+`WHERE a.id = $1`+artistGroupBy, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, wrap("select artist", err)
	}
	return a, nil
}

// CreateArtist stores a new artist.
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website, seeking_venues, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		artist.Name, artist.City, artist.State, artist.Phone, artist.Genres, artist.ImageLink,
		artist.FacebookLink, artist.Website, artist.SeekingVenues, artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		return nil, wrap("insert artist", err)
	}

	return artist, nil
}

// UpdateArtist rewrites name, city, state and phone; every other column is left alone.
func (s *Store) UpdateArtist(ctx context.Context, id int64, update models.ArtistUpdate) (*models.Artist, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4
		WHERE id = $5
	`, update.Name, update.City, update.State, update.Phone, id)
	if err != nil {
		return nil, wrap("update artist", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, wrap("update artist", err)
	}
	if rows == 0 {
		return nil, ErrArtistNotFound
	}

	return s.GetArtist(ctx, id)
}
