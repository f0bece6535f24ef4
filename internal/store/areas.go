package store

import (
	"context"
	"database/sql"
	"errors"

	"fyyur/internal/models"
)

// GetArea looks up the area for an exact city/state pair.
func (s *Store) GetArea(ctx context.Context, city, state string) (*models.Area, error) {
	area, err := getArea(ctx, s.db, city, state)
	if err != nil {
		return nil, wrap("select area", err)
	}
	return area, nil
}

// ListAreas returns every area with its venues nested, ordered by state then city.
func (s *Store) ListAreas(ctx context.Context) ([]*models.AreaWithVenues, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, city, state
		FROM areas
		ORDER BY state ASC, city ASC
	`)
	if err != nil {
		return nil, wrap("select areas", err)
	}
	defer rows.Close()

	areas := []*models.AreaWithVenues{}
	byID := make(map[int64]*models.AreaWithVenues)
	for rows.Next() {
		a := &models.AreaWithVenues{Venues: []*models.Venue{}}
		if err := rows.Scan(&a.ID, &a.City, &a.State); err != nil {
			return nil, wrap("scan area", err)
		}
		areas = append(areas, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate areas", err)
	}

	venues, err := s.listVenues(ctx, venueSelect+venueGroupBy+` ORDER BY v.name ASC, v.id ASC`)
	if err != nil {
		return nil, err
	}
	for _, v := range venues {
		if a, ok := byID[v.AreaID]; ok {
			a.Venues = append(a.Venues, v)
		}
	}

	return areas, nil
}

func getArea(ctx context.Context, q queryRower, city, state string) (*models.Area, error) {
	var a models.Area
	err := q.QueryRowContext(ctx, `
		SELECT id, city, state
		FROM areas
		WHERE city = $1 AND state = $2
	`, city, state).Scan(&a.ID, &a.City, &a.State)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// findOrCreateArea resolves the area id for city/state, inserting the area
// when it does not exist yet. A concurrent insert of the same pair is absorbed
// by the unique constraint and re-read.
func findOrCreateArea(ctx context.Context, tx *sql.Tx, city, state string) (int64, error) {
	area, err := getArea(ctx, tx, city, state)
	if err == nil {
		return area.ID, nil
	}
	if !errors.Is(err, ErrAreaNotFound) {
		return 0, wrap("select area", err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO areas (city, state)
		VALUES ($1, $2)
		ON CONFLICT (city, state) DO NOTHING
		RETURNING id
	`, city, state).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		area, err = getArea(ctx, tx, city, state)
		if err != nil {
			return 0, wrap("reselect area", err)
		}
		return area.ID, nil
	}
	if err != nil {
		return 0, wrap("insert area", err)
	}
	return id, nil
}
