package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
)

// seedDemoData lists a handful of venues, artists and shows when the directory
// is empty.
func seedDemoData(ctx context.Context, svc services) error {
	areas, err := svc.venues.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing venues: %w", err)
	}
	if len(areas) > 0 {
		return nil
	}

	venueIDs := make([]int64, 0, 3)
	for _, v := range []venues.NewVenue{
		{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street", Phone: "123-123-1234"},
		{Name: "The Dueling Pianos Bar", City: "New York", State: "NY", Address: "335 Delancey Street", Phone: "914-003-1132"},
		{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave", Phone: "415-000-1234"},
	} {
		created, err := svc.venues.Create(ctx, v)
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs = append(venueIDs, created.ID)
	}

	artistIDs := make([]int64, 0, 3)
	for _, a := range []artists.NewArtist{
		{Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000"},
		{Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000"},
		{Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Phone: "432-325-5432"},
	} {
		created, err := svc.artists.Create(ctx, a)
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs = append(artistIDs, created.ID)
	}

	now := time.Now().UTC().Truncate(time.Hour)
	for _, s := range []shows.NewShow{
		{VenueID: venueIDs[0], ArtistID: artistIDs[0], StartTime: now.AddDate(0, -2, 0)},
		{VenueID: venueIDs[2], ArtistID: artistIDs[1], StartTime: now.AddDate(0, -1, 0)},
		{VenueID: venueIDs[2], ArtistID: artistIDs[2], StartTime: now.AddDate(0, 1, 0)},
		{VenueID: venueIDs[2], ArtistID: artistIDs[2], StartTime: now.AddDate(0, 1, 7)},
		{VenueID: venueIDs[1], ArtistID: artistIDs[2], StartTime: now.AddDate(0, 2, 0)},
	} {
		if _, err := svc.shows.Create(ctx, s); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	log.Info().Int("venues", len(venueIDs)).Int("artists", len(artistIDs)).Msg("seeded demo data")
	return nil
}
