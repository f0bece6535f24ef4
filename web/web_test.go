package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"fyyur/internal/models"
)

type page struct {
	Flash      string
	SearchTerm string
	Data       any
}

func TestLoadParsesEveryPage(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	for _, name := range []string{
		"pages/home", "pages/venues", "pages/search_venues", "pages/show_venue",
		"pages/artists", "pages/search_artists", "pages/show_artist", "pages/shows",
		"forms/new_venue", "forms/edit_venue", "forms/new_artist", "forms/edit_artist", "forms/new_show",
		"errors/404", "errors/500",
	} {
		if _, ok := tmpl.pages[name]; !ok {
			t.Errorf("expected page %q to be loaded", name)
		}
	}
}

func TestRenderVenueDetail(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	start := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)
	detail := &models.VenueDetail{
		Venue: &models.Venue{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", UpcomingShowsCount: 1, SeekingTalent: true},
		UpcomingShows: []*models.ShowWithDetails{{
			Show:       models.Show{ID: 1, VenueID: 3, ArtistID: 2, StartTime: start},
			ArtistName: "Matt Quevedo",
			Upcoming:   true,
		}},
	}

	var buf bytes.Buffer
	if err := tmpl.Render(&buf, "pages/show_venue", page{Flash: "Venue was listed", Data: detail}); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<title>The Dueling Pianos Bar | Fyyur</title>",
		"Venue was listed",
		"1 Upcoming Shows",
		"Matt Quevedo",
		"Sunday April, 1, 2035 at 8:00PM",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRenderSearchEscapesTerm(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	result := models.NewSearchResult([]*models.Artist{{ID: 1, Name: "Guns N Petals"}})
	var buf bytes.Buffer
	if err := tmpl.Render(&buf, "pages/search_artists", page{SearchTerm: "<b>", Data: result}); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<b>") {
		t.Fatalf("expected search term to be escaped")
	}
	if !strings.Contains(out, ": 1</h3>") {
		t.Fatalf("expected result count in output")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := tmpl.Render(&bytes.Buffer{}, "pages/missing", nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)
	if got := FormatDatetime(ts, "full"); got != "Tuesday May, 21, 2019 at 9:30PM" {
		t.Fatalf("full = %q", got)
	}
	if got := FormatDatetime(ts, "medium"); got != "Tue 05, 21, 2019 9:30PM" {
		t.Fatalf("medium = %q", got)
	}
}
