package httpapi

import (
	"net/http"

	"fyyur/internal/app/shows"
)

const (
	showListed = "Show was successfully listed!"
	showFailed = "An error occurred. Show could not be listed!"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	list, err := s.shows.List(r.Context())
	if err != nil {
		s.fail(w, r, err, "list shows failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/shows", view{Data: list})
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "forms/new_show", view{})
}

// handleCreateShow schedules a show. Invalid input, unknown venues or artists
// and persistence failures all end in the failure flash.
func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req showForm
	if err := s.decodeForm(r, &req); err != nil {
		s.logger(r).Warn().Err(err).Msg("decode show form failed")
		s.redirect(w, r, "/", showFailed)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.logger(r).Warn().Err(err).Msg("invalid show form")
		s.redirect(w, r, "/", showFailed)
		return
	}
	start, err := parseStartTime(req.StartTime)
	if err != nil {
		s.logger(r).Warn().Err(err).Str("start_time", req.StartTime).Msg("invalid show form")
		s.redirect(w, r, "/", showFailed)
		return
	}

	_, err = s.shows.Create(r.Context(), shows.NewShow{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: start,
	})
	if err != nil {
		s.logMutationError(r, err, "create show failed")
		s.redirect(w, r, "/", showFailed)
		return
	}

	s.redirect(w, r, "/", showListed)
}
