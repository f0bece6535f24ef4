package httpapi

import (
	"fmt"
	"net/http"

	"fyyur/internal/app/artists"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	list, err := s.artists.List(r.Context())
	if err != nil {
		s.fail(w, r, err, "list artists failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/artists", view{Data: list})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	var req searchForm
	if err := s.decodeForm(r, &req); err != nil {
		s.NotFound(w, r)
		return
	}

	result, err := s.artists.Search(r.Context(), req.SearchTerm)
	if err != nil {
		s.fail(w, r, err, "search artists failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/search_artists", view{SearchTerm: req.SearchTerm, Data: result})
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, r, err, "get artist failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/show_artist", view{Data: artist})
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "forms/new_artist", view{})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var req artistForm
	if err := s.decodeForm(r, &req); err != nil {
		s.redirect(w, r, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name))
		return
	}

	artist, err := s.artists.Create(r.Context(), artists.NewArtist{
		Name:  req.Name,
		City:  req.City,
		State: req.State,
		Phone: req.Phone,
	})
	if err != nil {
		s.logMutationError(r, err, "create artist failed")
		s.redirect(w, r, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name))
		return
	}

	s.redirect(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, r, err, "get artist failed")
		return
	}
	s.render(w, r, http.StatusOK, "forms/edit_artist", view{Data: artist.Artist})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	target := fmt.Sprintf("/artists/%d", id)

	var req artistForm
	if err := s.decodeForm(r, &req); err != nil {
		s.redirect(w, r, target, fmt.Sprintf("An error occurred. Artist %s's data could not be updated.", req.Name))
		return
	}

	artist, err := s.artists.Update(r.Context(), id, models.ArtistUpdate{
		Name:  req.Name,
		City:  req.City,
		State: req.State,
		Phone: req.Phone,
	})
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.logMutationError(r, err, "update artist failed")
		s.redirect(w, r, target, fmt.Sprintf("An error occurred. Artist %s's data could not be updated.", req.Name))
		return
	}

	s.redirect(w, r, target, fmt.Sprintf("Artist %s's data was successfully updated", artist.Name))
}
