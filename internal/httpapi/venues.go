package httpapi

import (
	"fmt"
	"net/http"

	"fyyur/internal/app/venues"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.List(r.Context())
	if err != nil {
		s.fail(w, r, err, "list venues failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/venues", view{Data: areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	var req searchForm
	if err := s.decodeForm(r, &req); err != nil {
		s.NotFound(w, r)
		return
	}

	result, err := s.venues.Search(r.Context(), req.SearchTerm)
	if err != nil {
		s.fail(w, r, err, "search venues failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/search_venues", view{SearchTerm: req.SearchTerm, Data: result})
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, r, err, "get venue failed")
		return
	}
	s.render(w, r, http.StatusOK, "pages/show_venue", view{Data: venue})
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "forms/new_venue", view{})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var req venueForm
	if err := s.decodeForm(r, &req); err != nil {
		s.redirect(w, r, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name))
		return
	}

	venue, err := s.venues.Create(r.Context(), venues.NewVenue{
		Name:    req.Name,
		City:    req.City,
		State:   req.State,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		s.logMutationError(r, err, "create venue failed")
		s.redirect(w, r, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name))
		return
	}

	s.redirect(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

// handleDeleteVenue answers with an empty 200; the page issuing the DELETE
// navigates on its own and picks up the flash.
func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	err := s.venues.Delete(r.Context(), id)
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.logMutationError(r, err, "delete venue failed")
		setFlash(w, "An error occurred. Venue could not be deleted.")
		w.WriteHeader(http.StatusOK)
		return
	}

	setFlash(w, "Venue was successfully deleted!")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.fail(w, r, err, "get venue failed")
		return
	}
	s.render(w, r, http.StatusOK, "forms/edit_venue", view{Data: venue.Venue})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	target := fmt.Sprintf("/venues/%d", id)

	var req venueForm
	if err := s.decodeForm(r, &req); err != nil {
		s.redirect(w, r, target, fmt.Sprintf("An error occurred. Venue %s's data could not be updated.", req.Name))
		return
	}

	venue, err := s.venues.Update(r.Context(), id, models.VenueUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		City:    req.City,
		State:   req.State,
		Address: req.Address,
	})
	if store.IsNotFound(err) {
		s.NotFound(w, r)
		return
	}
	if err != nil {
		s.logMutationError(r, err, "update venue failed")
		s.redirect(w, r, target, fmt.Sprintf("An error occurred. Venue %s's data could not be updated.", req.Name))
		return
	}

	s.redirect(w, r, target, fmt.Sprintf("Venue %s's data was successfully updated", venue.Name))
}
