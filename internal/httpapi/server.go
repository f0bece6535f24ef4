package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

// VenueService coordinates venue listings and their areas.
type VenueService interface {
	List(ctx context.Context) ([]*models.AreaWithVenues, error)
	Search(ctx context.Context, term string) (models.SearchResult[*models.Venue], error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, input venues.NewVenue) (*models.Venue, error)
	Update(ctx context.Context, id int64, update models.VenueUpdate) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes artist listing workflows.
type ArtistService interface {
	List(ctx context.Context) ([]*models.Artist, error)
	Search(ctx context.Context, term string) (models.SearchResult[*models.Artist], error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, input artists.NewArtist) (*models.Artist, error)
	Update(ctx context.Context, id int64, update models.ArtistUpdate) (*models.Artist, error)
}

// ShowService coordinates show scheduling.
type ShowService interface {
	List(ctx context.Context) ([]*models.ShowWithDetails, error)
	Create(ctx context.Context, input shows.NewShow) (*models.Show, error)
}

// Renderer executes a named page template.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	views   Renderer
	log     zerolog.Logger

	decoder  *form.Decoder
	validate *validator.Validate
}

// New configures a Server with the given services and page renderer.
func New(venues VenueService, artists ArtistService, shows ShowService, views Renderer, logger zerolog.Logger) *Server {
	return &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		views:    views,
		log:      logger,
		decoder:  form.NewDecoder(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes exposes the HTTP handlers of the booking directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", s.handleHome)

	// Venue routes
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleGetVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleUpdateVenue)

	// Artist routes
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleGetArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleUpdateArtist)

	// Show routes
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	mux.HandleFunc("/", s.NotFound)

	return mux
}

// view is the data every page template receives.
type view struct {
	Flash      string
	SearchTerm string
	Data       any
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "pages/home", view{})
}

// NotFound renders the 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "errors/404", view{})
}

// ServerError renders the 500 page.
func (s *Server) ServerError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "errors/500", view{})
}

// fail logs an unexpected error and renders the 500 page.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	s.logger(r).Error().Err(err).Str("kind", store.KindOf(err).String()).Msg(msg)
	s.ServerError(w, r)
}

// render executes a page into a buffer first so a template failure can still
// produce a clean error response. The pending flash is consumed here.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, v view) {
	v.Flash = popFlash(w, r)

	var buf bytes.Buffer
	if err := s.views.Render(&buf, name, v); err != nil {
		s.logger(r).Error().Err(err).Str("template", name).Msg("render page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirect stores msg as the next page's flash and answers with a 303.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, to, msg string) {
	setFlash(w, msg)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// logMutationError records a swallowed persistence failure before the user
// sees the generic failure flash.
func (s *Server) logMutationError(r *http.Request, err error, msg string) {
	s.logger(r).Error().Err(err).Str("kind", store.KindOf(err).String()).Msg(msg)
}

func (s *Server) logger(r *http.Request) *zerolog.Logger {
	l := s.log
	if id := logging.RequestID(r.Context()); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}

func (s *Server) decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return s.decoder.Decode(dst, r.PostForm)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
