package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrAreaNotFound signals no area exists for a city/state pair.
	ErrAreaNotFound = errors.New("area not found")
	// ErrVenueNotFound signals the venue id does not exist.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound signals the artist id does not exist.
	ErrArtistNotFound = errors.New("artist not found")
)

// Kind categorises persistence failures.
type Kind int

const (
	// KindInternal covers failures that are neither constraint nor connectivity problems.
	KindInternal Kind = iota
	// KindConstraint is an integrity violation (Postgres SQLSTATE class 23).
	KindConstraint
	// KindUnavailable means the database could not be reached or the request was cut short.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error is a categorised persistence failure.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the category of err. Errors that did not come from the
// persistence layer are reported as KindInternal.
func KindOf(err error) Kind {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is one of the lookup-absence sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAreaNotFound) ||
		errors.Is(err, ErrVenueNotFound) ||
		errors.Is(err, ErrArtistNotFound)
}

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// inTx runs fn inside a transaction, committing when fn succeeds and rolling
// back on every other path.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrap("begin tx", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrap("commit tx", err)
	}
	tx = nil

	return nil
}

// wrap attaches op and a Kind to err. Not-found sentinels pass through
// unchanged so callers can keep matching them with errors.Is.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) {
		return err
	}
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return err
	}
	return &Error{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return KindConstraint
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return KindUnavailable
		default:
			return KindInternal
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return KindUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUnavailable
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return KindUnavailable
	}

	return KindInternal
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally anywhere in a value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
