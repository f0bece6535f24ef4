package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindConstraint},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: KindConstraint},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, want: KindUnavailable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: KindUnavailable},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: KindInternal},
		{name: "bad connection", err: driver.ErrBadConn, want: KindUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: KindUnavailable},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := wrap("op", fmt.Errorf("context: %w", tc.err))
			if got := KindOf(err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapKeepsNotFoundSentinels(t *testing.T) {
	err := wrap("select venue", ErrVenueNotFound)
	if err != ErrVenueNotFound {
		t.Fatalf("expected sentinel to pass through, got %v", err)
	}
	if KindOf(err) != KindInternal {
		t.Fatalf("expected sentinel to carry no kind")
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"a":       "%a%",
		"":        "%%",
		"100%":    `%100\%%`,
		`a_b\c`:   `%a\_b\\c%`,
		"Hop Hop": "%Hop Hop%",
	}
	for term, want := range tests {
		if got := containsPattern(term); got != want {
			t.Fatalf("containsPattern(%q) = %q, want %q", term, got, want)
		}
	}
}
