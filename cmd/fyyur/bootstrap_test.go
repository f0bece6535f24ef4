package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fyyur/internal/store"
)

func TestSeedDemoDataPopulatesEmptyStore(t *testing.T) {
	mem := store.NewMemory()
	svc := newServices(mem)

	require.NoError(t, seedDemoData(context.Background(), svc))

	areas, venues, artists, shows := mem.Counts()
	require.Equal(t, 2, areas)
	require.Equal(t, 3, venues)
	require.Equal(t, 3, artists)
	require.Equal(t, 5, shows)

	list, err := svc.shows.List(context.Background())
	require.NoError(t, err)
	upcoming := 0
	for _, s := range list {
		if s.Upcoming {
			upcoming++
		}
	}
	require.Equal(t, 3, upcoming)
}

func TestSeedDemoDataSkipsPopulatedStore(t *testing.T) {
	mem := store.NewMemory()
	svc := newServices(mem)
	ctx := context.Background()

	require.NoError(t, seedDemoData(ctx, svc))
	require.NoError(t, seedDemoData(ctx, svc))

	_, venues, _, shows := mem.Counts()
	require.Equal(t, 3, venues)
	require.Equal(t, 5, shows)
}
