package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearchService(flights *fakeFlights) *searchService {
	n := NewItineraryNormalizer(flights, NewFallbackGenerator(&scriptedRandom{}), time.UTC, nopLog)
	return NewSearchService(n, repository.NewMemorySessionStore(), nopLog).(*searchService)
}

func TestSearchSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestSearchService(&fakeFlights{})

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(StateSearching), session.State)
	assert.Empty(t, session.Itineraries)

	submitted := *criteria("del", "bom")
	results, err := svc.Submit(ctx, session.ID, submitted)
	require.NoError(t, err)
	assert.Equal(t, string(StateResults), results.State)
	assert.False(t, results.Loading)
	assert.Equal(t, "DEL", results.Criteria.Origin)
	assert.Equal(t, string(SourceFallback), results.Source)
	assert.Len(t, results.Itineraries, 4)

	_, err = svc.Submit(ctx, session.ID, submitted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	back, err := svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, string(StateSearching), back.State)
	assert.Nil(t, back.Criteria)
	assert.Empty(t, back.Itineraries)

	again, err := svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, string(StateSearching), again.State)
}

func TestSearchSubmitValidatesCriteria(t *testing.T) {
	ctx := context.Background()
	svc := newTestSearchService(&fakeFlights{})
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, entity.SearchCriteria{Origin: "DELHI", TripType: "hyperloop"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "origin")
	assert.Contains(t, verr.Fields, "trip_type")
	assert.Contains(t, verr.Fields, "fare_class")

	current, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, string(StateSearching), current.State)
}

func TestSearchSubmitDropsReturnDateForOneWay(t *testing.T) {
	ctx := context.Background()
	svc := newTestSearchService(&fakeFlights{})
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	c := *criteria("DEL", "BOM")
	c.ReturnDate = "2026-04-01"
	got, err := svc.Submit(ctx, session.ID, c)
	require.NoError(t, err)
	assert.Empty(t, got.Criteria.ReturnDate)
}

func TestSearchStaleResultIsDiscarded(t *testing.T) {
	ctx := context.Background()
	flights := &fakeFlights{
		rows:    []*entity.Flight{flightRow(1, "SY101", intPtr(4000), time.Now())},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestSearchService(flights)
	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	type result struct {
		view *response.SearchSessionResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		view, err := svc.Submit(ctx, session.ID, *criteria("DEL", "BOM"))
		done <- result{view, err}
	}()

	<-flights.started
	loading, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, loading.Loading)

	_, err = svc.Back(ctx, session.ID)
	require.NoError(t, err)
	close(flights.release)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, string(StateSearching), res.view.State)
	assert.Empty(t, res.view.Itineraries)

	final, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, final.Itineraries)
}

func TestSearchSessionIdleEviction(t *testing.T) {
	ctx := context.Background()
	svc := newTestSearchService(&fakeFlights{})
	svc.idleTTL = 20 * time.Millisecond

	old, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := svc.GetSession(ctx, old.ID)
		return errors.Is(err, ErrNotFound)
	}, time.Second, 10*time.Millisecond)
}

func TestSearchSessionsShareStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemorySessionStore()
	n := NewItineraryNormalizer(&fakeFlights{}, NewFallbackGenerator(&scriptedRandom{}), time.UTC, nopLog)
	first := NewSearchService(n, store, nopLog)
	second := NewSearchService(n, store, nopLog)

	session, err := first.CreateSession(ctx)
	require.NoError(t, err)

	results, err := second.Submit(ctx, session.ID, *criteria("DEL", "BOM"))
	require.NoError(t, err)
	assert.Equal(t, string(StateResults), results.State)

	seen, err := first.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, string(StateResults), seen.State)
	assert.Len(t, seen.Itineraries, 4)
}

func TestStatelessSearch(t *testing.T) {
	svc := newTestSearchService(&fakeFlights{rows: []*entity.Flight{flightRow(5, "SY500", nil, time.Now())}})

	got, err := svc.Search(context.Background(), criteria("DEL", "BOM"))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, string(SourceInventory), got.Source)

	fallback, err := svc.Search(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, fallback.Count)

	assert.Len(t, svc.Cities(), 8)
}
