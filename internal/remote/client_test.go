package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/api"
	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/model"
	"github.com/pkordes/big-trip/internal/remote"
)

// compile-time checks: the remote collections are the stores' sources.
var (
	_ model.PointsSource       = (*remote.Points)(nil)
	_ model.DestinationsSource = (*remote.Destinations)(nil)
	_ model.OffersSource       = (*remote.Offers)(nil)
)

const auth = "Basic er883jdzbdw"

// ---- helpers ---------------------------------------------------------------

// newClient starts an httptest server running h and returns a client for it.
func newClient(t *testing.T, h http.HandlerFunc) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := remote.New(srv.URL+"/", remote.Options{Authorization: auth, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func wirePoint() api.Point {
	return api.Point{
		ID:          "p1",
		Type:        "taxi",
		Destination: "d1",
		BasePrice:   20,
		DateFrom:    time.Date(2025, 7, 10, 22, 55, 0, 0, time.UTC),
		DateTo:      time.Date(2025, 7, 11, 11, 22, 0, 0, time.UTC),
		Offers:      []string{"o1"},
	}
}

// ---- construction ----------------------------------------------------------

func TestNew_RejectsNonHTTPURL(t *testing.T) {
	_, err := remote.New("ftp://example.test", remote.Options{})
	assert.Error(t, err)
}

// ---- points ----------------------------------------------------------------

func TestPoints_FetchAll(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/points", r.URL.Path)
		assert.Equal(t, auth, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []api.Point{wirePoint()})
	})

	got, err := c.Points().FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, domain.TypeTaxi, got[0].Type)
	assert.Equal(t, []string{"o1"}, got[0].OfferIDs)
}

func TestPoints_Create_SendsNoID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "id")
		assert.EqualValues(t, 20, raw["base_price"])

		created := wirePoint()
		created.ID = "server-id"
		writeJSON(w, http.StatusCreated, created)
	})

	p := wirePoint().Domain()
	p.ID = "local"
	got, err := c.Points().Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "server-id", got.ID)
}

func TestPoints_Update(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/points/p1", r.URL.Path)
		var body api.Point
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.IsFavorite)
		writeJSON(w, http.StatusOK, body)
	})

	p := wirePoint().Domain()
	p.IsFavorite = true
	got, err := c.Points().Update(context.Background(), "p1", p)

	require.NoError(t, err)
	assert.True(t, got.IsFavorite)
}

func TestPoints_Delete(t *testing.T) {
	var called bool
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/points/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Points().Delete(context.Background(), "p1"))
	assert.True(t, called)
}

// ---- errors ----------------------------------------------------------------

func TestStatusError_MapsEnvelope(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: api.ErrorDetail{Code: "not_found", Message: "point not found"}})
	})

	err := c.Points().Delete(context.Background(), "gone")

	require.ErrorIs(t, err, domain.ErrNotFound)
	var se *remote.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "not_found", se.Code)
	assert.Equal(t, "point not found", se.Message)
	assert.True(t, remote.IsStatus(err, http.StatusNotFound))
}

func TestStatusError_PlainBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down\n")
	})

	_, err := c.Destinations().FetchAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502 upstream down")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusError_ValidationMapsToSentinel(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{Error: api.ErrorDetail{Code: "validation_error", Message: "bad"}})
	})

	_, err := c.Points().Create(context.Background(), wirePoint().Domain())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClient_RespectsContext(t *testing.T) {
	block := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Offers().FetchAll(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ---- catalog ---------------------------------------------------------------

func TestCatalog_FetchAll(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/destinations":
			writeJSON(w, http.StatusOK, []api.Destination{{ID: "d1", Name: "Geneva", Pictures: []api.Picture{}}})
		case "/offers":
			writeJSON(w, http.StatusOK, []api.OfferGroup{{Type: "bus", Offers: []api.Offer{{ID: "o1", Title: "Wi-Fi", Price: 5}}}})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	destinations, err := c.Destinations().FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Destination{{ID: "d1", Name: "Geneva"}}, destinations)

	offers, err := c.Offers().FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, domain.TypeBus, offers[0].Type)
	assert.Equal(t, 5, offers[0].Offers[0].Price)
}
