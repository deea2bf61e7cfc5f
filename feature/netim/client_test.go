package netim

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cmdb-sync/core/rest"
	"cmdb-sync/feature/devices"
	"cmdb-sync/feature/locations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAPI struct {
	bodies map[string]string
	err    error
	paths  []string
}

func (s *stubAPI) Get(_ context.Context, path string, _ url.Values) ([]byte, error) {
	s.paths = append(s.paths, path)
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.bodies[path]), nil
}

func newTestClient(api rest.Getter) *Client {
	return NewClient(api, DefaultFields(), zap.NewNop())
}

func TestClient_Hierarchy(t *testing.T) {
	api := &stubAPI{bodies: map[string]string{
		"countries":            `{"items":[{"id":1,"name":"USA"},{"id":2,"name":" Canada "},{"name":"NoID"},{"id":4}]}`,
		"countries/1/regions":  `{"items":[{"id":"10","name":"CA"},{"id":"11"}]}`,
		"regions/10/cities":    `{"items":[{"name":"San Jose"},{"id":5},{"id":6,"name":"Fresno"}]}`,
		"regions/a%2Fb/cities": `{"items":[]}`,
	}}
	c := newTestClient(api)
	ctx := context.Background()

	countries, err := c.Countries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []locations.Country{{ID: "1", Name: "USA"}, {ID: "2", Name: "Canada"}}, countries)

	regions, err := c.RegionsByCountry(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []locations.Region{{ID: "10", Name: "CA"}}, regions)

	cities, err := c.CitiesByRegion(ctx, "10")
	require.NoError(t, err)
	assert.Equal(t, []locations.City{{Name: "San Jose"}, {ID: "6", Name: "Fresno"}}, cities)

	cities, err = c.CitiesByRegion(ctx, "a/b")
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestClient_HierarchyMalformed(t *testing.T) {
	api := &stubAPI{bodies: map[string]string{
		"countries":           `{"error":"nope"}`,
		"countries/1/regions": `not json`,
	}}
	c := newTestClient(api)

	_, err := c.Countries(context.Background())
	assert.True(t, errors.Is(err, ErrMalformedPayload))

	_, err = c.RegionsByCountry(context.Background(), "1")
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

func TestClient_Devices(t *testing.T) {
	api := &stubAPI{bodies: map[string]string{
		"devices": `{"items":[
			{"name":"core-sw1","accessAddress":" 10.0.0.1 "},
			{"name":"edge-rtr","deviceAccessInfo":{"accessAddress":"10.0.0.2"}},
			{"accessAddress":"10.0.0.3"}
		]}`,
	}}

	list, err := newTestClient(api).Devices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []devices.RemoteDevice{
		{Name: "core-sw1", AccessAddress: "10.0.0.1"},
		{Name: "edge-rtr", AccessInfoAddress: "10.0.0.2"},
		{AccessAddress: "10.0.0.3"},
	}, list)
}

func TestClient_CatalogMalformedIsEmpty(t *testing.T) {
	api := &stubAPI{bodies: map[string]string{"devices": `{}`, "groups": `[]`}}
	c := newTestClient(api)

	list, err := c.Devices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	groups, err := c.Groups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestClient_CatalogErrorsAbort(t *testing.T) {
	c := newTestClient(&stubAPI{err: errors.New("connection refused")})

	_, err := c.Devices(context.Background())
	assert.Error(t, err)

	_, err = c.Groups(context.Background())
	assert.Error(t, err)
}

func TestClient_Groups(t *testing.T) {
	api := &stubAPI{bodies: map[string]string{
		"groups": `{"items":[{"id":"g1","name":"Boston"},{"id":"g2","name":""},{"id":"g3","name":"Denver"}]}`,
	}}

	groups, err := newTestClient(api).Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []locations.Group{{ID: "g1", Name: "Boston"}, {ID: "g3", Name: "Denver"}}, groups)
}

func TestClient_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		if user != "admin" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/api/netim/v1/countries", r.URL.Path)
		w.Write([]byte(`{"items":[{"id":1,"name":"USA"}]}`))
	}))
	defer srv.Close()

	api, err := rest.NewClient(rest.Config{BaseURL: srv.URL + "/api/netim/v1", Username: "admin", Password: "x"})
	require.NoError(t, err)

	countries, err := newTestClient(api).Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []locations.Country{{ID: "1", Name: "USA"}}, countries)

	bad, err := rest.NewClient(rest.Config{BaseURL: srv.URL + "/api/netim/v1", Username: "guest"})
	require.NoError(t, err)
	_, err = newTestClient(bad).Devices(context.Background())
	assert.True(t, errors.Is(err, rest.ErrUnauthorized))
}
