package registry

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"cmdb-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGetter struct {
	responses map[string][]byte
	errs      map[string]error
	queries   map[string]url.Values
}

func (s *stubGetter) Get(_ context.Context, path string, query url.Values) ([]byte, error) {
	if s.queries == nil {
		s.queries = map[string]url.Values{}
	}
	s.queries[path] = query
	if err, ok := s.errs[path]; ok {
		return nil, err
	}
	return s.responses[path], nil
}

const ciResponse = `{"result":[
 {"name":{"display_value":"core-sw1","value":"core-sw1"},"sys_id":{"display_value":"a1","value":"a1"},
  "ip_address":{"display_value":"10.0.0.1","value":"10.0.0.1"},"location":{"display_value":"Boston","value":"loc1"},
  "category":{"display_value":"Hardware","value":"Hardware"}},
 {"name":{"display_value":"crm-app","value":"crm-app"},"sys_id":{"display_value":"a2","value":"a2"},
  "ip_address":{"display_value":"10.0.0.2","value":"10.0.0.2"},"location":{"display_value":"Boston","value":"loc1"},
  "category":{"display_value":"Software","value":"Software"}},
 {"name":{"display_value":"","value":""},"sys_id":{"display_value":"a3","value":"a3"},
  "category":{"display_value":"Hardware","value":"Hardware"}}
]}`

const locationResponse = `{"result":[
 {"name":"Boston","city":"Boston","state":"Massachusetts","country":"United States","latitude":"42.36","longitude":"-71.06"}
]}`

func TestAPISource_Load(t *testing.T) {
	getter := &stubGetter{responses: map[string][]byte{
		DevicesTablePath:   []byte(ciResponse),
		LocationsTablePath: []byte(locationResponse),
	}}
	include := []Filter{{Name: "category", Value: "Hardware"}}

	src := NewAPISource(getter, include, nil, reconcile.APIFields(), zap.NewNop())
	assert.Equal(t, "api", src.Name())

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []DeviceRecord{
		{Name: "core-sw1", CMDBID: "a1", Address: "10.0.0.1", Location: "Boston"},
	}, snap.Devices)
	assert.Equal(t, []LocationRecord{
		{Name: "Boston", City: "Boston", Region: "Massachusetts", Country: "United States", Latitude: "42.36", Longitude: "-71.06"},
	}, snap.Locations)
	assert.Equal(t, "all", getter.queries[DevicesTablePath].Get("sysparm_display_value"))
}

func TestAPISource_Errors(t *testing.T) {
	t.Run("DeviceRequestFails", func(t *testing.T) {
		getter := &stubGetter{errs: map[string]error{DevicesTablePath: errors.New("timeout")}}
		_, err := NewAPISource(getter, nil, nil, reconcile.APIFields(), zap.NewNop()).Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("MalformedLocations", func(t *testing.T) {
		getter := &stubGetter{responses: map[string][]byte{
			DevicesTablePath:   []byte(ciResponse),
			LocationsTablePath: []byte(`{"result":{"error":"x"}}`),
		}}
		_, err := NewAPISource(getter, nil, nil, reconcile.APIFields(), zap.NewNop()).Load(context.Background())
		assert.Error(t, err)
	})
}

func TestParseTableRecords(t *testing.T) {
	t.Run("Wrapped", func(t *testing.T) {
		records, err := parseTableRecords([]byte(`{"result":[{"name":"a"},{"name":"b"},3]}`))
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("BareArray", func(t *testing.T) {
		records, err := parseTableRecords([]byte(`[{"name":"a"}]`))
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := parseTableRecords([]byte(`not json`))
		assert.Error(t, err)
	})
}
