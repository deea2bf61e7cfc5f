package netim

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cmdb-sync/core/rest"
	"cmdb-sync/feature/devices"
	"cmdb-sync/feature/locations"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrMalformedPayload is returned when a list response has no item array.
var ErrMalformedPayload = errors.New("payload has no item list")

// Client reads the geographic hierarchy and the device and group catalog.
type Client struct {
	api    rest.Getter
	fields Fields
	logger *zap.Logger
}

// NewClient creates a client over an authenticated REST getter.
func NewClient(api rest.Getter, fields Fields, logger *zap.Logger) *Client {
	return &Client{api: api, fields: fields, logger: logger}
}

// Countries lists all countries. Entries without a name or id are skipped, so a
// later entry with the same name can be the first match when an earlier one lacks
// an id.
func (c *Client) Countries(ctx context.Context) ([]locations.Country, error) {
	items, err := c.list(ctx, "countries")
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	countries := make([]locations.Country, 0, len(items))
	for _, it := range items {
		name, id := c.nameAndID(it)
		if name == "" || id == "" {
			c.skip("country", it)
			continue
		}
		countries = append(countries, locations.Country{ID: id, Name: name})
	}
	return countries, nil
}

// RegionsByCountry lists the regions of a country. Entries without a name or id are skipped.
func (c *Client) RegionsByCountry(ctx context.Context, countryID string) ([]locations.Region, error) {
	items, err := c.list(ctx, "countries/"+url.PathEscape(countryID)+"/regions")
	if err != nil {
		return nil, fmt.Errorf("failed to list regions of country %s: %w", countryID, err)
	}

	regions := make([]locations.Region, 0, len(items))
	for _, it := range items {
		name, id := c.nameAndID(it)
		if name == "" || id == "" {
			c.skip("region", it)
			continue
		}
		regions = append(regions, locations.Region{ID: id, Name: name})
	}
	return regions, nil
}

// CitiesByRegion lists the cities of a region. Entries without a name are skipped.
func (c *Client) CitiesByRegion(ctx context.Context, regionID string) ([]locations.City, error) {
	items, err := c.list(ctx, "regions/"+url.PathEscape(regionID)+"/cities")
	if err != nil {
		return nil, fmt.Errorf("failed to list cities of region %s: %w", regionID, err)
	}

	cities := make([]locations.City, 0, len(items))
	for _, it := range items {
		name, id := c.nameAndID(it)
		if name == "" {
			c.skip("city", it)
			continue
		}
		cities = append(cities, locations.City{ID: id, Name: name})
	}
	return cities, nil
}

// Devices lists the device catalog. A response without an item list yields an
// empty catalog; request failures are returned.
func (c *Client) Devices(ctx context.Context) ([]devices.RemoteDevice, error) {
	items, err := c.list(ctx, "devices")
	if errors.Is(err, ErrMalformedPayload) {
		c.logger.Warn("Device catalog response has no item list, treating as empty")
		return []devices.RemoteDevice{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	nested := c.fields.AccessInfo + "." + c.fields.AccessAddress
	out := make([]devices.RemoteDevice, 0, len(items))
	for _, it := range items {
		out = append(out, devices.RemoteDevice{
			Name:              strings.TrimSpace(it.Get(c.fields.Name).String()),
			AccessAddress:     strings.TrimSpace(it.Get(c.fields.AccessAddress).String()),
			AccessInfoAddress: strings.TrimSpace(it.Get(nested).String()),
		})
	}
	c.logger.Info("Fetched device catalog", zap.Int("count", len(out)))
	return out, nil
}

// Groups lists the site groups. A response without an item list yields an empty
// list; request failures are returned.
func (c *Client) Groups(ctx context.Context) ([]locations.Group, error) {
	items, err := c.list(ctx, "groups")
	if errors.Is(err, ErrMalformedPayload) {
		c.logger.Warn("Group response has no item list, treating as empty")
		return []locations.Group{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	groups := make([]locations.Group, 0, len(items))
	for _, it := range items {
		name, id := c.nameAndID(it)
		if name == "" {
			c.skip("group", it)
			continue
		}
		groups = append(groups, locations.Group{ID: id, Name: name})
	}
	c.logger.Info("Fetched groups", zap.Int("count", len(groups)))
	return groups, nil
}

func (c *Client) list(ctx context.Context, path string) ([]gjson.Result, error) {
	body, err := c.api.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedPayload
	}
	items := gjson.GetBytes(body, c.fields.Items)
	if !items.IsArray() {
		return nil, ErrMalformedPayload
	}
	return items.Array(), nil
}

func (c *Client) nameAndID(it gjson.Result) (string, string) {
	return strings.TrimSpace(it.Get(c.fields.Name).String()), strings.TrimSpace(it.Get(c.fields.ID).String())
}

func (c *Client) skip(kind string, it gjson.Result) {
	c.logger.Debug("Skipping entry without required fields", zap.String("kind", kind), zap.String("entry", it.Raw))
}
