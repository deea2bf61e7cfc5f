package reconcile

// Fields names the columns the asset registry uses for devices and locations.
// Loaders read records through a Fields value instead of package constants, so the
// same code serves spreadsheet exports and API payloads.
type Fields struct {
	// Profile identifies the field set (e.g., "csv", "api").
	Profile string

	DeviceName     string
	DeviceID       string
	DeviceAddress  string
	DeviceLocation string

	// AddressEmpty is the sentinel the registry writes when no address is recorded.
	AddressEmpty string

	LocationName      string
	LocationCity      string
	LocationRegion    string
	LocationCountry   string
	LocationLatitude  string
	LocationLongitude string
}

// Field profile names.
const (
	ProfileCSV = "csv"
	ProfileAPI = "api"
)

// CSVFields returns the column names of a spreadsheet export of the registry.
func CSVFields() Fields {
	return Fields{
		Profile:           ProfileCSV,
		DeviceName:        "Name",
		DeviceID:          "CI ID",
		DeviceAddress:     "IP Address",
		DeviceLocation:    "Location",
		AddressEmpty:      "#N/A",
		LocationName:      "Name",
		LocationCity:      "City",
		LocationRegion:    "State / Province",
		LocationCountry:   "Country",
		LocationLatitude:  "Latitude",
		LocationLongitude: "Longitude",
	}
}

// APIFields returns the field names of the registry's table API (and of a database
// mirror of those tables).
func APIFields() Fields {
	return Fields{
		Profile:           ProfileAPI,
		DeviceName:        "name",
		DeviceID:          "sys_id",
		DeviceAddress:     "ip_address",
		DeviceLocation:    "location",
		AddressEmpty:      "",
		LocationName:      "name",
		LocationCity:      "city",
		LocationRegion:    "state",
		LocationCountry:   "country",
		LocationLatitude:  "latitude",
		LocationLongitude: "longitude",
	}
}

// FieldsByProfile returns the field set for a profile name.
// Unknown names fall back to the CSV field set.
func FieldsByProfile(profile string) Fields {
	switch profile {
	case ProfileAPI:
		return APIFields()
	default:
		return CSVFields()
	}
}

// DeviceColumns lists the required device columns in record order
// (name, id, address, location).
func (f Fields) DeviceColumns() []string {
	return []string{f.DeviceName, f.DeviceID, f.DeviceAddress, f.DeviceLocation}
}

// LocationColumns lists the required location columns in record order
// (name, city, region, country, latitude, longitude).
func (f Fields) LocationColumns() []string {
	return []string{
		f.LocationName,
		f.LocationCity,
		f.LocationRegion,
		f.LocationCountry,
		f.LocationLatitude,
		f.LocationLongitude,
	}
}
