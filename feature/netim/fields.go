package netim

// Fields names the JSON fields of the monitoring platform's API payloads.
type Fields struct {
	// Items is the array holding the entries of a list response.
	Items string
	Name  string
	ID    string
	// AccessAddress is the device's top-level access address.
	AccessAddress string
	// AccessInfo is the nested object that may carry an access address instead.
	AccessInfo string
}

// DefaultFields returns the field names of the NetIM REST API.
func DefaultFields() Fields {
	return Fields{
		Items:         "items",
		Name:          "name",
		ID:            "id",
		AccessAddress: "accessAddress",
		AccessInfo:    "deviceAccessInfo",
	}
}
