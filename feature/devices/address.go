package devices

import (
	"strconv"
	"strings"
)

// ValidAddress reports whether addr can be used as a monitoring access address.
//
// IPv4 addresses need four canonical decimal octets in 0-255 (no leading zeros or
// signs), a last octet other than 255, and must not be 0.0.0.0 or 127.0.0.1.
// IPv6 addresses need all eight colon-separated groups; a group may be empty or
// hold up to four hex digits.
func ValidAddress(addr string) bool {
	return validIPv4(addr) || validIPv6(addr)
}

func validIPv4(addr string) bool {
	octets := strings.Split(addr, ".")
	if len(octets) != 4 {
		return false
	}
	for _, octet := range octets {
		n, err := strconv.Atoi(octet)
		if err != nil || strconv.Itoa(n) != octet || n < 0 || n > 255 {
			return false
		}
	}
	// broadcast addresses cannot be used for access
	if octets[3] == "255" {
		return false
	}
	return addr != "0.0.0.0" && addr != "127.0.0.1"
}

func validIPv6(addr string) bool {
	groups := strings.Split(addr, ":")
	if len(groups) != 8 {
		return false
	}
	for _, g := range groups {
		if g == "" {
			continue
		}
		if len(g) > 4 {
			return false
		}
		if _, err := strconv.ParseUint(g, 16, 16); err != nil {
			return false
		}
	}
	return true
}
