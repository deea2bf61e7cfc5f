package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAddress(t *testing.T) {
	tests := []struct {
		addr  string
		valid bool
	}{
		{"10.0.0.1", true},
		{"192.168.1.254", true},
		{"255.255.255.0", true},
		{"10.0.0.255", false},
		{"0.0.0.0", false},
		{"127.0.0.1", false},
		{"127.0.0.2", true},
		{"10.0.0.01", false},
		{"10.0.0.256", false},
		{"10.0.0", false},
		{"10.0.0.1.5", false},
		{"10.0.-0.1", false},
		{"10.0.+1.1", false},
		{"a.b.c.d", false},
		{"2001:0db8:0000:0000:0000:ff00:0042:8329", true},
		{"2001:db8::::ff00:42:8329", true},
		{"2001:db8::ff00:42:8329", false},
		{"2001:0db8:0000:0000:0000:ff00:0042:83291", false},
		{"2001:0db8:0000:0000:0000:ff00:0042:zzzz", false},
		{"", false},
		{"core-sw1", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidAddress(tt.addr))
		})
	}
}
