package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Electronics", "electronics"},
		{"spaces", "Smart Phones", "smart-phones"},
		{"symbol run collapses", "Home & Garden", "home-garden"},
		{"leading and trailing symbols trimmed", "  --Books!  ", "books"},
		{"digits kept", "Top 10 Deals", "top-10-deals"},
		{"consecutive separators", "a  -  b", "a-b"},
		{"all symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}
