package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitConditions(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		first  string
		second string
		ok     bool
	}{
		{"two conditions", "Cincinnati Reds + Chicago Cubs", "Cincinnati Reds", "Chicago Cubs", true},
		{"trims parts", "  Cincinnati Reds  +  Chicago Cubs ", "Cincinnati Reds", "Chicago Cubs", true},
		{"single condition", "Hall of Fame", "", "", false},
		{"three conditions", "A + B + C", "", "", false},
		{"empty", "", "", "", false},
		{"plus without spaces is not a separator", "30+ HR Season Batting", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second, ok := splitConditions(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.first, first)
				assert.Equal(t, tt.second, second)
			}
		})
	}
}
