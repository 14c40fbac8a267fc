package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"yep\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // closed stdin
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.want, confirm("Overwrite?", strings.NewReader(test.in)))
		})
	}
}
