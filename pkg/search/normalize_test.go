package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Crêperie", "creperie"},
		{"Hôtel Élysée", "hotel elysee"},
		{"Château Margaux", "chateau margaux"},
		{"already plain", "already plain"},
		{"ÉÈÊË", "eeee"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.input), "Fold(%q)", tt.input)
	}
}
