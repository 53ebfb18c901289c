package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewObjectID()
		assert.True(t, IsValidObjectID(id), "generated id %q is not valid", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"507f1f77bcf86cd799439011", true},
		{"aaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"", false},
		{"507f1f77bcf86cd79943901", false},
		{"507f1f77bcf86cd7994390111", false},
		{"507F1F77BCF86CD799439011", false},
		{"507f1f77bcf86cd79943901g", false},
		{"not-an-id", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidObjectID(tt.id), "id %q", tt.id)
	}
}
