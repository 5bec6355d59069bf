package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_Equal(t *testing.T) {
	assert.True(t, NewRoute().Equal(nil))
	assert.True(t, NewRoute("a", "b").Equal(NewRoute("a", "b")))
	assert.False(t, NewRoute("a", "b").Equal(NewRoute("a")))
	assert.False(t, NewRoute("a", "b").Equal(NewRoute("a", "c")))
}

func TestRoute_Clone(t *testing.T) {
	original := NewRoute("a", "b")
	clone := original.Clone()
	clone[0] = "x"
	assert.Equal(t, Segment("a"), original[0], "clone must be independent")

	assert.Nil(t, Route(nil).Clone())
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "/", Route(nil).String())
	assert.Equal(t, "/home/details", NewRoute("home", "details").String())
}

func TestCommonPrefixEnd(t *testing.T) {
	tests := []struct {
		name string
		old  Route
		new  Route
		want int
	}{
		{"both empty", nil, nil, -1},
		{"immediate divergence", NewRoute("a"), NewRoute("b"), -1},
		{"full match", NewRoute("a", "b"), NewRoute("a", "b"), 1},
		{"partial", NewRoute("a", "b", "c"), NewRoute("a", "b", "x"), 1},
		{"old shorter", NewRoute("a"), NewRoute("a", "b"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commonPrefixEnd(tt.old, tt.new))
		})
	}
}
