package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionValid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"frontend", PositionFrontend, true},
		{"backend", PositionBackend, true},
		{"fullstack", PositionFullstack, true},
		{"unknown", Position("manager"), false},
		{"empty", Position(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.Valid())
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{PositionFrontend, "Frontend Developer"},
		{PositionBackend, "Backend Developer"},
		{PositionFullstack, "Fullstack Developer"},
		{Position("sre"), "sre"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pos.DisplayName())
	}
}

func TestTopicsForIsolated(t *testing.T) {
	topics := TopicsFor(PositionBackend)
	require.NotEmpty(t, topics)
	assert.Equal(t, "Primary programming language", topics[0])

	// Mutating the returned slice must not leak into the catalog.
	topics[0] = "mutated"
	again := TopicsFor(PositionBackend)
	assert.Equal(t, "Primary programming language", again[0])
}

func TestTopicsForUnknown(t *testing.T) {
	assert.Empty(t, TopicsFor(Position("nope")))
}

func TestEveryPositionHasTopics(t *testing.T) {
	for _, p := range Positions() {
		require.True(t, p.Valid(), "position %q", p)
		assert.NotEmpty(t, TopicsFor(p), "position %q", p)
	}
}
