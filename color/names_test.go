package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherExactMatches(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	tests := []struct {
		hex  string
		want string
	}{
		{"#FF0000", "Red"},
		{"#000000", "Black"},
		{"#FFFFFF", "White"},
		{"#008080", "Teal"},
	}
	for _, tt := range tests {
		got, err := m.ClosestName(tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Name, "ClosestName(%q)", tt.hex)
	}
}

func TestMatcherNearMatch(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	// One bit off pure red still reads as red.
	got, err := m.ClosestName("#FE0101")
	require.NoError(t, err)
	assert.Equal(t, "Red", got.Name)
}

func TestMatcherRejectsMalformedInput(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	_, err = m.ClosestName("tomato")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMatcherFromJSON(t *testing.T) {
	m, err := NewMatcherFromJSON([]byte(`[{"hex":"#102030","name":"Test Blue"}]`))
	require.NoError(t, err)

	got, err := m.ClosestName("#0F1F2F")
	require.NoError(t, err)
	assert.Equal(t, "Test Blue", got.Name)

	_, err = NewMatcherFromJSON([]byte(`{not json`))
	assert.Error(t, err)

	_, err = NewMatcherFromJSON([]byte(`[{"hex":"nope","name":"Broken"}]`))
	assert.Error(t, err)
}
