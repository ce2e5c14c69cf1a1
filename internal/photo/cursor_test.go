package photo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorWalksFallbackChain(t *testing.T) {
	c := NewCursor([]string{"bad1", "bad2", "good"}, "First dance")

	assert.Equal(t, "bad1", c.Current())
	c.Fail()
	c.Fail()
	assert.Equal(t, "good", c.Current())
	assert.False(t, c.Exhausted())

	// A further failure past the last real source is terminal but stable.
	c.Fail()
	assert.True(t, c.Exhausted())
	placeholder := c.Current()
	c.Fail()
	assert.Equal(t, placeholder, c.Current(), "terminal state must not change on repeated failures")
	assert.Equal(t, 3, c.Index())
}

func TestCursorMonotonic(t *testing.T) {
	c := NewCursor([]string{"a", "b"}, "alt")
	last := c.Index()
	for i := 0; i < 10; i++ {
		c.Fail()
		require.GreaterOrEqual(t, c.Index(), last)
		require.LessOrEqual(t, c.Index(), 2)
		last = c.Index()
	}
}

func TestCursorEmptySources(t *testing.T) {
	c := NewCursor(nil, "Garden ceremony")
	assert.True(t, c.Exhausted())
	assert.True(t, strings.HasPrefix(c.Current(), "data:image/svg+xml;base64,"))
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := PlaceholderDataURI("Reception hall")
	b := PlaceholderDataURI("Reception hall")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, PlaceholderDataURI("Pool at dusk"))
}

func TestPlaceholderEscapesAltText(t *testing.T) {
	uri := PlaceholderDataURI(`"quotes" & <tags>`)
	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
}
