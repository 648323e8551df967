package colleges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	c, ok := Find("mit")
	require.True(t, ok)
	assert.Equal(t, "Massachusetts Institute of Technology", c.Name)
	assert.Contains(t, c.Departments, "Computer Science")

	_, ok = Find("oxford")
	assert.False(t, ok)
}

func TestTagLabelFallsBackToID(t *testing.T) {
	assert.Equal(t, "Jobs", TagLabel("jobs"))
	assert.Equal(t, "made-up", TagLabel("made-up"))
}

func TestValidTag(t *testing.T) {
	assert.True(t, ValidTag("networking"))
	assert.False(t, ValidTag(""))
	assert.False(t, ValidTag("Jobs"))
}
