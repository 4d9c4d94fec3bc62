package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTrackerReportsLatestWindow(t *testing.T) {
	st := newSizeTracker(80, 24)

	w, h, err := st.getSize()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	st.update(120, 40)
	w, h, err = st.getSize()
	require.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}
