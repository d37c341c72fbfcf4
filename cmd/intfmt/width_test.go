package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	res, err := convert(8, false, "-128")
	require.NoError(t, err)
	assert.Equal(t, "-128", res.Text)
	assert.Equal(t, 4, res.Len)
	assert.Equal(t, 4, res.Bound)

	res, err = convert(64, true, "007")
	require.NoError(t, err)
	assert.Equal(t, "7", res.Text)
	assert.Equal(t, 1, res.Len)
	assert.Equal(t, 20, res.Bound)

	_, err = convert(8, false, "128")
	assert.Error(t, err)
	_, err = convert(8, true, "-1")
	assert.Error(t, err)
	_, err = convert(12, false, "1")
	assert.Error(t, err)
}
