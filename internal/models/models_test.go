package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	v, err := StringList{"a.png", "b c.png"}.Value()
	require.NoError(t, err)

	var back StringList
	require.NoError(t, back.Scan(v))
	require.Equal(t, StringList{"a.png", "b c.png"}, back)

	nilValue, err := StringList(nil).Value()
	require.NoError(t, err)
	require.Nil(t, nilValue)

	var fromNull StringList
	require.NoError(t, fromNull.Scan(nil))
	require.Nil(t, fromNull)

	var fromBytes StringList
	require.NoError(t, fromBytes.Scan([]byte(`{x,y}`)))
	require.Equal(t, StringList{"x", "y"}, fromBytes)
}
