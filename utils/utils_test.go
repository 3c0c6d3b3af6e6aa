package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(13)
	require.Len(t, s, 13)
	require.NotEqual(t, s, GenerateRandomString(13))
}

func TestParseDate(t *testing.T) {
	parsed := ParseDate("2026-04-01")
	require.NotNil(t, parsed)
	require.Equal(t, 2026, parsed.Year())

	require.Nil(t, ParseDate("2026-13-40"))
	require.Nil(t, ParseDate(""))
	require.Nil(t, ParseDate("01/04/2026"))
}
