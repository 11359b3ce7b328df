package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MLBB_TEST_STR", "value")

	require.Equal(t, "value", GetEnv("MLBB_TEST_STR", "fallback", nil))
	require.Equal(t, "fallback", GetEnv("MLBB_TEST_STR_MISSING", "fallback", nil))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("MLBB_TEST_INT", "42")
	t.Setenv("MLBB_TEST_INT_BAD", "forty-two")

	require.Equal(t, 42, GetEnvAsInt("MLBB_TEST_INT", 7, nil))
	require.Equal(t, 7, GetEnvAsInt("MLBB_TEST_INT_BAD", 7, nil))
	require.Equal(t, 7, GetEnvAsInt("MLBB_TEST_INT_MISSING", 7, nil))
}

func TestGetEnvAsBool(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true, "on": true,
		"0": false, "false": false, "no": false, "off": false,
	}
	for raw, want := range cases {
		t.Setenv("MLBB_TEST_BOOL", raw)
		require.Equal(t, want, GetEnvAsBool("MLBB_TEST_BOOL", !want, nil), "value %q", raw)
	}

	t.Setenv("MLBB_TEST_BOOL", "maybe")
	require.True(t, GetEnvAsBool("MLBB_TEST_BOOL", true, nil))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("MLBB_TEST_LIST", "http://a.example, http://b.example ,,")

	require.Equal(t,
		[]string{"http://a.example", "http://b.example"},
		GetEnvAsList("MLBB_TEST_LIST", nil, nil))
	require.Equal(t,
		[]string{"http://default.example"},
		GetEnvAsList("MLBB_TEST_LIST_MISSING", []string{"http://default.example"}, nil))
}
