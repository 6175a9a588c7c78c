package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDomain(t *testing.T) {
	require.NoError(t, ValidateDomain("E-commerce"))
	require.NoError(t, ValidateDomain("AgriTech"))
	require.Error(t, ValidateDomain(""))
	require.ErrorContains(t, ValidateDomain("Space"), "allowed: AI, Health")
}

func TestValidateDescription(t *testing.T) {
	require.NoError(t, ValidateDescription("x"))
	require.NoError(t, ValidateDescription(strings.Repeat("ü", 1000)))
	require.Error(t, ValidateDescription(" \t\n"))
	require.Error(t, ValidateDescription(strings.Repeat("x", 1001)))
}

func TestValidateIdeaID(t *testing.T) {
	require.NoError(t, ValidateIdeaID("0199f5a2-7c1e-7b3a-9d2f-5e8c1a4b6d70"))
	require.NoError(t, ValidateIdeaID("1729000000000"))
	require.Error(t, ValidateIdeaID(""))
	require.Error(t, ValidateIdeaID("../etc"))
	require.Error(t, ValidateIdeaID(strings.Repeat("a", 65)))
}

func TestValidateText(t *testing.T) {
	require.NoError(t, ValidateText("  line one\r\nline two\t "))
	require.ErrorContains(t, ValidateText("a\x00b"), "NUL")
	require.ErrorContains(t, ValidateText("bad \xff byte"), "UTF-8")
	require.ErrorContains(t, ValidateDescription("idea\x00"), "description must not contain NUL")
}
