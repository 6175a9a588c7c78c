package ideas_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

func TestTitleFrom(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"short", "A lending app for gig workers", "A lending app for gig workers"},
		{"exactly fifty", strings.Repeat("B", 50), strings.Repeat("B", 50)},
		{"sixty", strings.Repeat("A", 60), strings.Repeat("A", 50) + "..."},
		{"empty", "", ""},
		{"multibyte", strings.Repeat("é", 51), strings.Repeat("é", 50) + "..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ideas.TitleFrom(tc.in))
		})
	}
}

func TestDomainValid(t *testing.T) {
	for _, d := range ideas.Domains {
		require.True(t, d.Valid(), d)
	}
	require.Len(t, ideas.Domains, 7)
	require.False(t, ideas.Domain("").Valid())
	require.False(t, ideas.Domain("fintech").Valid())
	require.False(t, ideas.Domain("Crypto").Valid())
}
