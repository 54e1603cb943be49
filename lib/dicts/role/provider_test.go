package roleprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleCatalog(t *testing.T) {
	NewHandler()

	t.Run(`list returns every open role check`, func(t *testing.T) {
		roles := Instance.List()
		require.Equal(t, 3, len(roles))
		slugs := map[string]bool{}
		for _, role := range roles {
			require.NotEqual(t, "", role.Slug)
			require.NotEqual(t, "", role.Title)
			require.NotEqual(t, 0, len(role.FormFields))
			slugs[role.Slug] = true
		}
		require.Equal(t, true, slugs["full-stack-developer-intern"])
		require.Equal(t, true, slugs["hr-intern"])
		require.Equal(t, true, slugs["content-management-intern"])
	})

	t.Run(`lookup by slug check`, func(t *testing.T) {
		role, ok := Instance.GetBySlug("hr-intern")
		require.Equal(t, true, ok)
		require.Equal(t, "HR Internship", role.Title)

		_, ok = Instance.GetBySlug("crypto-wizard")
		require.Equal(t, false, ok)
	})
}
