package pdfexport

import (
	"testing"
	"time"

	"kridavista-backend/models"

	"github.com/stretchr/testify/require"
)

func TestGenerateApplicationSummary(t *testing.T) {
	t.Run(`renders a pdf document check`, func(t *testing.T) {
		content, err := GenerateApplicationSummary(models.Application{
			ID:          "APP-1A2B3C4D",
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			RoleSlug:    "hr-intern",
			RoleTitle:   "HR Internship",
			Resume:      "APP-1A2B3C4D-hr-intern-Jane_Doe.pdf",
			SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Fields:      map[string]string{"why_hr": "People first"},
		})
		require.Nil(t, err)
		require.Equal(t, "%PDF", string(content[:4]))
	})

	t.Run(`empty application still renders check`, func(t *testing.T) {
		content, err := GenerateApplicationSummary(models.Application{ID: "APP-00000000"})
		require.Nil(t, err)
		require.NotEqual(t, 0, len(content))
	})
}
