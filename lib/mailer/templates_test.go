package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	t.Run(`welcome bodies address the user check`, func(t *testing.T) {
		require.Contains(t, waitlistWelcomeBody("Jane"), "Jane")
		require.Contains(t, newsletterWelcomeBody("Jane"), "Jane")
	})

	t.Run(`support ticket body carries the ticket id check`, func(t *testing.T) {
		body := supportTicketBody("SUP-1A2B3C4D", "Jane", "My order never arrived")
		require.Contains(t, body, "SUP-1A2B3C4D")
		require.Contains(t, body, "My order never arrived")
		require.Contains(t, body, "Kridavista")
	})

	t.Run(`career alert lists role answers check`, func(t *testing.T) {
		body := careerAlertBody("APP-1A2B3C4D", "Jane", "jane@example.com", "+91 99999 11111",
			"HR Intern", map[string]string{
				"why_hr": "People first",
				"name":   "Jane",
			})
		require.Contains(t, body, "APP-1A2B3C4D")
		require.Contains(t, body, "HR Intern")
		require.Contains(t, body, "Why Hr")
		require.Contains(t, body, "People first")
	})
}

func TestAnswersHTML(t *testing.T) {
	t.Run(`base fields skipped check`, func(t *testing.T) {
		html := answersHTML(map[string]string{
			"name":           "Jane",
			"email":          "jane@example.com",
			"phone":          "+91 99999 11111",
			"roleSlug":       "hr-intern",
			"roleTitle":      "HR Intern",
			"resume":         "file.pdf",
			"expected_wage":  "unpaid",
			"start_earliest": "next month",
		})
		require.Equal(t, false, strings.Contains(html, "jane@example.com"))
		require.Equal(t, false, strings.Contains(html, "hr-intern"))
		require.Contains(t, html, "unpaid")
		require.Contains(t, html, "next month")
	})

	t.Run(`keys sorted deterministically check`, func(t *testing.T) {
		html := answersHTML(map[string]string{"b_two": "2", "a_one": "1"})
		require.Equal(t, true, strings.Index(html, "A One") < strings.Index(html, "B Two"))
	})
}

func TestReadableKey(t *testing.T) {
	require.Equal(t, "Expected Wage", readableKey("expected_wage"))
	require.Equal(t, "Portfolio", readableKey("portfolio"))
	require.Equal(t, "Why Hr", readableKey("why_hr"))
}
