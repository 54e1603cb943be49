package smtp

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	t.Run(`auth failure check`, func(t *testing.T) {
		details := ClassifyError(errors.New("535 5.7.8 Username and Password not accepted"))
		require.Contains(t, details, "authentication failed")
	})

	t.Run(`connection failure check`, func(t *testing.T) {
		for _, msg := range []string{
			"dial tcp 1.2.3.4:587: connection refused",
			"lookup smtp.example.com: no such host",
			"read tcp: i/o timeout",
		} {
			require.Contains(t, ClassifyError(errors.New(msg)), "connection to SMTP host failed")
		}
	})

	t.Run(`unknown failure check`, func(t *testing.T) {
		require.Equal(t, "unknown SMTP failure", ClassifyError(errors.New("short write")))
		require.Equal(t, "", ClassifyError(nil))
	})
}

func TestBuildMessage(t *testing.T) {
	t.Run(`plain html message check`, func(t *testing.T) {
		raw, err := buildMessage("from@example.com", "to@example.com", "Hello", "<b>hi</b>", nil)
		require.Nil(t, err)
		msg := string(raw)
		require.Contains(t, msg, "From: from@example.com")
		require.Contains(t, msg, "To: to@example.com")
		require.Contains(t, msg, "Content-Type: text/html")
		require.Contains(t, msg, "<b>hi</b>")
	})

	t.Run(`attachment is base64 encoded check`, func(t *testing.T) {
		content := []byte("%PDF-1.4 resume")
		raw, err := buildMessage("from@example.com", "to@example.com", "Application", "<b>hi</b>",
			[]Attachment{{Filename: "resume.pdf", Content: content, ContentType: "application/pdf"}})
		require.Nil(t, err)
		msg := string(raw)
		require.Contains(t, msg, "multipart/mixed")
		require.Contains(t, msg, `filename="resume.pdf"`)
		require.Contains(t, msg, "Content-Type: application/pdf")
		require.Contains(t, msg, base64.StdEncoding.EncodeToString(content))
	})

	t.Run(`unconfigured client skips send check`, func(t *testing.T) {
		client := &impl{}
		require.Nil(t, client.SendEMail("from@example.com", "to@example.com", "Hello", "<b>hi</b>", nil))
	})
}
