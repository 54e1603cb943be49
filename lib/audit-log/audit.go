// Package auditlog appends timestamped "[TYPE] {json}" lines to a flat text
// file as a secondary trail next to the JSON collections.
package auditlog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Log(entryType string, data interface{})
}

var Instance Provider

func NewHandler(filePath string) Provider {
	h := &impl{filePath: filePath}
	Instance = h
	return h
}

type impl struct {
	filePath string
}

// Log appends one entry. Failures are logged and swallowed so the audit
// trail can never block a user flow.
func (i impl) Log(entryType string, data interface{}) {
	logger := log.WithField("entry_type", entryType)
	payload, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Error("audit entry not encodable")
		return
	}
	entry := fmt.Sprintf("[%s] [%s] %s\n",
		time.Now().UTC().Format(time.RFC3339), strings.ToUpper(entryType), payload)

	f, err := os.OpenFile(i.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.WithError(err).Error("failed to open audit log")
		return
	}
	defer f.Close()
	if _, err = f.WriteString(entry); err != nil {
		logger.WithError(err).Error("failed to append audit entry")
	}
}
