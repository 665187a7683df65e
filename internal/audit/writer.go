// Package audit appends immutable trace entries for every mutating action.
// The log is one whole-collection document capped at the most recent 500
// entries; older entries are permanently discarded, there is no archive.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"

	"github.com/google/uuid"
)

// MaxEntries is the retention cap on the audit collection.
const MaxEntries = 500

// Append prepends one entry and truncates the log to MaxEntries. When s is
// a transactional store view, the entry commits together with the mutation
// it describes.
func Append(ctx context.Context, s database.Store, actor models.User, action, entity, details string) error {
	logs, err := database.AuditLogs(ctx, s)
	if err != nil {
		return err
	}

	entry := models.AuditLog{
		ID:        newLogID(),
		Timestamp: time.Now(),
		UserID:    actor.ID,
		UserName:  actor.FullName,
		Action:    action,
		Entity:    entity,
		Details:   details,
	}

	logs = append([]models.AuditLog{entry}, logs...)
	if len(logs) > MaxEntries {
		logs = logs[:MaxEntries]
	}

	return database.SaveAuditLogs(ctx, s, logs)
}

func newLogID() string {
	return fmt.Sprintf("LOG-%s", strings.ToUpper(uuid.NewString()[:8]))
}
