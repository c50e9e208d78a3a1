package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

// recordAudit writes one audit entry. Audit failures are logged, never
// propagated; the operation that triggered them has already happened.
func recordAudit(ctx context.Context, repo port.AuditRepository, projectID, userID *uuid.UUID, action domain.AuditAction, details map[string]any) {
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			log.Printf("audit: marshaling details for %s: %v", action, err)
			b = []byte("{}")
		}
		raw = b
	}

	entry := &domain.AuditEntry{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Action:    string(action),
		Details:   raw,
	}
	if err := repo.Create(ctx, entry); err != nil {
		log.Printf("audit: recording %s: %v", action, err)
	}
}
