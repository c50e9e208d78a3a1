package noop

import (
	"context"
	"log"

	"qtrack/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notices to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendApprovalRequest(_ context.Context, toEmail, toName string, notice port.ApprovalNotice) error {
	log.Printf("[NOOP EMAIL] Approval request for %s (%s): %s / %s (%s)",
		toName, toEmail, notice.ProjectName, notice.DocTypeCode, notice.FileName)
	return nil
}
