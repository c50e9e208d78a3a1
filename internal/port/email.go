package port

import "context"

// ApprovalNotice carries the details of a pending upload awaiting decision.
type ApprovalNotice struct {
	ProjectName string
	DocTypeCode string
	FileName    string
	UploadedBy  string
}

// EmailSender defines the contract for sending approval notifications.
type EmailSender interface {
	SendApprovalRequest(ctx context.Context, toEmail, toName string, notice ApprovalNotice) error
}
