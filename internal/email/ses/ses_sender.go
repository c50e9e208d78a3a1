package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"qtrack/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendApprovalRequest(ctx context.Context, toEmail, toName string, notice port.ApprovalNotice) error {
	queueURL := fmt.Sprintf("%s/approvals", s.frontendURL)

	subject := fmt.Sprintf("Approval needed: %s for %s", notice.DocTypeCode, notice.ProjectName)
	htmlBody := buildApprovalRequestHTML(toName, queueURL, notice)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nA document is waiting for your approval.\n\nProject: %s\nDocument type: %s\nFile: %s\nUploaded by: %s\n\nReview it here:\n%s\n\nQTrack",
		toName, notice.ProjectName, notice.DocTypeCode, notice.FileName, notice.UploadedBy, queueURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildApprovalRequestHTML(name, queueURL string, notice port.ApprovalNotice) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Document awaiting approval</h2>
  <p>Hi %s,</p>
  <p>A document has been submitted and is waiting for your decision:</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Project</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Document type</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">File</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Uploaded by</td><td>%s</td></tr>
  </table>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open approval queue</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">QTrack - Quality Document Tracking</p>
</body>
</html>`, name, notice.ProjectName, notice.DocTypeCode, notice.FileName, notice.UploadedBy, queueURL)
}
