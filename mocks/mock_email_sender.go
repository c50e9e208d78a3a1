package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qtrack/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendApprovalRequest(ctx context.Context, toEmail, toName string, notice port.ApprovalNotice) error {
	args := m.Called(ctx, toEmail, toName, notice)
	return args.Error(0)
}
