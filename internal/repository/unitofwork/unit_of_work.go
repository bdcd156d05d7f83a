package unitofwork

import (
	"context"

	"ai-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatRepository() contract.ChatRepository
	PolicyRepository() contract.PolicyRepository
	ReleaseNoteRepository() contract.ReleaseNoteRepository
	ReportRepository() contract.ReportRepository
}
