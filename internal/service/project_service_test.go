package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qtrack/internal/domain"
	"qtrack/internal/matching"
	"qtrack/internal/service"
	"qtrack/mocks"
)

type projectFixture struct {
	repo        *mocks.MockProjectRepo
	docRepo     *mocks.MockProjectDocumentRepo
	docTypeRepo *mocks.MockDocTypeRepo
	auditRepo   *mocks.MockAuditRepo
	svc         service.ProjectService
}

func newProjectFixture() *projectFixture {
	f := &projectFixture{
		repo:        new(mocks.MockProjectRepo),
		docRepo:     new(mocks.MockProjectDocumentRepo),
		docTypeRepo: new(mocks.MockDocTypeRepo),
		auditRepo:   new(mocks.MockAuditRepo),
	}
	f.svc = service.NewProjectService(f.repo, f.docRepo, f.docTypeRepo, f.auditRepo, matching.NewProjectCache(f.repo))
	return f
}

func TestProjectService_Create(t *testing.T) {
	f := newProjectFixture()
	actor := uuid.New()

	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.ItemName == "BRACKET" && p.PartNo == "BS-062A" &&
			p.Status == domain.ProjectStatusActive && p.CreatedBy == actor
	})).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	project, err := f.svc.Create(context.Background(), actor, service.CreateProjectInput{
		ProjectName: "BRACKET LINE",
		ItemName:    "BRACKET",
		PartNo:      "BS-062A",
		Customer:    "ACME",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
	f.repo.AssertExpectations(t)
}

func TestProjectService_Create_DuplicateIdentity(t *testing.T) {
	f := newProjectFixture()

	f.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateProjectPart)

	_, err := f.svc.Create(context.Background(), uuid.New(), service.CreateProjectInput{
		ProjectName: "BRACKET LINE",
		ItemName:    "BRACKET",
		PartNo:      "BS-062A",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateProjectPart)
	f.auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_Cancel(t *testing.T) {
	f := newProjectFixture()
	project := activeProject()

	f.repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.repo.On("UpdateStatus", mock.Anything, project.ID, domain.ProjectStatusCancelled).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.Cancel(context.Background(), uuid.New(), project.ID)
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestProjectService_Cancel_AlreadyTerminal(t *testing.T) {
	f := newProjectFixture()
	project := activeProject()
	project.Status = domain.ProjectStatusComplete

	f.repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)

	err := f.svc.Cancel(context.Background(), uuid.New(), project.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotActive)
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectService_SetDelegates(t *testing.T) {
	f := newProjectFixture()
	project := activeProject()
	actor := uuid.New()
	delegates := []uuid.UUID{uuid.New(), uuid.New()}

	f.repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.docRepo.On("SetDelegates", mock.Anything, project.ID, "FMEA", delegates, actor).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.SetDelegates(context.Background(), actor, project.ID, "FMEA", service.SetDelegatesInput{UserIDs: delegates})
	require.NoError(t, err)
	f.docRepo.AssertExpectations(t)
}

func TestProjectService_SetDelegates_UnknownDocType(t *testing.T) {
	f := newProjectFixture()
	project := activeProject()

	f.repo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "NOPE").Return(nil, domain.ErrUnknownDocType)

	err := f.svc.SetDelegates(context.Background(), uuid.New(), project.ID, "NOPE", service.SetDelegatesInput{UserIDs: []uuid.UUID{uuid.New()}})
	assert.ErrorIs(t, err, domain.ErrUnknownDocType)
	f.docRepo.AssertNotCalled(t, "SetDelegates", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
