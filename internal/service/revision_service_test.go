package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qtrack/internal/config"
	"qtrack/internal/domain"
	"qtrack/internal/matching"
	"qtrack/internal/service"
	"qtrack/mocks"
)

type revisionFixture struct {
	projectRepo  *mocks.MockProjectRepo
	docTypeRepo  *mocks.MockDocTypeRepo
	pendingRepo  *mocks.MockPendingUploadRepo
	revisionRepo *mocks.MockRevisionRepo
	docRepo      *mocks.MockProjectDocumentRepo
	fileRepo     *mocks.MockDocumentFileRepo
	userRepo     *mocks.MockUserRepo
	auditRepo    *mocks.MockAuditRepo
	storage      *mocks.MockObjectStorage
	email        *mocks.MockEmailSender
	svc          service.RevisionService
}

func newRevisionFixture() *revisionFixture {
	f := &revisionFixture{
		projectRepo:  new(mocks.MockProjectRepo),
		docTypeRepo:  new(mocks.MockDocTypeRepo),
		pendingRepo:  new(mocks.MockPendingUploadRepo),
		revisionRepo: new(mocks.MockRevisionRepo),
		docRepo:      new(mocks.MockProjectDocumentRepo),
		fileRepo:     new(mocks.MockDocumentFileRepo),
		userRepo:     new(mocks.MockUserRepo),
		auditRepo:    new(mocks.MockAuditRepo),
		storage:      new(mocks.MockObjectStorage),
		email:        new(mocks.MockEmailSender),
	}
	f.svc = service.NewRevisionService(
		f.projectRepo,
		f.docTypeRepo,
		f.pendingRepo,
		f.revisionRepo,
		f.docRepo,
		f.fileRepo,
		f.userRepo,
		f.auditRepo,
		f.storage,
		f.email,
		matching.NewProjectCache(f.projectRepo),
		&config.S3Config{Bucket: "qtrack-files", MaxFileSizeMB: 50, PresignExpiry: 3600},
	)
	return f
}

func singleDocType(code string) *domain.DocumentType {
	return &domain.DocumentType{ID: uuid.New(), Code: code, Name: code, Mode: domain.DocTypeModeSingle, IsActive: true}
}

func multiDocType(code string) *domain.DocumentType {
	return &domain.DocumentType{ID: uuid.New(), Code: code, Name: code, Mode: domain.DocTypeModeMulti, IsActive: true}
}

func activeProject() *domain.Project {
	return &domain.Project{
		ID:          uuid.New(),
		ProjectName: "BRACKET LINE",
		ItemName:    "BRACKET",
		PartNo:      "BS-062A",
		Status:      domain.ProjectStatusActive,
	}
}

func TestRevisionService_SubmitPending_Success(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	uploader := domain.User{ID: uuid.New(), Email: "u@example.com", FullName: "Uploader", Role: domain.RoleMember, IsActive: true}
	delegate := domain.User{ID: uuid.New(), Email: "d@example.com", FullName: "Delegate", Role: domain.RoleMember, IsActive: true}

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.pendingRepo.On("ExistsForSlot", mock.Anything, project.ID, "FMEA").Return(false, nil)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, nil)

	f.pendingRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.PendingUpload) bool {
		return p.ProjectID == project.ID &&
			p.DocTypeCode == "FMEA" &&
			p.RevisionNumber == domain.PendingRevisionSentinel &&
			strings.HasPrefix(p.FileKey, "projects/"+project.ID.String()+"/FMEA/")
	})).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.userRepo.On("GetByID", mock.Anything, uploader.ID).Return(&uploader, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{
		{ProjectID: project.ID, DocTypeCode: "FMEA", UserID: delegate.ID},
	}, nil)
	f.userRepo.On("GetByID", mock.Anything, delegate.ID).Return(&delegate, nil)
	f.email.On("SendApprovalRequest", mock.Anything, delegate.Email, delegate.FullName, mock.Anything).Return(nil)

	pending, err := f.svc.SubmitPending(context.Background(), service.SubmitPendingInput{
		ProjectID:   project.ID,
		DocTypeCode: "fmea",
		FileName:    "FMEA BRACKET BS-062A.pdf",
		Content:     strings.NewReader("content"),
		Size:        64,
		UploadedBy:  uploader.ID,
		Source:      domain.UploadSourceManual,
	})

	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, domain.PendingRevisionSentinel, pending.RevisionNumber)
	assert.Equal(t, "FMEA", pending.DocTypeCode)
	f.pendingRepo.AssertExpectations(t)
	f.email.AssertExpectations(t)
}

func TestRevisionService_SubmitPending_PendingAlreadyExists(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.pendingRepo.On("ExistsForSlot", mock.Anything, project.ID, "FMEA").Return(true, nil)

	_, err := f.svc.SubmitPending(context.Background(), service.SubmitPendingInput{
		ProjectID:   project.ID,
		DocTypeCode: "FMEA",
		FileName:    "FMEA BRACKET BS-062A.pdf",
		Content:     strings.NewReader("content"),
		Size:        64,
		UploadedBy:  uuid.New(),
		Source:      domain.UploadSourceManual,
	})

	assert.ErrorIs(t, err, domain.ErrPendingUploadExists)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	f.pendingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRevisionService_SubmitPending_UnsupportedFileType(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)

	_, err := f.svc.SubmitPending(context.Background(), service.SubmitPendingInput{
		ProjectID:   project.ID,
		DocTypeCode: "FMEA",
		FileName:    "FMEA BRACKET.exe",
		Content:     strings.NewReader("content"),
		Size:        64,
		UploadedBy:  uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestRevisionService_SubmitPending_FileTooLarge(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)

	_, err := f.svc.SubmitPending(context.Background(), service.SubmitPendingInput{
		ProjectID:   project.ID,
		DocTypeCode: "FMEA",
		FileName:    "FMEA BRACKET.pdf",
		Content:     strings.NewReader("content"),
		Size:        51 * 1024 * 1024,
		UploadedBy:  uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestRevisionService_SubmitPending_CancelledProject(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	project.Status = domain.ProjectStatusCancelled

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)

	_, err := f.svc.SubmitPending(context.Background(), service.SubmitPendingInput{
		ProjectID:   project.ID,
		DocTypeCode: "FMEA",
		FileName:    "FMEA BRACKET.pdf",
		Content:     strings.NewReader("content"),
		Size:        64,
		UploadedBy:  uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrProjectNotActive)
	f.docTypeRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestRevisionService_SubmitPending_CreateFailureCleansUpStorage(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	dbErr := errors.New("insert failed")

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.pendingRepo.On("ExistsForSlot", mock.Anything, project.ID, "FMEA").Return(false, nil)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, nil)
	f.pendingRepo.On("Create", mock.Anything, mock.Anything).Return(dbErr)
	f.storage.On("Delete", mock.Anything, "qtrack-files", mock.Anything).Return(nil)

	_, err := f.svc.SubmitPending(context.Background(), service.SubmitPendingInput{
		ProjectID:   project.ID,
		DocTypeCode: "FMEA",
		FileName:    "FMEA BRACKET.pdf",
		Content:     strings.NewReader("content"),
		Size:        64,
		UploadedBy:  uuid.New(),
	})

	assert.ErrorIs(t, err, dbErr)
	f.storage.AssertCalled(t, "Delete", mock.Anything, "qtrack-files", mock.Anything)
}

func approvablePending(projectID uuid.UUID, code string) *domain.PendingUpload {
	return &domain.PendingUpload{
		ID:             uuid.New(),
		ProjectID:      projectID,
		DocTypeCode:    code,
		RevisionNumber: domain.PendingRevisionSentinel,
		FileKey:        "projects/key",
		FileName:       "FMEA BRACKET BS-062A.pdf",
		UploadedBy:     uuid.New(),
	}
}

func TestRevisionService_Approve_SingleAssignsNextRevision(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "FMEA")
	admin := uuid.New()

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.revisionRepo.On("MaxRevision", mock.Anything, project.ID, "FMEA").Return(2, nil)
	f.revisionRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.DocumentRevision) bool {
		return r.RevisionNumber == 3 && r.UploadedBy == pending.UploadedBy && r.ApprovedBy == admin
	})).Return(nil)
	f.docRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(d *domain.ProjectDocument) bool {
		return d.CurrentRevision == 3 && d.CurrentFileKey == pending.FileKey && d.ApprovedBy != nil && *d.ApprovedBy == admin
	})).Return(nil)
	f.pendingRepo.On("Delete", mock.Anything, pending.ID).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Completion recheck: a second document type is still missing.
	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("ListActive", mock.Anything).Return([]domain.DocumentType{
		*singleDocType("FMEA"), *singleDocType("DRAWING"),
	}, nil)
	f.docRepo.On("ListByProject", mock.Anything, project.ID).Return([]domain.ProjectDocument{
		{ProjectID: project.ID, DocTypeCode: "FMEA"},
	}, nil)

	// Slot snapshot returned after the decision.
	f.pendingRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.PendingUpload{}, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{}, nil)
	f.docRepo.On("Get", mock.Anything, project.ID, "FMEA").Return(&domain.ProjectDocument{
		ProjectID: project.ID, DocTypeCode: "FMEA", CurrentRevision: 3,
	}, nil)
	f.revisionRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentRevision{}, nil)

	slot, err := f.svc.Approve(context.Background(), pending.ID, admin, domain.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, slot)
	require.NotNil(t, slot.Current)
	assert.Equal(t, 3, slot.Current.CurrentRevision)
	f.revisionRepo.AssertExpectations(t)
	f.docRepo.AssertExpectations(t)
	f.projectRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRevisionService_Approve_CompletesProject(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "FMEA")
	admin := uuid.New()

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.revisionRepo.On("MaxRevision", mock.Anything, project.ID, "FMEA").Return(0, nil)
	f.revisionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.docRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.pendingRepo.On("Delete", mock.Anything, pending.ID).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("ListActive", mock.Anything).Return([]domain.DocumentType{
		*singleDocType("FMEA"), *multiDocType("MSA"),
	}, nil)
	f.docRepo.On("ListByProject", mock.Anything, project.ID).Return([]domain.ProjectDocument{
		{ProjectID: project.ID, DocTypeCode: "FMEA"},
	}, nil)
	f.fileRepo.On("CountBySlot", mock.Anything, project.ID, "MSA").Return(2, nil)
	f.projectRepo.On("UpdateStatus", mock.Anything, project.ID, domain.ProjectStatusComplete).Return(nil)

	f.pendingRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.PendingUpload{}, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{}, nil)
	f.docRepo.On("Get", mock.Anything, project.ID, "FMEA").Return(&domain.ProjectDocument{
		ProjectID: project.ID, DocTypeCode: "FMEA", CurrentRevision: 1,
	}, nil)
	f.revisionRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentRevision{}, nil)

	_, err := f.svc.Approve(context.Background(), pending.ID, admin, domain.RoleAdmin)
	require.NoError(t, err)
	f.projectRepo.AssertCalled(t, "UpdateStatus", mock.Anything, project.ID, domain.ProjectStatusComplete)
}

func TestRevisionService_Approve_CompletedProjectStaysCompleted(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	project.Status = domain.ProjectStatusComplete
	pending := approvablePending(project.ID, "FMEA")
	admin := uuid.New()

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.revisionRepo.On("MaxRevision", mock.Anything, project.ID, "FMEA").Return(1, nil)
	f.revisionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.docRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	f.pendingRepo.On("Delete", mock.Anything, pending.ID).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Completion recheck sees the terminal status and stops there.
	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)

	f.pendingRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.PendingUpload{}, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{}, nil)
	f.docRepo.On("Get", mock.Anything, project.ID, "FMEA").Return(&domain.ProjectDocument{
		ProjectID: project.ID, DocTypeCode: "FMEA", CurrentRevision: 2,
	}, nil)
	f.revisionRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentRevision{}, nil)

	_, err := f.svc.Approve(context.Background(), pending.ID, admin, domain.RoleAdmin)
	require.NoError(t, err)
	f.projectRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.docTypeRepo.AssertNotCalled(t, "ListActive", mock.Anything)
}

func TestRevisionService_Approve_MultiAppendsFile(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "MSA")
	admin := uuid.New()

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.docTypeRepo.On("GetByCode", mock.Anything, "MSA").Return(multiDocType("MSA"), nil)
	f.fileRepo.On("Append", mock.Anything, mock.MatchedBy(func(file *domain.DocumentFile) bool {
		return file.ProjectID == project.ID && file.FileKey == pending.FileKey && file.AddedBy == admin
	})).Return(nil)
	f.pendingRepo.On("Delete", mock.Anything, pending.ID).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.docTypeRepo.On("ListActive", mock.Anything).Return([]domain.DocumentType{
		*singleDocType("FMEA"), *multiDocType("MSA"),
	}, nil)
	f.docRepo.On("ListByProject", mock.Anything, project.ID).Return([]domain.ProjectDocument{}, nil)

	f.pendingRepo.On("ListBySlot", mock.Anything, project.ID, "MSA").Return([]domain.PendingUpload{}, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "MSA").Return([]domain.DocumentDelegate{}, nil)
	f.fileRepo.On("ListBySlot", mock.Anything, project.ID, "MSA").Return([]domain.DocumentFile{
		{ProjectID: project.ID, DocTypeCode: "MSA", FileKey: pending.FileKey},
	}, nil)

	slot, err := f.svc.Approve(context.Background(), pending.ID, admin, domain.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Len(t, slot.Files, 1)
	f.fileRepo.AssertExpectations(t)
	f.revisionRepo.AssertNotCalled(t, "MaxRevision", mock.Anything, mock.Anything, mock.Anything)
	f.revisionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRevisionService_Approve_MemberWithoutDelegationForbidden(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "FMEA")
	member := uuid.New()

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{
		{ProjectID: project.ID, DocTypeCode: "FMEA", UserID: uuid.New()},
	}, nil)

	_, err := f.svc.Approve(context.Background(), pending.ID, member, domain.RoleMember)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.pendingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRevisionService_Reject_DelegateAllowed(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "FMEA")
	delegate := uuid.New()

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{
		{ProjectID: project.ID, DocTypeCode: "FMEA", UserID: delegate},
	}, nil)
	f.pendingRepo.On("Delete", mock.Anything, pending.ID).Return(nil)
	f.storage.On("Delete", mock.Anything, "qtrack-files", pending.FileKey).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.pendingRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.PendingUpload{}, nil)
	f.docRepo.On("Get", mock.Anything, project.ID, "FMEA").Return(nil, domain.ErrNotFound)
	f.revisionRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentRevision{}, nil)

	slot, err := f.svc.Reject(context.Background(), pending.ID, delegate, domain.RoleMember)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Empty(t, slot.Pending)
	f.pendingRepo.AssertExpectations(t)
	f.storage.AssertExpectations(t)
}

func TestRevisionService_Cancel_StrangerForbidden(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "FMEA")

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)

	_, err := f.svc.Cancel(context.Background(), pending.ID, uuid.New(), domain.RoleMember)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.pendingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRevisionService_Cancel_UploaderAllowed(t *testing.T) {
	f := newRevisionFixture()
	project := activeProject()
	pending := approvablePending(project.ID, "FMEA")

	f.pendingRepo.On("GetByID", mock.Anything, pending.ID).Return(pending, nil)
	f.pendingRepo.On("Delete", mock.Anything, pending.ID).Return(nil)
	f.storage.On("Delete", mock.Anything, "qtrack-files", pending.FileKey).Return(nil)
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.docTypeRepo.On("GetByCode", mock.Anything, "FMEA").Return(singleDocType("FMEA"), nil)
	f.pendingRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.PendingUpload{}, nil)
	f.docRepo.On("ListDelegates", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentDelegate{}, nil)
	f.docRepo.On("Get", mock.Anything, project.ID, "FMEA").Return(nil, domain.ErrNotFound)
	f.revisionRepo.On("ListBySlot", mock.Anything, project.ID, "FMEA").Return([]domain.DocumentRevision{}, nil)

	slot, err := f.svc.Cancel(context.Background(), pending.ID, pending.UploadedBy, domain.RoleMember)
	require.NoError(t, err)
	require.NotNil(t, slot)
	f.pendingRepo.AssertExpectations(t)
}

func TestRevisionService_FileURL(t *testing.T) {
	f := newRevisionFixture()

	f.storage.On("GetPresignedURL", mock.Anything, "qtrack-files", "projects/key", int64(3600)).
		Return("https://signed.example.com/projects/key", nil)

	url, err := f.svc.FileURL(context.Background(), "projects/key")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/projects/key", url)
}
