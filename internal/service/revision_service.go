package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"qtrack/internal/config"
	"qtrack/internal/domain"
	"qtrack/internal/matching"
	"qtrack/internal/port"
)

// SubmitPendingInput is the DTO for submitting a file into a document slot.
type SubmitPendingInput struct {
	ProjectID   uuid.UUID
	DocTypeCode string
	FileName    string
	Content     io.Reader
	Size        int64
	UploadedBy  uuid.UUID
	Source      domain.UploadSource
}

// SlotState is a read snapshot of one (project, doc type) slot.
type SlotState struct {
	DocType   domain.DocumentType      `json:"doc_type"`
	Current   *domain.ProjectDocument  `json:"current,omitempty"`
	Files     []domain.DocumentFile    `json:"files,omitempty"`
	Pending   []domain.PendingUpload   `json:"pending"`
	Revisions []domain.DocumentRevision `json:"revisions,omitempty"`
	Delegates []domain.DocumentDelegate `json:"delegates"`
}

// RevisionService manages the pending/approve/reject lifecycle of document
// slots and the revision history behind them.
type RevisionService interface {
	SubmitPending(ctx context.Context, input SubmitPendingInput) (*domain.PendingUpload, error)
	Approve(ctx context.Context, pendingID, approverID uuid.UUID, approverRole domain.UserRole) (*SlotState, error)
	Reject(ctx context.Context, pendingID, reviewerID uuid.UUID, reviewerRole domain.UserRole) (*SlotState, error)
	Cancel(ctx context.Context, pendingID, userID uuid.UUID, userRole domain.UserRole) (*SlotState, error)
	ListPending(ctx context.Context, offset, limit int) ([]domain.PendingUpload, int, error)
	ListPendingByProject(ctx context.Context, projectID uuid.UUID) ([]domain.PendingUpload, error)
	Slot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (*SlotState, error)
	ProjectDocuments(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectDocument, error)
	Revisions(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentRevision, error)
	FileURL(ctx context.Context, fileKey string) (string, error)
}

// slotLocks hands out one mutex per (project, doc type) slot so decisions on
// the same slot serialize while distinct slots proceed concurrently.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *slotLocks) get(projectID uuid.UUID, docTypeCode string) *sync.Mutex {
	key := projectID.String() + "/" + docTypeCode
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

type revisionService struct {
	projectRepo  port.ProjectRepository
	docTypeRepo  port.DocumentTypeRepository
	pendingRepo  port.PendingUploadRepository
	revisionRepo port.RevisionRepository
	docRepo      port.ProjectDocumentRepository
	fileRepo     port.DocumentFileRepository
	userRepo     port.UserRepository
	auditRepo    port.AuditRepository
	storage      port.ObjectStorage
	email        port.EmailSender
	cache        *matching.ProjectCache
	cfg          *config.S3Config
	locks        *slotLocks
}

// NewRevisionService creates a new RevisionService implementation.
func NewRevisionService(
	projectRepo port.ProjectRepository,
	docTypeRepo port.DocumentTypeRepository,
	pendingRepo port.PendingUploadRepository,
	revisionRepo port.RevisionRepository,
	docRepo port.ProjectDocumentRepository,
	fileRepo port.DocumentFileRepository,
	userRepo port.UserRepository,
	auditRepo port.AuditRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	cache *matching.ProjectCache,
	cfg *config.S3Config,
) RevisionService {
	return &revisionService{
		projectRepo:  projectRepo,
		docTypeRepo:  docTypeRepo,
		pendingRepo:  pendingRepo,
		revisionRepo: revisionRepo,
		docRepo:      docRepo,
		fileRepo:     fileRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		storage:      storage,
		email:        email,
		cache:        cache,
		cfg:          cfg,
		locks:        newSlotLocks(),
	}
}

func (s *revisionService) SubmitPending(ctx context.Context, input SubmitPendingInput) (*domain.PendingUpload, error) {
	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status == domain.ProjectStatusCancelled {
		return nil, domain.ErrProjectNotActive
	}

	code := strings.ToUpper(strings.TrimSpace(input.DocTypeCode))
	docType, err := s.docTypeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	lock := s.locks.get(input.ProjectID, code)
	lock.Lock()
	defer lock.Unlock()

	// Single-file slots admit one undecided upload at a time.
	if docType.Mode == domain.DocTypeModeSingle {
		exists, err := s.pendingRepo.ExistsForSlot(ctx, input.ProjectID, code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrPendingUploadExists
		}
	}

	pendingID := uuid.New()
	fileKey := fmt.Sprintf("projects/%s/%s/%s/%s", input.ProjectID, code, pendingID, input.FileName)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         fileKey,
		Body:        input.Content,
		ContentType: domain.ContentTypes[fileType],
		Size:        input.Size,
	})
	if err != nil {
		log.Printf("revisionService.SubmitPending: storage upload failed for %s: %v", input.FileName, err)
		return nil, domain.ErrUploadFailed
	}

	pending := &domain.PendingUpload{
		ID:             pendingID,
		ProjectID:      input.ProjectID,
		DocTypeCode:    code,
		RevisionNumber: domain.PendingRevisionSentinel,
		FileKey:        fileKey,
		FileName:       input.FileName,
		FileSize:       input.Size,
		UploadedBy:     input.UploadedBy,
		Source:         input.Source,
	}
	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		if delErr := s.storage.Delete(ctx, s.cfg.Bucket, fileKey); delErr != nil {
			log.Printf("revisionService.SubmitPending: orphan cleanup failed for %s: %v", fileKey, delErr)
		}
		return nil, err
	}

	action := domain.AuditUploadSubmitted
	if input.Source == domain.UploadSourceAuto {
		action = domain.AuditUploadMatched
	}
	recordAudit(ctx, s.auditRepo, &input.ProjectID, &input.UploadedBy, action, map[string]any{
		"doc_type_code": code,
		"file_name":     input.FileName,
		"pending_id":    pendingID,
	})

	s.notifyApprovers(ctx, project, pending)
	return pending, nil
}

func (s *revisionService) Approve(ctx context.Context, pendingID, approverID uuid.UUID, approverRole domain.UserRole) (*SlotState, error) {
	pending, err := s.pendingRepo.GetByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	if err := s.checkDecisionPermission(ctx, pending, approverID, approverRole); err != nil {
		return nil, err
	}

	docType, err := s.docTypeRepo.GetByCode(ctx, pending.DocTypeCode)
	if err != nil {
		return nil, err
	}

	lock := s.locks.get(pending.ProjectID, pending.DocTypeCode)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()
	switch docType.Mode {
	case domain.DocTypeModeMulti:
		file := &domain.DocumentFile{
			ID:          uuid.New(),
			ProjectID:   pending.ProjectID,
			DocTypeCode: pending.DocTypeCode,
			FileKey:     pending.FileKey,
			FileName:    pending.FileName,
			AddedBy:     approverID,
		}
		if err := s.fileRepo.Append(ctx, file); err != nil {
			return nil, err
		}
	default:
		// Revision numbers are assigned here, not at upload, so they stay
		// gap-free even when pendings are rejected or cancelled.
		maxRev, err := s.revisionRepo.MaxRevision(ctx, pending.ProjectID, pending.DocTypeCode)
		if err != nil {
			return nil, err
		}
		rev := maxRev + 1

		revision := &domain.DocumentRevision{
			ID:             uuid.New(),
			ProjectID:      pending.ProjectID,
			DocTypeCode:    pending.DocTypeCode,
			RevisionNumber: rev,
			FileKey:        pending.FileKey,
			FileName:       pending.FileName,
			UploadedBy:     pending.UploadedBy,
			ApprovedBy:     approverID,
		}
		if err := s.revisionRepo.Create(ctx, revision); err != nil {
			return nil, err
		}

		doc := &domain.ProjectDocument{
			ProjectID:       pending.ProjectID,
			DocTypeCode:     pending.DocTypeCode,
			CurrentFileKey:  pending.FileKey,
			CurrentFileName: pending.FileName,
			CurrentRevision: rev,
			ApprovedBy:      &approverID,
			ApprovedAt:      &now,
		}
		if err := s.docRepo.Upsert(ctx, doc); err != nil {
			return nil, err
		}
	}

	if err := s.pendingRepo.Delete(ctx, pending.ID); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, &pending.ProjectID, &approverID, domain.AuditUploadApproved, map[string]any{
		"doc_type_code": pending.DocTypeCode,
		"file_name":     pending.FileName,
		"pending_id":    pending.ID,
	})

	if err := s.recheckCompletion(ctx, pending.ProjectID, approverID); err != nil {
		log.Printf("revisionService.Approve: completion recheck for project %s: %v", pending.ProjectID, err)
	}
	return s.slotAfterDecision(ctx, pending)
}

func (s *revisionService) Reject(ctx context.Context, pendingID, reviewerID uuid.UUID, reviewerRole domain.UserRole) (*SlotState, error) {
	pending, err := s.pendingRepo.GetByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	if err := s.checkDecisionPermission(ctx, pending, reviewerID, reviewerRole); err != nil {
		return nil, err
	}

	lock := s.locks.get(pending.ProjectID, pending.DocTypeCode)
	lock.Lock()
	defer lock.Unlock()

	if err := s.pendingRepo.Delete(ctx, pending.ID); err != nil {
		return nil, err
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, pending.FileKey); err != nil {
		log.Printf("revisionService.Reject: deleting %s from storage: %v", pending.FileKey, err)
	}

	recordAudit(ctx, s.auditRepo, &pending.ProjectID, &reviewerID, domain.AuditUploadRejected, map[string]any{
		"doc_type_code": pending.DocTypeCode,
		"file_name":     pending.FileName,
		"pending_id":    pending.ID,
	})
	return s.slotAfterDecision(ctx, pending)
}

func (s *revisionService) Cancel(ctx context.Context, pendingID, userID uuid.UUID, userRole domain.UserRole) (*SlotState, error) {
	pending, err := s.pendingRepo.GetByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	// Only the uploader may withdraw their own submission; admins may always.
	if pending.UploadedBy != userID && userRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	lock := s.locks.get(pending.ProjectID, pending.DocTypeCode)
	lock.Lock()
	defer lock.Unlock()

	if err := s.pendingRepo.Delete(ctx, pending.ID); err != nil {
		return nil, err
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, pending.FileKey); err != nil {
		log.Printf("revisionService.Cancel: deleting %s from storage: %v", pending.FileKey, err)
	}

	recordAudit(ctx, s.auditRepo, &pending.ProjectID, &userID, domain.AuditUploadCancelled, map[string]any{
		"doc_type_code": pending.DocTypeCode,
		"file_name":     pending.FileName,
		"pending_id":    pending.ID,
	})
	return s.slotAfterDecision(ctx, pending)
}

// slotAfterDecision reloads the slot a decided upload belonged to. The
// decision itself has already been committed; a failed reload is logged and
// yields a nil snapshot rather than a spurious error.
func (s *revisionService) slotAfterDecision(ctx context.Context, pending *domain.PendingUpload) (*SlotState, error) {
	state, err := s.Slot(ctx, pending.ProjectID, pending.DocTypeCode)
	if err != nil {
		log.Printf("revisionService.slotAfterDecision: reloading slot %s/%s: %v", pending.ProjectID, pending.DocTypeCode, err)
		return nil, nil
	}
	return state, nil
}

func (s *revisionService) ListPending(ctx context.Context, offset, limit int) ([]domain.PendingUpload, int, error) {
	return s.pendingRepo.List(ctx, offset, limit)
}

func (s *revisionService) ListPendingByProject(ctx context.Context, projectID uuid.UUID) ([]domain.PendingUpload, error) {
	return s.pendingRepo.ListByProject(ctx, projectID)
}

func (s *revisionService) Slot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (*SlotState, error) {
	code := strings.ToUpper(strings.TrimSpace(docTypeCode))
	docType, err := s.docTypeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	state := &SlotState{DocType: *docType}

	state.Pending, err = s.pendingRepo.ListBySlot(ctx, projectID, code)
	if err != nil {
		return nil, err
	}
	state.Delegates, err = s.docRepo.ListDelegates(ctx, projectID, code)
	if err != nil {
		return nil, err
	}

	if docType.Mode == domain.DocTypeModeMulti {
		state.Files, err = s.fileRepo.ListBySlot(ctx, projectID, code)
		if err != nil {
			return nil, err
		}
		return state, nil
	}

	current, err := s.docRepo.Get(ctx, projectID, code)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	state.Current = current
	state.Revisions, err = s.revisionRepo.ListBySlot(ctx, projectID, code)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *revisionService) ProjectDocuments(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectDocument, error) {
	return s.docRepo.ListByProject(ctx, projectID)
}

func (s *revisionService) Revisions(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentRevision, error) {
	return s.revisionRepo.ListBySlot(ctx, projectID, strings.ToUpper(strings.TrimSpace(docTypeCode)))
}

func (s *revisionService) FileURL(ctx context.Context, fileKey string) (string, error) {
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, fileKey, s.cfg.PresignExpiry)
}

// checkDecisionPermission allows admins always; otherwise the reviewer must
// be a delegate of the pending upload's slot.
func (s *revisionService) checkDecisionPermission(ctx context.Context, pending *domain.PendingUpload, userID uuid.UUID, role domain.UserRole) error {
	if role == domain.RoleAdmin {
		return nil
	}
	delegates, err := s.docRepo.ListDelegates(ctx, pending.ProjectID, pending.DocTypeCode)
	if err != nil {
		return err
	}
	for _, d := range delegates {
		if d.UserID == userID {
			return nil
		}
	}
	return domain.ErrForbidden
}

// recheckCompletion marks the project complete when every active document
// type has an approved file. It is idempotent and never reverses a terminal
// status; cancelled projects are left alone.
func (s *revisionService) recheckCompletion(ctx context.Context, projectID, actorID uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.Status != domain.ProjectStatusActive {
		return nil
	}

	docTypes, err := s.docTypeRepo.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(docTypes) == 0 {
		return nil
	}

	docs, err := s.docRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	approved := make(map[string]bool, len(docs))
	for _, d := range docs {
		approved[d.DocTypeCode] = true
	}

	for _, dt := range docTypes {
		if dt.Mode == domain.DocTypeModeMulti {
			count, err := s.fileRepo.CountBySlot(ctx, projectID, dt.Code)
			if err != nil {
				return err
			}
			if count == 0 {
				return nil
			}
			continue
		}
		if !approved[dt.Code] {
			return nil
		}
	}

	if err := s.projectRepo.UpdateStatus(ctx, projectID, domain.ProjectStatusComplete); err != nil {
		return err
	}
	s.cache.Invalidate()

	recordAudit(ctx, s.auditRepo, &projectID, &actorID, domain.AuditProjectCompleted, nil)
	return nil
}

// notifyApprovers emails the slot's delegates, or every admin when the slot
// has none. Failures are logged; the submission has already succeeded.
func (s *revisionService) notifyApprovers(ctx context.Context, project *domain.Project, pending *domain.PendingUpload) {
	uploader, err := s.userRepo.GetByID(ctx, pending.UploadedBy)
	uploaderName := "unknown"
	if err == nil {
		uploaderName = uploader.FullName
	}

	notice := port.ApprovalNotice{
		ProjectName: project.ProjectName,
		DocTypeCode: pending.DocTypeCode,
		FileName:    pending.FileName,
		UploadedBy:  uploaderName,
	}

	var recipients []domain.User
	delegates, err := s.docRepo.ListDelegates(ctx, project.ID, pending.DocTypeCode)
	if err != nil {
		log.Printf("revisionService.notifyApprovers: listing delegates: %v", err)
		return
	}
	if len(delegates) > 0 {
		for _, d := range delegates {
			u, err := s.userRepo.GetByID(ctx, d.UserID)
			if err != nil {
				log.Printf("revisionService.notifyApprovers: loading delegate %s: %v", d.UserID, err)
				continue
			}
			recipients = append(recipients, *u)
		}
	} else {
		admins, err := s.userRepo.ListByRole(ctx, domain.RoleAdmin)
		if err != nil {
			log.Printf("revisionService.notifyApprovers: listing admins: %v", err)
			return
		}
		recipients = admins
	}

	for _, u := range recipients {
		if !u.IsActive {
			continue
		}
		if err := s.email.SendApprovalRequest(ctx, u.Email, u.FullName, notice); err != nil {
			log.Printf("revisionService.notifyApprovers: emailing %s: %v", u.Email, err)
		}
	}
}
