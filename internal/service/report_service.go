package service

import (
	"context"
	"fmt"
	"time"

	"qtrack/internal/domain"
	"qtrack/internal/port"
	"qtrack/internal/xlsxexport"
)

// Per-slot statuses in the completion matrix.
const (
	ReportStatusMissing  = "missing"
	ReportStatusPending  = "pending"
	ReportStatusApproved = "approved"
)

// ReportCell is the state of one document slot in the completion matrix.
type ReportCell struct {
	DocTypeCode string `json:"doc_type_code"`
	Status      string `json:"status"`
	Revision    int    `json:"revision,omitempty"`
	FileCount   int    `json:"file_count,omitempty"`
}

// ReportRow is one project's line in the completion matrix. Percent is the
// share of document types with an approved file, 0..100.
type ReportRow struct {
	Project domain.Project `json:"project"`
	Cells   []ReportCell   `json:"cells"`
	Percent float64        `json:"percent"`
}

// CompletionReport is the full projects-by-document-types matrix.
type CompletionReport struct {
	GeneratedAt time.Time             `json:"generated_at"`
	DocTypes    []domain.DocumentType `json:"doc_types"`
	Rows        []ReportRow           `json:"rows"`
}

// ReportService builds completion overviews across all projects.
type ReportService interface {
	Completion(ctx context.Context) (*CompletionReport, error)
	ExportXLSX(ctx context.Context) ([]byte, string, error)
}

type reportService struct {
	projectRepo port.ProjectRepository
	docTypeRepo port.DocumentTypeRepository
	docRepo     port.ProjectDocumentRepository
	fileRepo    port.DocumentFileRepository
	pendingRepo port.PendingUploadRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	projectRepo port.ProjectRepository,
	docTypeRepo port.DocumentTypeRepository,
	docRepo port.ProjectDocumentRepository,
	fileRepo port.DocumentFileRepository,
	pendingRepo port.PendingUploadRepository,
) ReportService {
	return &reportService{
		projectRepo: projectRepo,
		docTypeRepo: docTypeRepo,
		docRepo:     docRepo,
		fileRepo:    fileRepo,
		pendingRepo: pendingRepo,
	}
}

func (s *reportService) Completion(ctx context.Context) (*CompletionReport, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	docTypes, err := s.docTypeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	report := &CompletionReport{
		GeneratedAt: time.Now().UTC(),
		DocTypes:    docTypes,
		Rows:        make([]ReportRow, 0, len(projects)),
	}

	for i := range projects {
		project := projects[i]

		docs, err := s.docRepo.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		approved := make(map[string]*domain.ProjectDocument, len(docs))
		for j := range docs {
			approved[docs[j].DocTypeCode] = &docs[j]
		}

		pendings, err := s.pendingRepo.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		hasPending := make(map[string]bool, len(pendings))
		for _, p := range pendings {
			hasPending[p.DocTypeCode] = true
		}

		row := ReportRow{Project: project, Cells: make([]ReportCell, 0, len(docTypes))}
		for _, dt := range docTypes {
			cell := ReportCell{DocTypeCode: dt.Code, Status: ReportStatusMissing}

			if dt.Mode == domain.DocTypeModeMulti {
				count, err := s.fileRepo.CountBySlot(ctx, project.ID, dt.Code)
				if err != nil {
					return nil, err
				}
				if count > 0 {
					cell.Status = ReportStatusApproved
					cell.FileCount = count
				} else if hasPending[dt.Code] {
					cell.Status = ReportStatusPending
				}
			} else {
				if doc, ok := approved[dt.Code]; ok {
					cell.Status = ReportStatusApproved
					cell.Revision = doc.CurrentRevision
				} else if hasPending[dt.Code] {
					cell.Status = ReportStatusPending
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		if len(row.Cells) > 0 {
			approvedCount := 0
			for _, c := range row.Cells {
				if c.Status == ReportStatusApproved {
					approvedCount++
				}
			}
			row.Percent = float64(approvedCount) / float64(len(row.Cells)) * 100
		}
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}

func (s *reportService) ExportXLSX(ctx context.Context) ([]byte, string, error) {
	report, err := s.Completion(ctx)
	if err != nil {
		return nil, "", err
	}

	w, err := xlsxexport.NewWriter()
	if err != nil {
		return nil, "", err
	}

	codes := make([]string, 0, len(report.DocTypes))
	for _, dt := range report.DocTypes {
		codes = append(codes, dt.Code)
	}
	if err := w.WriteHeader(codes); err != nil {
		return nil, "", err
	}

	for _, row := range report.Rows {
		completedAt := ""
		if row.Project.CompletedAt != nil {
			completedAt = row.Project.CompletedAt.Format(time.RFC3339)
		}
		values := []string{
			row.Project.ProjectName,
			row.Project.ItemName,
			row.Project.PartNo,
			row.Project.Customer,
			string(row.Project.Status),
			completedAt,
		}
		for _, cell := range row.Cells {
			values = append(values, formatReportCell(cell))
		}
		if err := w.WriteRow(values); err != nil {
			return nil, "", err
		}
	}

	data, err := w.Bytes()
	if err != nil {
		return nil, "", err
	}
	return data, xlsxexport.BuildFilename(), nil
}

// formatReportCell renders one matrix cell for the exported workbook.
func formatReportCell(cell ReportCell) string {
	switch cell.Status {
	case ReportStatusApproved:
		if cell.FileCount > 0 {
			return fmt.Sprintf("%d file(s)", cell.FileCount)
		}
		return fmt.Sprintf("Rev %d", cell.Revision)
	case ReportStatusPending:
		return ReportStatusPending
	default:
		return ReportStatusMissing
	}
}
