package service

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"qtrack/internal/domain"
	"qtrack/internal/matching"
	"qtrack/internal/port"
)

// BatchFile is one file of an auto-upload batch.
type BatchFile struct {
	Name    string
	Content io.Reader
	Size    int64
}

// UploadService resolves auto-upload batches against registered projects.
type UploadService interface {
	ResolveBatch(ctx context.Context, files []BatchFile, uploadedBy uuid.UUID) ([]domain.BatchOutcome, error)
	MatchPreview(ctx context.Context, filename string) (*matching.ParsedFilename, []matching.Candidate, error)
}

type uploadService struct {
	docTypeRepo port.DocumentTypeRepository
	matcher     *matching.Matcher
	revisions   RevisionService
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	docTypeRepo port.DocumentTypeRepository,
	matcher *matching.Matcher,
	revisions RevisionService,
) UploadService {
	return &uploadService{
		docTypeRepo: docTypeRepo,
		matcher:     matcher,
		revisions:   revisions,
	}
}

// batchEntry is one parsed batch file, carrying its original index so the
// returned outcomes line up with the request order.
type batchEntry struct {
	index    int
	file     BatchFile
	code     string
	parsed   *matching.ParsedFilename
	revision float64
}

// ResolveBatch parses every filename, matches each distinct parsed identity
// against the project list once, and submits matched files as pending
// uploads. Files of the same identity are dispatched highest revision first.
func (s *uploadService) ResolveBatch(ctx context.Context, files []BatchFile, uploadedBy uuid.UUID) ([]domain.BatchOutcome, error) {
	parser, labelToCode, err := s.buildParser(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.BatchOutcome, len(files))

	groups := make(map[string][]batchEntry)
	var groupOrder []string
	for i, f := range files {
		outcomes[i].FileName = f.Name

		parsed := parser.Parse(f.Name)
		if parsed == nil {
			outcomes[i].Status = domain.BatchOutcomeNoDocType
			outcomes[i].Detail = "no document type label recognized"
			continue
		}
		code := labelToCode[strings.ToUpper(parsed.DocType)]

		entry := batchEntry{
			index:    i,
			file:     f,
			code:     code,
			parsed:   parsed,
			revision: matching.ExtractRevision(f.Name),
		}
		key := code + "|" + strings.ToUpper(parsed.PartName) + "|" + strings.ToUpper(parsed.PartNumber)
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], entry)
	}

	for _, key := range groupOrder {
		entries := groups[key]
		parsed := entries[0].parsed

		// One match per identity; every file of the group shares the result.
		best, err := s.matcher.Best(ctx, parsed.PartName, parsed.PartNumber)
		if err != nil {
			for _, e := range entries {
				outcomes[e.index].Status = domain.BatchOutcomeError
				outcomes[e.index].Detail = err.Error()
			}
			continue
		}
		if best == nil {
			for _, e := range entries {
				outcomes[e.index].Status = domain.BatchOutcomeNoMatch
				outcomes[e.index].Detail = "no project above similarity threshold"
			}
			continue
		}

		// Higher claimed revisions go first; ties break on how close the
		// whole filename is to the matched item name.
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].revision != entries[j].revision {
				return entries[i].revision > entries[j].revision
			}
			return fileSimilarity(entries[i].file.Name, best.Project.ItemName) >
				fileSimilarity(entries[j].file.Name, best.Project.ItemName)
		})

		for _, e := range entries {
			projectID := best.Project.ID
			_, err := s.revisions.SubmitPending(ctx, SubmitPendingInput{
				ProjectID:   projectID,
				DocTypeCode: e.code,
				FileName:    e.file.Name,
				Content:     e.file.Content,
				Size:        e.file.Size,
				UploadedBy:  uploadedBy,
				Source:      domain.UploadSourceAuto,
			})
			if err != nil {
				outcomes[e.index].Status = domain.BatchOutcomeError
				outcomes[e.index].ProjectID = &projectID
				outcomes[e.index].Score = best.Score
				outcomes[e.index].Detail = err.Error()
				continue
			}
			outcomes[e.index].Status = domain.BatchOutcomeMatched
			outcomes[e.index].ProjectID = &projectID
			outcomes[e.index].Score = best.Score
			outcomes[e.index].Revision = e.revision
		}
	}

	return outcomes, nil
}

// MatchPreview parses one filename and returns every candidate project
// without submitting anything.
func (s *uploadService) MatchPreview(ctx context.Context, filename string) (*matching.ParsedFilename, []matching.Candidate, error) {
	parser, _, err := s.buildParser(ctx)
	if err != nil {
		return nil, nil, err
	}
	parsed := parser.Parse(filename)
	if parsed == nil {
		return nil, nil, nil
	}
	candidates, err := s.matcher.All(ctx, parsed.PartName, parsed.PartNumber)
	if err != nil {
		return nil, nil, err
	}
	return parsed, candidates, nil
}

// buildParser assembles a filename parser over the active document-type
// registry. Both codes and display names act as recognizable labels.
func (s *uploadService) buildParser(ctx context.Context) (*matching.Parser, map[string]string, error) {
	docTypes, err := s.docTypeRepo.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	var labels []string
	labelToCode := make(map[string]string, len(docTypes)*2)
	for _, dt := range docTypes {
		labels = append(labels, dt.Code)
		labelToCode[strings.ToUpper(dt.Code)] = dt.Code
		if dt.Name != "" && !strings.EqualFold(dt.Name, dt.Code) {
			labels = append(labels, dt.Name)
			labelToCode[strings.ToUpper(dt.Name)] = dt.Code
		}
	}
	return matching.NewParser(labels), labelToCode, nil
}

func fileSimilarity(filename, itemName string) float64 {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return matching.Similarity(base, itemName)
}
