package csvio

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/repository"
	"compliance-tracker/internal/service/update"
)

type ImportResult struct {
	ImportedCount int      `json:"imported_count"`
	ErrorCount    int      `json:"error_count"`
	Errors        []string `json:"errors,omitempty"`
}

type Service interface {
	ExportUpdates(ctx context.Context) (filename string, data []byte, err error)
	ImportUpdates(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type service struct {
	updateRepo  repository.UpdateRepository
	updateSvc   update.Service
	minioClient *minio.Client
	cfg         *config.Config
	log         *zap.Logger
}

func NewService(updateRepo repository.UpdateRepository, updateSvc update.Service, minioClient *minio.Client, cfg *config.Config, log *zap.Logger) Service {
	return &service{
		updateRepo:  updateRepo,
		updateSvc:   updateSvc,
		minioClient: minioClient,
		cfg:         cfg,
		log:         log,
	}
}

func (s *service) ExportUpdates(ctx context.Context) (string, []byte, error) {
	updates, err := s.updateRepo.ListAll(ctx)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return "", nil, err
	}
	for i := range updates {
		if err := w.Write(recordFromUpdate(&updates[i])); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("updates-export-%s.csv", time.Now().Format("2006-01-02"))

	s.archiveExport(ctx, filename, buf.Bytes())

	return filename, buf.Bytes(), nil
}

// archiveExport keeps a copy of each export in object storage when a MinIO
// client is configured. Failures are logged; the download itself is never
// blocked on the archive.
func (s *service) archiveExport(ctx context.Context, filename string, data []byte) {
	if s.minioClient == nil {
		return
	}

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, filename,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "text/csv",
		})
	if err != nil {
		s.log.Warn("export archive upload failed",
			zap.String("object", filename),
			zap.Error(err))
	}
}

// ImportUpdates loads rows one at a time, collecting per-row errors by line
// number. A bad row never aborts the rest of the file.
func (s *service) ImportUpdates(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	index := columnIndex(header)

	result := &ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		input, err := inputFromRecord(index, record)
		if err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if _, err := s.updateSvc.Create(ctx, input); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.ImportedCount++
	}

	return result, nil
}
