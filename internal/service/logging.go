// Package service holds the operational logging service backed by the logs repository.
package service

import (
	"context"
	"time"

	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggingService stores and reads request and audit log entries. The storefront only
// writes; QueryLogs and CountLogs are the operator read side used by
// scripts/session_audit.go to replay one session's trail.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService on a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a logging service on repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores entry. A missing ID or timestamp is filled in on entry itself.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, s.modelToDocument(entry))
}

// CreateLogs stores entries in one batch.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.modelToDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs returns matching entries newest first.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, toRepositoryOptions(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = s.documentToModel(doc)
	}
	return entries, nil
}

// CountLogs counts matching entries.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, toRepositoryOptions(opts))
}

func toRepositoryOptions(opts model.LogQueryOptions) repository.LogQueryOptions {
	return repository.LogQueryOptions{
		RequestID:  opts.RequestID,
		SessionID:  opts.SessionID,
		Level:      opts.Level,
		ActionType: opts.ActionType,
		Method:     opts.Method,
		Path:       opts.Path,
		StartTime:  opts.StartTime,
		EndTime:    opts.EndTime,
		Limit:      opts.Limit,
		Skip:       opts.Skip,
	}
}

func (s *LoggingServiceImpl) modelToDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.LogEntryDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		SessionID:  entry.SessionID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Error:      entry.Error,
		ActionType: entry.ActionType,
		Fields:     entry.Fields,
	}
}

func (s *LoggingServiceImpl) documentToModel(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		SessionID:  doc.SessionID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Error:      doc.Error,
		ActionType: doc.ActionType,
		Fields:     doc.Fields,
	}
}
