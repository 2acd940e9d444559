package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogEntryDocument is the stored shape of a request or audit log entry.
type LogEntryDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	RequestID  string                 `bson:"request_id,omitempty"`
	SessionID  string                 `bson:"session_id,omitempty"`
	Method     string                 `bson:"method,omitempty"`
	Path       string                 `bson:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty"`
	ActionType string                 `bson:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

// LogQueryOptions filters Query and Count. Zero values match everything; Limit and Skip
// only apply to Query.
type LogQueryOptions struct {
	RequestID  string
	SessionID  string
	Level      string
	ActionType string
	Method     string
	Path       string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}

func (o LogQueryOptions) filter() bson.M {
	filter := bson.M{}
	equals := map[string]string{
		"request_id":  o.RequestID,
		"session_id":  o.SessionID,
		"level":       o.Level,
		"action_type": o.ActionType,
		"method":      o.Method,
	}
	for field, value := range equals {
		if value != "" {
			filter[field] = value
		}
	}
	if o.Path != "" {
		filter["path"] = bson.M{"$regex": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(o.Path)}}
	}
	if o.StartTime != nil || o.EndTime != nil {
		window := bson.M{}
		if o.StartTime != nil {
			window["$gte"] = *o.StartTime
		}
		if o.EndTime != nil {
			window["$lte"] = *o.EndTime
		}
		filter["timestamp"] = window
	}
	return filter
}

// LogsRepository reads and writes the logs collection.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a repository on db.Logs.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

func prepare(entry *LogEntryDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

// Create inserts one entry, assigning ID and timestamp when missing.
func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	prepare(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts entries in one unordered batch.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepare(entry)
		docs[i] = entry
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns matching entries newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]*LogEntryDocument, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of matching entries.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
