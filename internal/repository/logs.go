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

// LogEntryDocument is the stored form of model.LogEntry. The two types share
// their field list so the service converts between them directly.
type LogEntryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp"`
	Level      string             `bson:"level"`
	Message    string             `bson:"message"`
	RequestID  string             `bson:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty"`
	Path       string             `bson:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty"`
	ClientID   string             `bson:"client_id,omitempty"`
	ActionType string             `bson:"action_type,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty"`
}

// stamp assigns an ID and an insertion time to entries that lack them.
func (d *LogEntryDocument) stamp(now time.Time) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.Timestamp.IsZero() {
		d.Timestamp = now
	}
}

// LogsRepository stores request and audit entries in the logs collection.
// Old entries expire through the TTL index set by MongoDB.SetLogsTTL.
type LogsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts one entry.
func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	entry.stamp(r.now())
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts a batch of entries with one unordered write, so one bad
// document does not drop the rest of the batch.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}

	now := r.now()
	docs := make([]any, 0, len(entries))
	for _, entry := range entries {
		entry.stamp(now)
		docs = append(docs, entry)
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// LogQueryOptions filters stored entries. Empty fields match everything.
type LogQueryOptions struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	ClientID  string
	Action    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// filter builds the query document shared by Query and Count. Path is a
// case-insensitive substring match; the other fields match exactly.
func (opts LogQueryOptions) filter() bson.M {
	filter := bson.M{}

	for key, value := range map[string]string{
		"request_id":  opts.RequestID,
		"level":       opts.Level,
		"method":      opts.Method,
		"client_id":   opts.ClientID,
		"action_type": opts.Action,
	} {
		if value != "" {
			filter[key] = value
		}
	}
	if opts.Path != "" {
		filter["path"] = bson.M{"$regex": regexp.QuoteMeta(opts.Path), "$options": "i"}
	}

	window := bson.M{}
	if opts.StartTime != nil {
		window["$gte"] = *opts.StartTime
	}
	if opts.EndTime != nil {
		window["$lte"] = *opts.EndTime
	}
	if len(window) > 0 {
		filter["timestamp"] = window
	}

	return filter
}

// Query returns matching entries, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	find := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		find.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		find.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), find)
	if err != nil {
		return nil, err
	}

	var entries []*LogEntryDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching opts, ignoring Limit and Skip.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
