//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name string
		opts LogQueryOptions
		want bson.M
	}{
		{name: "empty matches everything", opts: LogQueryOptions{}, want: bson.M{}},
		{
			name: "equality fields",
			opts: LogQueryOptions{RequestID: "r1", SessionID: "s1", Level: "info", ActionType: "order_submitted", Method: "POST"},
			want: bson.M{"request_id": "r1", "session_id": "s1", "level": "info", "action_type": "order_submitted", "method": "POST"},
		},
		{
			name: "path prefix is quoted",
			opts: LogQueryOptions{Path: "/api/cart.quantity"},
			want: bson.M{"path": bson.M{"$regex": primitive.Regex{Pattern: `^/api/cart\.quantity`}}},
		},
		{
			name: "time window",
			opts: LogQueryOptions{StartTime: &start, EndTime: &end},
			want: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name: "start only",
			opts: LogQueryOptions{StartTime: &start},
			want: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name: "paging does not filter",
			opts: LogQueryOptions{Limit: 10, Skip: 5},
			want: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.filter())
		})
	}
}

func TestPrepare(t *testing.T) {
	entry := &LogEntryDocument{Message: "x"}
	prepare(entry)
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	id := primitive.NewObjectID()
	ts := time.Unix(100, 0)
	kept := &LogEntryDocument{ID: id, Timestamp: ts}
	prepare(kept)
	assert.Equal(t, id, kept.ID)
	assert.Equal(t, ts, kept.Timestamp)
}
