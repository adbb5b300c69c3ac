package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DailyClicks is the aggregation result of one invite-day bucket.
type DailyClicks struct {
	InviteID uint64 `bson:"invite_id"`
	Date     string `bson:"date"`
	Clicks   int    `bson:"clicks"`
}

type ClickEventRepo interface {
	SaveClickEvent(ctx context.Context, event *ClickEvent) error
	AggregateDailyClicks(ctx context.Context, from, to time.Time) ([]*DailyClicks, error)
}

type clickEventRepoImpl struct {
	col *mongo.Collection
}

func NewClickEventRepo(db *mongo.Database) ClickEventRepo {
	return &clickEventRepoImpl{
		col: db.Collection("invite_click_events"),
	}
}

func (s *clickEventRepoImpl) SaveClickEvent(ctx context.Context, event *ClickEvent) error {
	_, err := s.col.InsertOne(ctx, event)
	return err
}

// AggregateDailyClicks buckets raw events by invite and calendar day within
// [from, to).
func (s *clickEventRepoImpl) AggregateDailyClicks(ctx context.Context, from, to time.Time) ([]*DailyClicks, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"clicked_at": bson.M{"$gte": from, "$lt": to},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"invite_id": "$invite_id",
				"date":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$clicked_at"}},
			},
			"clicks": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":       0,
			"invite_id": "$_id.invite_id",
			"date":      "$_id.date",
			"clicks":    1,
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var buckets []*DailyClicks
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}

	return buckets, nil
}
