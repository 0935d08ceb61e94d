package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Accepted listing parameter values.
const (
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeAll   = "all"

	SortByVotes    = "votes"
	SortByComments = "comments"
	SortByLatest   = "latest"
)

// ListingParams are the post listing inputs after request validation.
type ListingParams struct {
	Page      int
	PageSize  int
	Timeframe string
	SortBy    string
}

// ValidTimeframe reports whether the value is one of week, month, all.
func ValidTimeframe(v string) bool {
	return v == TimeframeWeek || v == TimeframeMonth || v == TimeframeAll
}

// ValidSortBy reports whether the value is one of votes, comments, latest.
func ValidSortBy(v string) bool {
	return v == SortByVotes || v == SortByComments || v == SortByLatest
}

// TimeframeFilter builds the created_at window filter for a timeframe.
// "all" yields an empty filter.
func TimeframeFilter(timeframe string, now time.Time) bson.M {
	var since time.Time
	switch timeframe {
	case TimeframeWeek:
		since = now.AddDate(0, 0, -7)
	case TimeframeMonth:
		since = now.AddDate(0, 0, -30)
	default:
		return bson.M{}
	}
	return bson.M{"created_at": bson.M{"$gte": since}}
}

// countLookup builds a correlated $lookup counting stage source: it collects
// the foreign documents whose post_id (stored as hex text) equals this post's
// stringified _id.
func countLookup(from, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "as", Value: as},
		{Key: "let", Value: bson.D{{Key: "pid", Value: bson.D{{Key: "$toString", Value: "$_id"}}}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{
				{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$post_id", "$$pid"}}}},
			}}},
		}},
	}}}
}

// ListingPipeline builds the post listing aggregation: time-window match,
// per-post vote and comment counts, sort (created_at descending breaks ties),
// then skip/limit pagination. Counts are recomputed on every call so they are
// always fresh.
func ListingPipeline(p ListingParams, now time.Time) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: TimeframeFilter(p.Timeframe, now)}},
		countLookup(CollVote, "votes_docs"),
		countLookup(CollComment, "comments_docs"),
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "votes_count", Value: bson.D{{Key: "$size", Value: "$votes_docs"}}},
			{Key: "comments_count", Value: bson.D{{Key: "$size", Value: "$comments_docs"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "votes_docs", Value: 0},
			{Key: "comments_docs", Value: 0},
		}}},
	}

	switch p.SortBy {
	case SortByVotes:
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "votes_count", Value: -1},
			{Key: "created_at", Value: -1},
		}}})
	case SortByComments:
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "comments_count", Value: -1},
			{Key: "created_at", Value: -1},
		}}})
	default:
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: -1},
		}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: (p.Page - 1) * p.PageSize}},
		bson.D{{Key: "$limit", Value: p.PageSize}},
	)
	return pipeline
}
