package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"vibehunt/models"
)

func strptr(s string) *string { return &s }

// demoPosts returns the demo board content inserted into an empty store.
func demoPosts(now time.Time) []models.Post {
	return []models.Post{
		{
			Title:       "AI Thumbnail Wizard",
			Description: "Auto-generate YouTube thumbnails that actually get clicks using vibe-based prompts.",
			Tags:        []string{"AI", "Creator", "SaaS"},
			Link:        strptr("https://ai-thumb-wizard.dev"),
			AuthorName:  strptr("Nova"),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Tweet-to-Course",
			Description: "Turn a viral tweet thread into a paid micro-course with landing page in minutes.",
			Tags:        []string{"Education", "NoCode"},
			AuthorName:  strptr("Ray"),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Adless News",
			Description: "A clean daily tech digest with zero ads. Monetize via pro insights.",
			Tags:        []string{"Media", "Subscription"},
			Link:        strptr("https://adless.news"),
			AuthorName:  strptr("Sage"),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Cold DM Crafter",
			Description: "Personalized outreach messages that feel human and get replies.",
			Tags:        []string{"Sales", "AI"},
			AuthorName:  strptr("Ivy"),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedDemo bootstraps demo posts, votes, and comments when the post
// collection is empty. The emptiness check makes it idempotent across
// restarts; it never runs as part of request serving.
func SeedDemo(ctx context.Context, store Store) error {
	count, err := store.Count(ctx, CollPost, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, post := range demoPosts(now) {
		oid, err := store.InsertOne(ctx, CollPost, post)
		if err != nil {
			return err
		}
		pid := oid.Hex()

		// The i-th post gets i+1 seed votes so the default votes ordering is
		// visible out of the box.
		for j := 0; j <= i; j++ {
			vote := models.Vote{
				PostID:    pid,
				ClientID:  fmt.Sprintf("seed-client-%d", j),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if _, err := store.InsertOne(ctx, CollVote, vote); err != nil {
				return err
			}
		}

		comment := models.Comment{
			PostID:     pid,
			AuthorName: strptr("Guest"),
			Content:    "Love this!",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := store.InsertOne(ctx, CollComment, comment); err != nil {
			return err
		}
	}
	return nil
}
