package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRenderDoc(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 10, 8, 15, 30, 0, time.UTC)

	out := RenderDoc(bson.M{
		"_id":        oid,
		"title":      "Adless News",
		"tags":       []string{"Media"},
		"created_at": primitive.NewDateTimeFromTime(created),
		"updated_at": created,
		"link":       nil,
	})

	assert.Equal(t, oid.Hex(), out["id"])
	assert.NotContains(t, out, "_id")
	assert.Equal(t, "Adless News", out["title"])
	assert.Equal(t, "2024-03-10T08:15:30Z", out["created_at"])
	assert.Equal(t, "2024-03-10T08:15:30Z", out["updated_at"])
	assert.Nil(t, out["link"])
}

func TestRenderDocWithoutID(t *testing.T) {
	out := RenderDoc(bson.M{"votes_count": int32(3)})
	assert.Equal(t, int32(3), out["votes_count"])
	assert.NotContains(t, out, "id")
}

func TestRenderDocs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	items := RenderDocs([]bson.M{{"_id": a}, {"_id": b}})
	assert.Len(t, items, 2)
	assert.Equal(t, a.Hex(), items[0]["id"])
	assert.Equal(t, b.Hex(), items[1]["id"])

	assert.Empty(t, RenderDocs(nil))
}
