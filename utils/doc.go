package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gin-gonic/gin"
)

// RenderDoc normalizes a raw store document for the API: the ObjectID under
// "_id" becomes an "id" hex string and timestamps become ISO-8601 text.
// The input document is not modified.
func RenderDoc(doc bson.M) gin.H {
	out := gin.H{}
	for k, v := range doc {
		out[k] = renderValue(v)
	}
	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = id
	}
	return out
}

// RenderDocs normalizes a slice of raw store documents.
func RenderDocs(docs []bson.M) []gin.H {
	items := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		items = append(items, RenderDoc(d))
	}
	return items
}

func renderValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}
