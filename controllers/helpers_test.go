package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"vibehunt/database"
)

func newTestRouter(store database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	posts := NewPostController(store)
	comments := NewCommentController(store)
	votes := NewVoteController(store)
	diag := NewDiagController(store)

	r.GET("/", diag.Root)
	r.GET("/test", diag.TestDatabase)
	r.GET("/api/posts", posts.ListPosts)
	r.POST("/api/posts", posts.CreatePost)
	r.POST("/api/comments", comments.CreateComment)
	r.GET("/api/comments/:post_id", comments.ListComments)
	r.POST("/api/vote/toggle", votes.ToggleVote)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return out
}
