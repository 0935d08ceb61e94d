package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vibehunt/database"
	"vibehunt/models"
	"vibehunt/utils"
)

const commentsCachePrefix = "cache:comments:post:"

// CommentController manages comment creation and per-post listing.
type CommentController struct {
	store database.Store
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(store database.Store) *CommentController {
	return &CommentController{store: store}
}

// CreateComment attaches a comment to an existing post.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	if c.store == nil {
		utils.Error(ctx, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req models.CommentCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	content := utils.Sanitize(req.Content)
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, "content cannot be empty")
		return
	}

	if !ensurePostExists(ctx, c.store, req.PostID) {
		return
	}

	now := time.Now().UTC()
	comment := models.Comment{
		PostID:     req.PostID,
		AuthorName: sanitizeOptional(req.AuthorName),
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	oid, err := c.store.InsertOne(ctx.Request.Context(), database.CollComment, comment)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create comment")
		return
	}

	// New comments change comments_count in listings and the per-post thread.
	utils.InvalidateByPrefix(postsListCachePrefix)
	utils.InvalidateByPrefix(commentsCachePrefix + req.PostID)
	ctx.JSON(http.StatusOK, gin.H{"id": oid.Hex()})
}

// ListComments returns all comments for a post id. An unknown post simply
// yields an empty list.
func (c *CommentController) ListComments(ctx *gin.Context) {
	if c.store == nil {
		utils.Error(ctx, http.StatusInternalServerError, "Database not configured")
		return
	}

	postID := ctx.Param("post_id")
	cacheKey := commentsCachePrefix + postID
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	docs, err := c.store.Find(ctx.Request.Context(), database.CollComment, bson.M{"post_id": postID})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list comments")
		return
	}

	payload := gin.H{"items": utils.RenderDocs(docs)}
	utils.CacheSetJSON(cacheKey, payload, utils.CacheTTL())
	ctx.JSON(http.StatusOK, payload)
}

// ensurePostExists resolves a post_id string to an existing post, writing the
// error response when it does not. A malformed id is reported the same way as
// a missing post.
func ensurePostExists(ctx *gin.Context, store database.Store, postID string) bool {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "Post not found")
		return false
	}
	if _, err := store.FindOne(ctx.Request.Context(), database.CollPost, bson.M{"_id": oid}); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, "Post not found")
		} else {
			utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		}
		return false
	}
	return true
}
