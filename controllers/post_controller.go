package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vibehunt/database"
	"vibehunt/models"
	"vibehunt/utils"
)

const postsListCachePrefix = "cache:posts:list:"

// PostController manages post creation and the enriched post listing.
type PostController struct {
	store database.Store
}

// NewPostController creates a new PostController instance.
func NewPostController(store database.Store) *PostController {
	return &PostController{store: store}
}

// ListPosts returns a page of posts enriched with live vote and comment
// counts, filtered by timeframe and ordered by the requested sort.
func (p *PostController) ListPosts(ctx *gin.Context) {
	if p.store == nil {
		utils.Error(ctx, http.StatusInternalServerError, "Database not configured")
		return
	}

	params, err := parseListingParams(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	cacheKey := fmt.Sprintf("%stf=%s:sort=%s:page=%d:size=%d",
		postsListCachePrefix, params.Timeframe, params.SortBy, params.Page, params.PageSize)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	now := time.Now().UTC()
	reqCtx := ctx.Request.Context()

	docs, err := p.store.Aggregate(reqCtx, database.CollPost, database.ListingPipeline(params, now))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}

	// Total counts the time window only; pagination and sort never change it.
	total, err := p.store.Count(reqCtx, database.CollPost, database.TimeframeFilter(params.Timeframe, now))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to count posts")
		return
	}

	payload := gin.H{
		"items":     utils.RenderDocs(docs),
		"total":     total,
		"page":      params.Page,
		"page_size": params.PageSize,
	}
	utils.CacheSetJSON(cacheKey, payload, utils.CacheTTL())
	ctx.JSON(http.StatusOK, payload)
}

// CreatePost validates and stores a new idea post.
func (p *PostController) CreatePost(ctx *gin.Context) {
	if p.store == nil {
		utils.Error(ctx, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req models.PostCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, "title cannot be empty")
		return
	}
	description := utils.Sanitize(strings.TrimSpace(req.Description))
	if description == "" {
		utils.Error(ctx, http.StatusBadRequest, "description cannot be empty")
		return
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if t := utils.Sanitize(strings.TrimSpace(tag)); t != "" {
			tags = append(tags, t)
		}
	}

	now := time.Now().UTC()
	post := models.Post{
		Title:       title,
		Description: description,
		Link:        req.Link,
		Tags:        tags,
		AuthorName:  sanitizeOptional(req.AuthorName),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	oid, err := p.store.InsertOne(ctx.Request.Context(), database.CollPost, post)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	ctx.JSON(http.StatusOK, gin.H{"id": oid.Hex()})
}

// parseListingParams validates the listing query string. Absent values get
// defaults; malformed or out-of-range values are rejected before the store is
// touched.
func parseListingParams(ctx *gin.Context) (database.ListingParams, error) {
	params := database.ListingParams{
		Page:      1,
		PageSize:  8,
		Timeframe: database.TimeframeAll,
		SortBy:    database.SortByVotes,
	}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("page must be an integer >= 1")
		}
		params.Page = page
	}
	if raw := ctx.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > 50 {
			return params, fmt.Errorf("page_size must be an integer in [1,50]")
		}
		params.PageSize = size
	}
	if raw := ctx.Query("timeframe"); raw != "" {
		if !database.ValidTimeframe(raw) {
			return params, fmt.Errorf("timeframe must be one of week, month, all")
		}
		params.Timeframe = raw
	}
	if raw := ctx.Query("sort_by"); raw != "" {
		if !database.ValidSortBy(raw) {
			return params, fmt.Errorf("sort_by must be one of votes, comments, latest")
		}
		params.SortBy = raw
	}
	return params, nil
}

func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	clean := utils.Sanitize(strings.TrimSpace(*s))
	return &clean
}
