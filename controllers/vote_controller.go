package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"vibehunt/database"
	"vibehunt/models"
	"vibehunt/utils"
)

// VoteController toggles anonymous upvotes keyed by (post_id, client_id).
type VoteController struct {
	store database.Store
}

// NewVoteController creates a new VoteController instance.
func NewVoteController(store database.Store) *VoteController {
	return &VoteController{store: store}
}

// ToggleVote removes the pair's live vote if one exists, otherwise casts one.
// The two store operations are not transactional: concurrent toggles for the
// same pair can race, which is accepted behavior.
func (v *VoteController) ToggleVote(ctx *gin.Context) {
	if v.store == nil {
		utils.Error(ctx, http.StatusInternalServerError, "Database not configured")
		return
	}

	var req models.VoteToggle
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	if !ensurePostExists(ctx, v.store, req.PostID) {
		return
	}

	reqCtx := ctx.Request.Context()
	existing, err := v.store.FindOne(reqCtx, database.CollVote, bson.M{
		"post_id":   req.PostID,
		"client_id": req.ClientID,
	})
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, "failed to look up vote")
		return
	}

	if existing != nil {
		if err := v.store.DeleteOne(reqCtx, database.CollVote, bson.M{"_id": existing["_id"]}); err != nil {
			utils.Error(ctx, http.StatusInternalServerError, "failed to remove vote")
			return
		}
		utils.InvalidateByPrefix(postsListCachePrefix)
		ctx.JSON(http.StatusOK, gin.H{"status": "unvoted"})
		return
	}

	now := time.Now().UTC()
	vote := models.Vote{
		PostID:    req.PostID,
		ClientID:  req.ClientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	oid, err := v.store.InsertOne(reqCtx, database.CollVote, vote)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to cast vote")
		return
	}

	utils.InvalidateByPrefix(postsListCachePrefix)
	ctx.JSON(http.StatusOK, gin.H{"status": "voted", "id": oid.Hex()})
}
