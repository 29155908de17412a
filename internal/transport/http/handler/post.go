package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gopherfeed/internal/app"
	"gopherfeed/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	Content string `json:"content"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List is the public feed; no identity required.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": posts})
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, username, ok := identityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access token required")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Post content is required")
		return
	}

	post, err := h.postService.Create(app.CreatePostInput{
		AuthorID:       userID,
		AuthorUsername: username,
		Content:        req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrPostEmpty), errors.Is(err, app.ErrPostTooLong):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"data": post})
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access token required")
		return
	}

	postID := strings.TrimSpace(c.Param("id"))
	if err := h.postService.Delete(userID, postID); err != nil {
		switch {
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrNotPostOwner):
			response.Error(c, http.StatusForbidden, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
