package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostRequest is the request body for creating or replacing a post.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GetPosts handles GET /post/all with optional search and pagination.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	search := c.Query("search")

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		Search: search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to list posts", "error", err)
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost handles GET /post/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// CreatePost handles POST /post/
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondServiceError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		OwnerID: userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "Post created", "post_id", post.ID.String())
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /post/:id as a full replacement of title and content.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := parsePostID(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondServiceError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		CallerID: userID,
		PostID:   postID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost handles DELETE /post/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	postID, err := parsePostID(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		CallerID: userID,
		PostID:   postID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "Post deleted", "post_id", postID.String())
	return c.SendStatus(fiber.StatusNoContent)
}
