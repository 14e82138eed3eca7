package server

import (
	"github.com/shivshankarkannoujiya/Medium/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog handles POST /api/v1/blog. The author is always the
// authenticated identity attached by the auth middleware; any authorId in the
// request body is ignored.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Blog created successfully",
		"blogId":  post.ID,
	})
}

// UpdateBlog handles PUT /api/v1/blog. The target id is taken from the body;
// a missing post surfaces as a 500 failure body, not a 404.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		ID      uint   `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Blog id is required"))
	}

	post, err := s.postRepo.Update(ctx, req.ID, req.Title, req.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message": "Blog updated successfully",
		"blog":    post,
	})
}

// GetBlog handles GET /api/v1/blog. The id arrives in the request body; an
// `id` query parameter is accepted for clients that refuse GET bodies. An
// absent post yields a null blog, not a 404.
func (s *Server) GetBlog(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		ID uint `json:"id"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}
	if req.ID == 0 {
		req.ID = uint(c.QueryInt("id"))
	}

	post, err := s.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"blog": post,
	})
}

// ListBlogs handles GET /api/v1/blog/bulk and returns every post.
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	ctx := c.Context()

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"blogs": posts,
	})
}
