package handler

import (
	"net/http"
	"time"

	"placebook/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required" example:"Museum"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
}

func newCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
		Name:      category.Name,
	}
}

// GetCategories godoc
// @Summary      Get all categories
// @Description  Retrieves the categories a place can be filed under.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   CategoryResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory godoc
// @Summary      Create a new category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CategoryInput true "Category Info"
// @Success      201  {object}  CategoryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Category already exists"
// @Router       /admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.Categories.Create(c.Request.Context(), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCategoryResponse(*category))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Deletes a category that no place uses.
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Failure      409  {object}  ErrorResponse "Category in use"
// @Router       /admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted"})
}
