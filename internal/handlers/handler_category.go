package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade) {
	h := newCategoryHandler(cs)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create category")
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists categories, optionally filtered by type
// @Tags categories
// @Produce  json
// @Param   type query string false "INCOME or EXPENSE"
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var categoryType *domain.CategoryType
	if raw := c.Query("type"); raw != "" {
		t := domain.CategoryType(raw)
		if t != domain.CategoryIncome && t != domain.CategoryExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be INCOME or EXPENSE"})
			return
		}
		categoryType = &t
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), categoryType)
	if err != nil {
		respondServiceError(c, logger, err, "list categories")
		return
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to retrieve category"
// @Router /categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Rename a category
// @Description Updates a category's name; its type is fixed at creation
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to update category"
// @Router /categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category; fails if ledger entries reference it
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} map[string]string "Category is referenced by ledger entries"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondServiceError(c, logger, err, "delete category")
		return
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}
