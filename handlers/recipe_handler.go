package handlers

import (
	"net/http"
	"strconv"

	"recipe-api/helper"
	"recipe-api/models"
	"recipe-api/services"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService services.RecipeService
	Helper        *helper.HTTPHelper
}

func NewRecipeHandler(recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		Helper:        &helper.HTTPHelper{},
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(req, userID.(uint))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewRecipeDetail(recipe))
}

// GetRecipes returns the list view: no description or image fields.
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.RecipeListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := h.recipeService.GetRecipes(params, userID.(uint))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": models.NewRecipeSummaries(recipes),
		"total":   len(recipes),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(uint(id), userID.(uint))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	var req models.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(uint(id), req, userID.(uint))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if err := h.recipeService.DeleteRecipe(uint(id), userID.(uint)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	recipe, err := h.recipeService.UploadImage(uint(id), userID.(uint), fileHeader)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecipeDetail(recipe))
}

func (h *RecipeHandler) respondError(c *gin.Context, err error) {
	c.JSON(h.Helper.GetStatusCode(err), gin.H{"error": err.Error()})
}
