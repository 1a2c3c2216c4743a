package handlers

import (
	"errors"
	"strconv"

	"recipe-api/helper"
	"recipe-api/models"
	"recipe-api/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
	Helper            *helper.HTTPHelper
}

func NewIngredientHandler(ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		Helper:            &helper.HTTPHelper{},
	}
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	ingredient, err := h.ingredientService.CreateIngredient(req, userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Ingredient created successfully", ingredient)
}

func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	ingredients, err := h.ingredientService.GetIngredients(params, userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(uint(id), userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	ingredient, err := h.ingredientService.UpdateIngredient(uint(id), req, userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Ingredient updated successfully", ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.ingredientService.DeleteIngredient(uint(id), userID.(uint)); err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Ingredient deleted successfully", h.Helper.EmptyJsonMap())
}
