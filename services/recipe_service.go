package services

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"recipe-api/models"
	"recipe-api/repositories"
	"recipe-api/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeService interface {
	CreateRecipe(req models.CreateRecipeRequest, userID uint) (*models.Recipe, error)
	GetRecipes(params models.RecipeListParams, userID uint) ([]models.Recipe, error)
	GetRecipe(id, userID uint) (*models.Recipe, error)
	UpdateRecipe(id uint, req models.UpdateRecipeRequest, userID uint) (*models.Recipe, error)
	DeleteRecipe(id, userID uint) error
	UploadImage(id, userID uint, fileHeader *multipart.FileHeader) (*models.Recipe, error)
}

type recipeService struct {
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
	uploader       storage.Uploader
}

func NewRecipeService(recipeRepo repositories.RecipeRepository, tagRepo repositories.TagRepository, ingredientRepo repositories.IngredientRepository, uploader storage.Uploader) RecipeService {
	return &recipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		uploader:       uploader,
	}
}

func (s *recipeService) CreateRecipe(req models.CreateRecipeRequest, userID uint) (*models.Recipe, error) {
	tags, err := s.resolveTags(userID, req.Tags)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.resolveIngredients(userID, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Description: req.Description,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(userID, recipe.ID)
}

func (s *recipeService) GetRecipes(params models.RecipeListParams, userID uint) ([]models.Recipe, error) {
	return s.recipeRepo.GetList(userID, parseIDList(params.Tags), parseIDList(params.Ingredients))
}

func (s *recipeService) GetRecipe(id, userID uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "recipe not found"}
		}
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe applies the patch and reconciles associations. A nil tag or
// ingredient list leaves the association untouched; a present list clears the
// set and rebuilds it from the given names. The owner never changes.
func (s *recipeService) UpdateRecipe(id uint, req models.UpdateRecipeRequest, userID uint) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}

	var tags []models.Tag
	if req.Tags != nil {
		tags, err = s.resolveTags(userID, *req.Tags)
		if err != nil {
			return nil, err
		}
	}

	var ingredients []models.Ingredient
	if req.Ingredients != nil {
		ingredients, err = s.resolveIngredients(userID, *req.Ingredients)
		if err != nil {
			return nil, err
		}
	}

	if err := s.recipeRepo.Update(recipe, tags, ingredients, req.Tags != nil, req.Ingredients != nil); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(userID, recipe.ID)
}

func (s *recipeService) DeleteRecipe(id, userID uint) error {
	if _, err := s.GetRecipe(id, userID); err != nil {
		return err
	}
	return s.recipeRepo.Delete(userID, id)
}

func (s *recipeService) UploadImage(id, userID uint, fileHeader *multipart.FileHeader) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(id, userID)
	if err != nil {
		return nil, err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, models.ErrorValidation{Message: "uploaded file must be an image"}
	}

	url, err := s.uploader.UploadImage(fileHeader, uuid.NewString())
	if err != nil {
		return nil, err
	}

	recipe.Image = url
	if err := s.recipeRepo.Update(recipe, nil, nil, false, false); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(userID, recipe.ID)
}

// resolveTags turns name specs into persisted tags owned by the user,
// reusing an existing (user, name) row when present. Duplicate names within
// one request collapse to a single entry.
func (s *recipeService) resolveTags(userID uint, specs []models.TagSpec) ([]models.Tag, error) {
	tags := []models.Tag{}
	seen := make(map[string]bool)

	for _, spec := range specs {
		if seen[spec.Name] {
			continue
		}
		seen[spec.Name] = true

		tag, err := s.tagRepo.GetByName(userID, spec.Name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			tag = &models.Tag{UserID: userID, Name: spec.Name}
			if err := s.tagRepo.Create(tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func (s *recipeService) resolveIngredients(userID uint, specs []models.IngredientSpec) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	seen := make(map[string]bool)

	for _, spec := range specs {
		if seen[spec.Name] {
			continue
		}
		seen[spec.Name] = true

		ingredient, err := s.ingredientRepo.GetByName(userID, spec.Name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			ingredient = &models.Ingredient{UserID: userID, Name: spec.Name}
			if err := s.ingredientRepo.Create(ingredient); err != nil {
				return nil, err
			}
		}
		ingredients = append(ingredients, *ingredient)
	}

	return ingredients, nil
}

func parseIDList(raw string) []uint {
	if raw == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
