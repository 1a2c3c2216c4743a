package services

import (
	"errors"

	"recipe-api/models"
	"recipe-api/repositories"

	"gorm.io/gorm"
)

type IngredientService interface {
	CreateIngredient(req models.CreateIngredientRequest, userID uint) (*models.Ingredient, error)
	GetIngredients(params models.ListParams, userID uint) ([]models.Ingredient, error)
	GetIngredient(id, userID uint) (*models.Ingredient, error)
	UpdateIngredient(id uint, req models.UpdateIngredientRequest, userID uint) (*models.Ingredient, error)
	DeleteIngredient(id, userID uint) error
}

type ingredientService struct {
	ingredientRepo repositories.IngredientRepository
}

func NewIngredientService(ingredientRepo repositories.IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

func (s *ingredientService) CreateIngredient(req models.CreateIngredientRequest, userID uint) (*models.Ingredient, error) {
	existing, err := s.ingredientRepo.GetByName(userID, req.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredient := &models.Ingredient{
		UserID: userID,
		Name:   req.Name,
	}

	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}

func (s *ingredientService) GetIngredients(params models.ListParams, userID uint) ([]models.Ingredient, error) {
	return s.ingredientRepo.GetAll(userID, params.AssignedOnly)
}

func (s *ingredientService) GetIngredient(id, userID uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "ingredient not found"}
		}
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(id uint, req models.UpdateIngredientRequest, userID uint) (*models.Ingredient, error) {
	ingredient, err := s.GetIngredient(id, userID)
	if err != nil {
		return nil, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(id, userID uint) error {
	if _, err := s.GetIngredient(id, userID); err != nil {
		return err
	}
	return s.ingredientRepo.Delete(userID, id)
}
