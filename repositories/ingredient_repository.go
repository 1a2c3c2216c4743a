package repositories

import (
	"recipe-api/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	GetByName(userID uint, name string) (*models.Ingredient, error)
	GetByID(userID, id uint) (*models.Ingredient, error)
	GetAll(userID uint, assignedOnly bool) ([]models.Ingredient, error)
	Update(ingredient *models.Ingredient) error
	Delete(userID, id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepository) GetByName(userID uint, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&ingredient).Error
	return &ingredient, err
}

func (r *ingredientRepository) GetByID(userID, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("user_id = ?", userID).First(&ingredient, id).Error
	return &ingredient, err
}

func (r *ingredientRepository) GetAll(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	query := r.db.Model(&models.Ingredient{}).Where("ingredients.user_id = ?", userID)

	if assignedOnly {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("ingredients.*")
	}

	err := query.Order("ingredients.name desc").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Ingredient{}, id).Error
}
