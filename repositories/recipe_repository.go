package repositories

import (
	"recipe-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(userID, id uint) (*models.Recipe, error)
	GetList(userID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error)
	Update(recipe *models.Recipe, tags []models.Tag, ingredients []models.Ingredient, replaceTags, replaceIngredients bool) error
	Delete(userID, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists the recipe row and its tag/ingredient associations in one
// transaction (gorm wraps create-with-associations itself).
func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) GetByID(userID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Where("user_id = ?", userID).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepository) GetList(userID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := r.db.Model(&models.Recipe{}).
		Where("recipes.user_id = ?", userID).
		Preload("Tags").
		Preload("Ingredients")

	// The ID filters join through to the tag/ingredient rows so that
	// soft-deleted entries no longer match via leftover join rows.
	if len(tagIDs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id AND tags.deleted_at IS NULL").
			Where("recipe_tags.tag_id IN ?", tagIDs).
			Distinct("recipes.*")
	}

	if len(ingredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id AND ingredients.deleted_at IS NULL").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs).
			Distinct("recipes.*")
	}

	err := query.Order("recipes.id desc").Find(&recipes).Error
	return recipes, err
}

// Update saves the scalar fields and, where requested, replaces the tag and
// ingredient association sets, all inside a single transaction. An empty
// replacement set clears the association.
func (r *recipeRepository) Update(recipe *models.Recipe, tags []models.Tag, ingredients []models.Ingredient, replaceTags, replaceIngredients bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}

		if replaceTags {
			if len(tags) == 0 {
				if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
					return err
				}
			} else if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}

		if replaceIngredients {
			if len(ingredients) == 0 {
				if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
					return err
				}
			} else if err := tx.Model(recipe).Association("Ingredients").Replace(&ingredients); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *recipeRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Recipe{}, id).Error
}
