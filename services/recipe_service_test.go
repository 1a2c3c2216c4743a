package services

import (
	"mime/multipart"
	"net/textproto"
	"strconv"
	"testing"

	"recipe-api/models"
	"recipe-api/repositories"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RecipeServiceTestSuite struct {
	suite.Suite
	db                *gorm.DB
	recipeService     RecipeService
	tagService        TagService
	ingredientService IngredientService
	uploader          *fakeUploader
}

type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) UploadImage(fileHeader *multipart.FileHeader, fileID string) (string, error) {
	f.uploads++
	return "https://cdn.example.com/recipes/" + fileID + ".jpg", nil
}

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal("Failed to get sql.DB from gorm:", err)
	}
	// One connection, so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	); err != nil {
		t.Fatal("Failed to migrate test database:", err)
	}

	return db
}

func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())

	recipeRepo := repositories.NewRecipeRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	ingredientRepo := repositories.NewIngredientRepository(suite.db)

	suite.uploader = &fakeUploader{}
	suite.recipeService = NewRecipeService(recipeRepo, tagRepo, ingredientRepo, suite.uploader)
	suite.tagService = NewTagService(tagRepo)
	suite.ingredientService = NewIngredientService(ingredientRepo)
}

func (suite *RecipeServiceTestSuite) createRecipe(userID uint, tags []models.TagSpec, ingredients []models.IngredientSpec) *models.Recipe {
	recipe, err := suite.recipeService.CreateRecipe(models.CreateRecipeRequest{
		Title:       "Sample recipe",
		TimeMinutes: 22,
		Price:       decimal.NewFromFloat(5.25),
		Tags:        tags,
		Ingredients: ingredients,
	}, userID)
	suite.NoError(err)
	return recipe
}

func (suite *RecipeServiceTestSuite) tagNames(recipe *models.Recipe) []string {
	names := []string{}
	for _, tag := range recipe.Tags {
		names = append(names, tag.Name)
	}
	return names
}

func (suite *RecipeServiceTestSuite) TestCreateRecipeWithNewTags() {
	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Thai"}, {Name: "Dinner"}}, nil)

	suite.Len(recipe.Tags, 2)
	suite.ElementsMatch([]string{"Thai", "Dinner"}, suite.tagNames(recipe))
	for _, tag := range recipe.Tags {
		suite.Equal(uint(1), tag.UserID)
	}
}

func (suite *RecipeServiceTestSuite) TestCreateRecipeDuplicateTagSpecs() {
	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Thai"}, {Name: "Thai"}, {Name: "Dinner"}}, nil)

	suite.Len(recipe.Tags, 2)
	suite.ElementsMatch([]string{"Thai", "Dinner"}, suite.tagNames(recipe))
}

func (suite *RecipeServiceTestSuite) TestCreateRecipeReusesExistingTag() {
	existing, err := suite.tagService.CreateTag(models.CreateTagRequest{Name: "Indian"}, 1)
	suite.NoError(err)

	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Indian"}, {Name: "Dinner"}}, nil)

	suite.Len(recipe.Tags, 2)

	// No second "Indian" row was created.
	var count int64
	suite.db.Model(&models.Tag{}).Where("name = ?", "Indian").Count(&count)
	suite.Equal(int64(1), count)

	for _, tag := range recipe.Tags {
		if tag.Name == "Indian" {
			suite.Equal(existing.ID, tag.ID)
		}
	}
}

func (suite *RecipeServiceTestSuite) TestCreateRecipeWithIngredients() {
	recipe := suite.createRecipe(1, nil, []models.IngredientSpec{{Name: "Lemon"}, {Name: "Fish Sauce"}})

	suite.Len(recipe.Ingredients, 2)
	suite.Empty(recipe.Tags)
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipeOmittedTagsUntouched() {
	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Breakfast"}}, nil)

	title := "Renamed recipe"
	updated, err := suite.recipeService.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Title: &title}, 1)
	suite.NoError(err)

	suite.Equal("Renamed recipe", updated.Title)
	suite.Len(updated.Tags, 1)
	suite.Equal("Breakfast", updated.Tags[0].Name)
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipeEmptyTagsClears() {
	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Breakfast"}}, nil)

	empty := []models.TagSpec{}
	updated, err := suite.recipeService.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Tags: &empty}, 1)
	suite.NoError(err)

	suite.Empty(updated.Tags)

	// The tag row itself survives, only the association drops.
	var count int64
	suite.db.Model(&models.Tag{}).Where("name = ?", "Breakfast").Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipeReplacesTags() {
	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Breakfast"}}, nil)

	replacement := []models.TagSpec{{Name: "Lunch"}}
	updated, err := suite.recipeService.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Tags: &replacement}, 1)
	suite.NoError(err)

	suite.Len(updated.Tags, 1)
	suite.Equal("Lunch", updated.Tags[0].Name)
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipeEmptyIngredientsClears() {
	recipe := suite.createRecipe(1, nil, []models.IngredientSpec{{Name: "Pepper"}})
	suite.Len(recipe.Ingredients, 1)

	empty := []models.IngredientSpec{}
	updated, err := suite.recipeService.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Ingredients: &empty}, 1)
	suite.NoError(err)

	suite.Empty(updated.Ingredients)
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipeOwnerUnchanged() {
	recipe := suite.createRecipe(1, nil, nil)

	title := "New title"
	updated, err := suite.recipeService.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Title: &title}, 1)
	suite.NoError(err)

	suite.Equal(recipe.UserID, updated.UserID)
}

func (suite *RecipeServiceTestSuite) TestGetRecipeOtherOwnerNotFound() {
	recipe := suite.createRecipe(1, nil, nil)

	_, err := suite.recipeService.GetRecipe(recipe.ID, 2)
	suite.Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *RecipeServiceTestSuite) TestDeleteRecipeOtherOwnerNotFound() {
	recipe := suite.createRecipe(1, nil, nil)

	err := suite.recipeService.DeleteRecipe(recipe.ID, 2)
	suite.Error(err)
	suite.IsType(models.ErrorNotFound{}, err)

	// The recipe still exists for its owner.
	_, err = suite.recipeService.GetRecipe(recipe.ID, 1)
	suite.NoError(err)
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipeOtherOwnerNotFound() {
	recipe := suite.createRecipe(1, nil, nil)

	title := "Hijacked"
	_, err := suite.recipeService.UpdateRecipe(recipe.ID, models.UpdateRecipeRequest{Title: &title}, 2)
	suite.Error(err)
	suite.IsType(models.ErrorNotFound{}, err)

	kept, err := suite.recipeService.GetRecipe(recipe.ID, 1)
	suite.NoError(err)
	suite.Equal("Sample recipe", kept.Title)
}

func (suite *RecipeServiceTestSuite) TestGetRecipesScopedAndOrdered() {
	first := suite.createRecipe(1, nil, nil)
	second := suite.createRecipe(1, nil, nil)
	suite.createRecipe(2, nil, nil)

	recipes, err := suite.recipeService.GetRecipes(models.RecipeListParams{}, 1)
	suite.NoError(err)

	suite.Len(recipes, 2)
	suite.Equal(second.ID, recipes[0].ID)
	suite.Equal(first.ID, recipes[1].ID)

	// Repeated identical queries return the same order.
	again, err := suite.recipeService.GetRecipes(models.RecipeListParams{}, 1)
	suite.NoError(err)
	suite.Equal(len(recipes), len(again))
	for i := range recipes {
		suite.Equal(recipes[i].ID, again[i].ID)
	}
}

func (suite *RecipeServiceTestSuite) TestGetRecipesFilterByTag() {
	tagged := suite.createRecipe(1, []models.TagSpec{{Name: "Vegan"}}, nil)
	suite.createRecipe(1, []models.TagSpec{{Name: "Dessert"}}, nil)

	tag, err := suite.tagService.GetTags(models.ListParams{}, 1)
	suite.NoError(err)

	var veganID uint
	for _, t := range tag {
		if t.Name == "Vegan" {
			veganID = t.ID
		}
	}
	suite.NotZero(veganID)

	recipes, err := suite.recipeService.GetRecipes(models.RecipeListParams{Tags: formatID(veganID)}, 1)
	suite.NoError(err)
	suite.Len(recipes, 1)
	suite.Equal(tagged.ID, recipes[0].ID)
}

func (suite *RecipeServiceTestSuite) TestGetRecipesFilterIgnoresDeletedTag() {
	recipe := suite.createRecipe(1, []models.TagSpec{{Name: "Vegan"}}, nil)

	tags, err := suite.tagService.GetTags(models.ListParams{}, 1)
	suite.NoError(err)
	suite.Len(tags, 1)
	veganID := tags[0].ID

	err = suite.tagService.DeleteTag(veganID, 1)
	suite.NoError(err)

	// Filtering by the deleted tag's ID must not match via the leftover
	// join row.
	recipes, err := suite.recipeService.GetRecipes(models.RecipeListParams{Tags: formatID(veganID)}, 1)
	suite.NoError(err)
	suite.Empty(recipes)

	// The recipe itself is still listed without the filter.
	recipes, err = suite.recipeService.GetRecipes(models.RecipeListParams{}, 1)
	suite.NoError(err)
	suite.Len(recipes, 1)
	suite.Equal(recipe.ID, recipes[0].ID)
}

func (suite *RecipeServiceTestSuite) TestUploadImage() {
	recipe := suite.createRecipe(1, nil, nil)

	fileHeader := &multipart.FileHeader{
		Filename: "food.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}

	updated, err := suite.recipeService.UploadImage(recipe.ID, 1, fileHeader)
	suite.NoError(err)
	suite.Contains(updated.Image, "https://cdn.example.com/recipes/")
	suite.Equal(1, suite.uploader.uploads)
}

func (suite *RecipeServiceTestSuite) TestUploadImageRejectsNonImage() {
	recipe := suite.createRecipe(1, nil, nil)

	fileHeader := &multipart.FileHeader{
		Filename: "notes.txt",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"text/plain"}},
	}

	_, err := suite.recipeService.UploadImage(recipe.ID, 1, fileHeader)
	suite.Error(err)
	suite.IsType(models.ErrorValidation{}, err)
	suite.Equal(0, suite.uploader.uploads)
}

func (suite *RecipeServiceTestSuite) TestUploadImageOtherOwnerNotFound() {
	recipe := suite.createRecipe(1, nil, nil)

	fileHeader := &multipart.FileHeader{
		Filename: "food.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}

	_, err := suite.recipeService.UploadImage(recipe.ID, 2, fileHeader)
	suite.Error(err)
	suite.IsType(models.ErrorNotFound{}, err)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestRecipeServiceSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
