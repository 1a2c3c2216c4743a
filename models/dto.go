package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// TagSpec / IngredientSpec are the nested name entries accepted on recipe
// writes. Duplicate names within one request are allowed and collapse to a
// single association.
type TagSpec struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type IngredientSpec struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type CreateRecipeRequest struct {
	Title       string           `json:"title" binding:"required,min=1,max=255"`
	TimeMinutes int              `json:"time_minutes" binding:"required,min=1"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Link        string           `json:"link"`
	Description string           `json:"description"`
	Tags        []TagSpec        `json:"tags" binding:"omitempty,dive"`
	Ingredients []IngredientSpec `json:"ingredients" binding:"omitempty,dive"`
}

// UpdateRecipeRequest is a patch: nil means the field was not provided and
// stays untouched. For Tags/Ingredients an empty non-nil slice clears all
// associations, a non-empty slice fully replaces them.
type UpdateRecipeRequest struct {
	Title       *string           `json:"title" binding:"omitempty,min=1,max=255"`
	TimeMinutes *int              `json:"time_minutes" binding:"omitempty,min=1"`
	Price       *decimal.Decimal  `json:"price"`
	Link        *string           `json:"link"`
	Description *string           `json:"description"`
	Tags        *[]TagSpec        `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]IngredientSpec `json:"ingredients" binding:"omitempty,dive"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateIngredientRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ListParams covers tag/ingredient listings. assigned_only=1 keeps only
// entries referenced by at least one recipe.
type ListParams struct {
	AssignedOnly bool `form:"assigned_only"`
}

// RecipeListParams carries the optional comma-separated ID filters,
// e.g. ?tags=1,2&ingredients=3.
type RecipeListParams struct {
	Tags        string `form:"tags"`
	Ingredients string `form:"ingredients"`
}

// RecipeSummary is the listing shape: no description, no image.
type RecipeSummary struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	Tags        []Tag           `json:"tags"`
	Ingredients []Ingredient    `json:"ingredients"`
}

// RecipeDetail extends the summary shape by composition.
type RecipeDetail struct {
	RecipeSummary
	Description string `json:"description"`
	Image       string `json:"image"`
}

func NewRecipeSummary(r *Recipe) RecipeSummary {
	tags := r.Tags
	if tags == nil {
		tags = []Tag{}
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

func NewRecipeDetail(r *Recipe) RecipeDetail {
	return RecipeDetail{
		RecipeSummary: NewRecipeSummary(r),
		Description:   r.Description,
		Image:         r.Image,
	}
}

func NewRecipeSummaries(recipes []Recipe) []RecipeSummary {
	summaries := make([]RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, NewRecipeSummary(&recipes[i]))
	}
	return summaries
}
