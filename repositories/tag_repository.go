package repositories

import (
	"recipe-api/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(userID uint, name string) (*models.Tag, error)
	GetByID(userID, id uint) (*models.Tag, error)
	GetAll(userID uint, assignedOnly bool) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(userID, id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(userID uint, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByID(userID, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ?", userID).First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetAll(userID uint, assignedOnly bool) ([]models.Tag, error) {
	var tags []models.Tag

	query := r.db.Model(&models.Tag{}).Where("tags.user_id = ?", userID)

	// Assigned-only restricts to tags referenced by at least one live
	// recipe; soft-deleted recipes leave join rows behind and must not
	// count. Distinct keeps a tag referenced by N recipes to a single row.
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Joins("JOIN recipes ON recipes.id = recipe_tags.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("tags.*")
	}

	err := query.Order("tags.name desc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Tag{}, id).Error
}
