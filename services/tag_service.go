// services/tag_service.go
package services

import (
	"errors"

	"recipe-api/models"
	"recipe-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest, userID uint) (*models.Tag, error)
	GetTags(params models.ListParams, userID uint) ([]models.Tag, error)
	GetTag(id, userID uint) (*models.Tag, error)
	UpdateTag(id uint, req models.UpdateTagRequest, userID uint) (*models.Tag, error)
	DeleteTag(id, userID uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// CreateTag is get-or-create: posting a name that already exists under the
// same owner returns the existing row instead of a duplicate.
func (s *tagService) CreateTag(req models.CreateTagRequest, userID uint) (*models.Tag, error) {
	existing, err := s.tagRepo.GetByName(userID, req.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{
		UserID: userID,
		Name:   req.Name,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags(params models.ListParams, userID uint) ([]models.Tag, error) {
	return s.tagRepo.GetAll(userID, params.AssignedOnly)
}

func (s *tagService) GetTag(id, userID uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "tag not found"}
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) UpdateTag(id uint, req models.UpdateTagRequest, userID uint) (*models.Tag, error) {
	tag, err := s.GetTag(id, userID)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) DeleteTag(id, userID uint) error {
	if _, err := s.GetTag(id, userID); err != nil {
		return err
	}
	return s.tagRepo.Delete(userID, id)
}
