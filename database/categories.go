package database

import (
	"errors"

	"gorm.io/gorm"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(category *Category) (uint, error) {
	if err := s.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return category.ID, nil
}

func (s *CategoryStore) All() ([]Category, error) {
	var categories []Category
	result := s.db.Order("name ASC").Find(&categories)
	return categories, result.Error
}

func (s *CategoryStore) ByID(id uint) (*Category, error) {
	var category Category
	result := s.db.First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}

func (s *CategoryStore) Update(id uint, name string) error {
	result := s.db.Model(&Category{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category unless posts still reference it.
func (s *CategoryStore) Delete(id uint) error {
	var referencing int64
	if err := s.db.Model(&Post{}).Where("category_id = ?", id).Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return ErrInUse
	}

	result := s.db.Delete(&Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
