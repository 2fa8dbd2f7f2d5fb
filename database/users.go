package database

import (
	"errors"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *User) (uint, error) {
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return user.ID, nil
}

func (s *UserStore) All() ([]User, error) {
	var users []User
	result := s.db.Find(&users)
	return users, result.Error
}

func (s *UserStore) ByID(id uint) (*User, error) {
	var user User
	result := s.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// Delete removes a user unless posts still reference them.
func (s *UserStore) Delete(id uint) error {
	var referencing int64
	if err := s.db.Model(&Post{}).Where("user_id = ?", id).Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return ErrInUse
	}

	result := s.db.Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
