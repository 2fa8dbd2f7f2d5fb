package database

import "gorm.io/gorm"

type ContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) Create(contact *Contact) (uint, error) {
	if err := s.db.Create(contact).Error; err != nil {
		return 0, err
	}
	return contact.ID, nil
}

func (s *ContactStore) All() ([]Contact, error) {
	var contacts []Contact
	result := s.db.Order("id DESC").Find(&contacts)
	return contacts, result.Error
}
