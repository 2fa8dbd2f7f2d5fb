package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PostStore is the persistence gateway for posts.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// postSortColumns is the allow-list of sortable columns. Keys cover both
// the JSON field names clients send and the underlying column names.
var postSortColumns = map[string]string{
	"id":         "id",
	"slug":       "slug",
	"title":      "title",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"type":       "type",
}

// postColumns maps updatable JSON field names to their columns. Fields not
// listed here are silently dropped from update payloads.
var postColumns = map[string]string{
	"slug":       "slug",
	"title":      "title",
	"categoryId": "category_id",
	"excerpt":    "excerpt",
	"content":    "content",
	"createdAt":  "created_at",
	"userId":     "user_id",
	"type":       "type",
}

// Create inserts a full post row and returns the generated id.
func (s *PostStore) Create(post *Post) (uint, error) {
	if err := s.db.Create(post).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return post.ID, nil
}

// List returns one page of posts. An unrecognized sort field falls back to
// created_at; anything but ASC/DESC (case-insensitive) falls back to DESC.
func (s *PostStore) List(limit, offset int, sort, order string) ([]Post, error) {
	column, ok := postSortColumns[sort]
	if !ok {
		column = "created_at"
	}
	direction := strings.ToUpper(order)
	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}

	var posts []Post
	result := s.db.Order(column + " " + direction).Limit(limit).Offset(offset).Find(&posts)
	return posts, result.Error
}

func (s *PostStore) CountAll() (int64, error) {
	var count int64
	result := s.db.Model(&Post{}).Count(&count)
	return count, result.Error
}

func (s *PostStore) ByID(id uint) (*Post, error) {
	var post Post
	result := s.db.First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &post, nil
}

// Update applies only the recognized fields present in fields, keyed by
// JSON field name. It reports ErrNoFields for an empty effective payload
// and ErrNotFound when the row does not exist.
func (s *PostStore) Update(id uint, fields map[string]any) error {
	updates := make(map[string]any)
	for name, value := range fields {
		if column, ok := postColumns[name]; ok {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		return ErrNoFields
	}

	result := s.db.Model(&Post{}).Where("id = ?", id).Updates(updates)
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

// Delete removes one post by id and returns the number of rows removed.
func (s *PostStore) Delete(id uint) (int64, error) {
	result := s.db.Delete(&Post{}, id)
	return result.RowsAffected, result.Error
}

// ResetAll clears the posts table and returns the number of rows removed.
func (s *PostStore) ResetAll() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&Post{})
	return result.RowsAffected, result.Error
}

func (s *PostStore) ByCategory(categoryID uint) ([]Post, error) {
	var posts []Post
	result := s.db.Where(&Post{CategoryID: categoryID}).Order("created_at DESC").Find(&posts)
	return posts, result.Error
}

func (s *PostStore) ByType(postType string) ([]Post, error) {
	var posts []Post
	result := s.db.Where(&Post{Type: postType}).Order("created_at DESC").Find(&posts)
	return posts, result.Error
}

func (s *PostStore) Latest(limit int) ([]Post, error) {
	var posts []Post
	result := s.db.Order("created_at DESC").Limit(limit).Find(&posts)
	return posts, result.Error
}

func (s *PostStore) LatestByType(postType string, limit int) ([]Post, error) {
	var posts []Post
	result := s.db.Where(&Post{Type: postType}).Order("created_at DESC").Limit(limit).Find(&posts)
	return posts, result.Error
}

// Search matches the query against title and content, newest first.
func (s *PostStore) Search(query string, limit, offset int) ([]Post, int64, error) {
	pattern := "%" + query + "%"
	matcher := s.db.Model(&Post{}).Where("title LIKE ? OR content LIKE ?", pattern, pattern)

	var total int64
	if err := matcher.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []Post
	result := s.db.Where("title LIKE ? OR content LIKE ?", pattern, pattern).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts)
	return posts, total, result.Error
}
