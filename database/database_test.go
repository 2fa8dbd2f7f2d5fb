package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

// seedRefs creates the category and user that post fixtures reference.
func seedRefs(t *testing.T, db *gorm.DB) (categoryID, userID uint) {
	t.Helper()
	categoryID, err := NewCategoryStore(db).Create(&Category{Name: "General"})
	require.NoError(t, err)
	userID, err = NewUserStore(db).Create(&User{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	return categoryID, userID
}

func testPost(slug, createdAt string, categoryID, userID uint) *Post {
	return &Post{
		Slug:       slug,
		Title:      "Title for " + slug,
		CategoryID: categoryID,
		Excerpt:    "excerpt",
		Content:    "content",
		CreatedAt:  createdAt,
		UserID:     userID,
		Type:       "blog",
	}
}
