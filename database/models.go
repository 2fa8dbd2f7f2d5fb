package database

import (
	"gorm.io/datatypes"
)

// Post is a single piece of content. CreatedAt is a caller-supplied
// timestamp string rather than a tracked column, so imports and seeds can
// carry their original dates.
type Post struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Slug       string `gorm:"uniqueIndex" json:"slug"`
	Title      string `json:"title"`
	CategoryID uint   `gorm:"index" json:"categoryId"`
	Excerpt    string `json:"excerpt"`
	Content    string `gorm:"type:text" json:"content"`
	CreatedAt  string `json:"createdAt"`
	UserID     uint   `gorm:"index" json:"userId"`
	Type       string `gorm:"index" json:"type"`
}

// PostTypes is the closed set of values Post.Type may take.
var PostTypes = []string{"about", "blog", "event", "service"}

func ValidPostType(t string) bool {
	for _, v := range PostTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Category struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"uniqueIndex" json:"name"`
	Posts []Post `gorm:"foreignKey:CategoryID" json:"posts,omitempty"`
}

type User struct {
	ID       uint           `gorm:"primarykey" json:"id"`
	Name     string         `json:"name"`
	Username string         `json:"username,omitempty"`
	Email    string         `gorm:"uniqueIndex" json:"email"`
	Address  datatypes.JSON `gorm:"type:json" json:"address,omitempty"`
	Phone    string         `json:"phone,omitempty"`
	Website  string         `json:"website,omitempty"`
	Company  datatypes.JSON `gorm:"type:json" json:"company,omitempty"`
	Posts    []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

type Contact struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `gorm:"type:text" json:"message"`
	CreatedAt string `json:"createdAt"`
}
