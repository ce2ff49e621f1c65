package models

import "time"

// BlogPost survives its author: AuthorID is nulled when the authoring
// User is deleted.
type BlogPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  *uint     `gorm:"index" json:"author_id,omitempty"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Tags      string    `gorm:"size:255" json:"tags"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
