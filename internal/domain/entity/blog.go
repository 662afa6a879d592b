package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a published post. Titles are unique across all posts.
// Author is a denormalized display string, not a foreign key to users.
type BlogPost struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
