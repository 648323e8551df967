package models

import "time"

// Post is a feed entry scoped to a college. Author fields are snapshotted at
// creation time and never re-synced with later profile edits.
type Post struct {
	ID               string    `json:"id"`
	AuthorID         string    `json:"authorId"`
	AuthorName       string    `json:"authorName"`
	AuthorRole       Role      `json:"authorRole"`
	AuthorDepartment string    `json:"authorDepartment"`
	AuthorBatch      string    `json:"authorBatch"`
	AuthorAvatar     string    `json:"authorAvatar,omitempty"`
	College          string    `json:"college"`
	Content          string    `json:"content"`
	Image            string    `json:"image,omitempty"`
	Tags             []string  `json:"tags"` // ids from the fixed tag vocabulary
	Likes            []string  `json:"likes"`
	Comments         []Comment `json:"comments"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Comment carries its own author snapshot and like set. Replies nest
// recursively; the surrounding screens only ever go one level deep.
type Comment struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorRole   Role      `json:"authorRole"`
	AuthorAvatar string    `json:"authorAvatar,omitempty"`
	Content      string    `json:"content"`
	Likes        []string  `json:"likes"`
	Replies      []Comment `json:"replies,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PostDraft is the author-supplied part of a new post.
type PostDraft struct {
	Author  User
	Content string   `validate:"required,min=1,max=2000"`
	Image   string   `validate:"omitempty,url"`
	Tags    []string `validate:"omitempty,dive,required"`
}

// CommentDraft is the author-supplied part of a new comment.
type CommentDraft struct {
	Author  User
	Content string `validate:"required,min=1,max=500"`
}
