package models

import "time"

// Post is the sole persisted entity: a single blog entry. The slug doubles
// as the ID and never changes after creation.
type Post struct {
	ID          string    `json:"id" validate:"required"`
	Slug        string    `json:"slug" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Body        string    `json:"body" validate:"required"`
	Author      string    `json:"author" validate:"required"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ReadCount   int       `json:"readCount" validate:"gte=0"`
}

// CreatePostRequest is the payload accepted by the authenticated create
// endpoint. PublishedAt is optional and defaults to the creation time.
type CreatePostRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Body        string     `json:"body" validate:"required"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// User is the minimal identity claim carried by a session.
type User struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
