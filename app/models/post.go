package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return errors.New("updated_at cannot precede created_at")
	}

	return nil
}

// Validate checks the create payload; empty title/description/body are the
// validation failures the API reports as 400.
func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = p.CreatedAt
	}
}

// Touch refreshes UpdatedAt after a mutation.
func (p *Post) Touch() {
	p.UpdatedAt = time.Now()
}
