package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Post{
		ID: "merhaba", Slug: "merhaba", Title: "Merhaba",
		Description: "d", Body: "b", Author: "halil",
		PublishedAt: now, CreatedAt: now, UpdatedAt: now,
	}
}

func TestPostValidate(t *testing.T) {
	assert.NoError(t, validPost().Validate())

	p := validPost()
	p.Title = ""
	assert.Error(t, p.Validate())

	p = validPost()
	p.CreatedAt = time.Time{}
	p.UpdatedAt = time.Time{}
	assert.Error(t, p.Validate())

	p = validPost()
	p.UpdatedAt = p.CreatedAt.Add(-time.Hour)
	assert.Error(t, p.Validate())

	p = validPost()
	p.ReadCount = -1
	assert.Error(t, p.Validate())
}

func TestCreatePostRequestValidate(t *testing.T) {
	req := &CreatePostRequest{Title: "t", Description: "d", Body: "b"}
	assert.NoError(t, req.Validate())

	assert.Error(t, (&CreatePostRequest{Description: "d", Body: "b"}).Validate())
	assert.Error(t, (&CreatePostRequest{Title: "t", Body: "b"}).Validate())
	assert.Error(t, (&CreatePostRequest{Title: "t", Description: "d"}).Validate())
}

func TestBeforeCreate(t *testing.T) {
	p := &Post{}
	p.BeforeCreate()

	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Equal(t, p.CreatedAt, p.PublishedAt)

	// An explicit publication date survives.
	published := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	p = &Post{PublishedAt: published}
	p.BeforeCreate()
	assert.Equal(t, published, p.PublishedAt)
}

func TestTouch(t *testing.T) {
	p := validPost()
	before := p.UpdatedAt
	p.Touch()
	assert.True(t, p.UpdatedAt.After(before))
}
