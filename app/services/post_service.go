package services

import (
	"errors"
	"fmt"

	"github.com/trs-1342/rss-hattab/app/models"
	"github.com/trs-1342/rss-hattab/app/slug"
	"github.com/trs-1342/rss-hattab/app/store"
)

// ErrInvalid marks a create payload that failed validation.
var ErrInvalid = errors.New("invalid post")

// PostService handles business logic for blog posts. Every operation
// materializes the full collection from the store, works on it in memory and,
// for mutations, writes the whole collection back.
type PostService struct {
	store  store.PostStore
	author string
}

// NewPostService creates a new PostService. author is the configured admin
// user, stamped on every created post.
func NewPostService(st store.PostStore, author string) *PostService {
	return &PostService{
		store:  st,
		author: author,
	}
}

// List retrieves posts newest-first, filtered by the optional q/from/to
// parameters.
func (s *PostService) List(q, from, to string) []models.Post {
	return FilterPosts(s.store.Load(), q, from, to)
}

// GetBySlug retrieves a single post by its slug.
func (s *PostService) GetBySlug(sg string) (*models.Post, error) {
	for _, p := range s.store.Load() {
		if p.Slug == sg {
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

// Create validates the payload, assigns a unique slug and appends the new
// post to the collection. The persisted collection is untouched when
// validation fails.
func (s *PostService) Create(req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	posts := s.store.Load()
	existing := make(map[string]bool, len(posts))
	for _, p := range posts {
		existing[p.Slug] = true
	}
	sg := slug.Assign(req.Title, existing)

	post := models.Post{
		ID:          sg,
		Slug:        sg,
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Author:      s.author,
		ReadCount:   0,
	}
	if req.PublishedAt != nil {
		post.PublishedAt = *req.PublishedAt
	}
	post.BeforeCreate()

	posts = append(posts, post)
	if err := s.store.Save(posts); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}
	return &post, nil
}

// RecordRead bumps the read counter of the post with the given slug and
// returns the new count. Intentionally unauthenticated: it is the public
// view counter.
func (s *PostService) RecordRead(sg string) (int, error) {
	posts := s.store.Load()
	for i := range posts {
		if posts[i].Slug != sg {
			continue
		}
		posts[i].ReadCount++
		posts[i].Touch()
		if err := s.store.Save(posts); err != nil {
			return 0, fmt.Errorf("failed to save read count: %w", err)
		}
		return posts[i].ReadCount, nil
	}
	return 0, store.ErrNotFound
}
