package store

import "github.com/trs-1342/rss-hattab/app/models"

// PostStore defines the interface for the posts collection. The collection
// is always handled whole: Load materializes every post, Save rewrites the
// backing file from scratch.
type PostStore interface {
	Load() []models.Post
	Save(posts []models.Post) error
}
