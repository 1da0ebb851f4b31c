package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/trs-1342/rss-hattab/app/models"
	"github.com/trs-1342/rss-hattab/app/services"
	"github.com/trs-1342/rss-hattab/app/store"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	siteURL     string
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, siteURL string) *PostController {
	return &PostController{
		postService: postService,
		siteURL:     siteURL,
	}
}

// Index handles listing posts, optionally filtered by a text query and an
// inclusive publication date range.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items := pc.postService.List(query.Get("q"), query.Get("from"), query.Get("to"))
	sendJSON(w, map[string]interface{}{"items": items})
}

// Show handles displaying a single post by slug.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	post, err := pc.postService.GetBySlug(vars["slug"])
	if err != nil {
		sendError(w, "Bulunamadı", http.StatusNotFound)
		return
	}
	sendJSON(w, map[string]interface{}{"post": post})
}

// Create handles creating a new post. Admin session enforcement happens in
// the route middleware.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Geçersiz JSON", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalid) {
			sendError(w, "Eksik alan", http.StatusBadRequest)
			return
		}
		sendError(w, "Sunucu hatası", http.StatusInternalServerError)
		return
	}

	sendJSON(w, map[string]interface{}{"ok": true, "post": post})
}

// Read handles the public view counter bump for a post.
func (pc *PostController) Read(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	count, err := pc.postService.RecordRead(vars["slug"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, "Bulunamadı", http.StatusNotFound)
			return
		}
		sendError(w, "Sunucu hatası", http.StatusInternalServerError)
		return
	}
	sendJSON(w, map[string]interface{}{"ok": true, "readCount": count})
}

// Feed handles the RSS document for the full collection, newest-first.
func (pc *PostController) Feed(w http.ResponseWriter, r *http.Request) {
	posts := pc.postService.List("", "", "")
	body, err := services.RenderFeed(pc.siteURL, posts)
	if err != nil {
		sendError(w, "Sunucu hatası", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write(body)
}
