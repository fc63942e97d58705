package blog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ListPosts handles GET /api/blog with optional search/category/tag filters
func ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts := Filter(q.Get("search"), q.Get("category"), q.Get("tag"))
	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /api/blog/{id}
func GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, ok := ByID(id)
	if !ok {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
