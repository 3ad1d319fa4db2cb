package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/service"
)

func (h *Handler) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreatePostRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user := h.contextGetUser(r)
	post, err := h.service.CreatePost(user.ID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/posts/%d", post.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"post": post}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showPostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	viewer := h.contextGetUser(r)
	post, stats, err := h.service.ShowPost(postID, viewer.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"post": post, "stats": stats}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdatePostRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	post, err := h.service.UpdatePost(postID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeletePost(postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "post successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Search  string
		Filters data.Filters
	}
	v := validator.New()
	qs := r.URL.Query()
	input.Search = h.readString(qs, "search", "")
	input.Filters.Page = h.readInt(qs, "page", 1, v)
	input.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	input.Filters.Sort = h.readString(qs, "sort", "-created_at")
	input.Filters.SortSafelist = []string{"id", "title", "created_at", "-id", "-title", "-created_at"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, fmt.Errorf("invalid query parameters"))
		return
	}
	posts, metadata, err := h.service.ListPosts(input.Search, input.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"posts": posts, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) votePostHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.VotePostRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	stats, err := h.service.VotePost(postID, user.ID, requestBody.Direction)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"stats": stats}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) toggleFollowPostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	stats, err := h.service.ToggleFollowPost(postID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"stats": stats}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
