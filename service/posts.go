package service

import (
	"errors"
	"fmt"

	"github.com/jellydator/ttlcache/v3"
	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/optimistic"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/repository"
)

type posts interface {
	CreatePost(userID int64, body *dto.CreatePostRequestBody) (*data.Post, error)
	ShowPost(postID int64, viewerID int64) (*data.Post, *data.PostStats, error)
	UpdatePost(postID int64, body *dto.UpdatePostRequestBody) (*data.Post, error)
	DeletePost(postID int64) error
	ListPosts(search string, filters data.Filters) ([]*data.Post, data.Metadata, error)
	VotePost(postID int64, userID int64, direction string) (*data.PostStats, error)
	ToggleFollowPost(postID int64, userID int64) (*data.PostStats, error)
}

// postStatsKey builds the cache key for one post's aggregate state as seen by
// one viewer. The aggregates are viewer-specific, so the viewer is part of
// the key.
func postStatsKey(postID, viewerID int64) string {
	return fmt.Sprintf("%d:%d", postID, viewerID)
}

// getPostStats returns the viewer-specific aggregate state for a post,
// serving from the cache when possible.
func (s *service) getPostStats(postID, viewerID int64) (data.PostStats, error) {
	key := postStatsKey(postID, viewerID)
	if item := s.postStats.Get(key); item != nil {
		return item.Value(), nil
	}
	stats, err := s.repo.GetPostStats(postID, viewerID)
	if err != nil {
		return data.PostStats{}, err
	}
	s.postStats.Set(key, *stats, ttlcache.DefaultTTL)
	return *stats, nil
}

// CreatePost service creates a new forum post.
func (s *service) CreatePost(userID int64, body *dto.CreatePostRequestBody) (*data.Post, error) {
	post := &data.Post{
		UserID:  userID,
		Title:   body.Title,
		Content: body.Content,
	}
	v := validator.New()
	if data.ValidatePost(v, post); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err := s.repo.CreatePost(post)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ShowPost service shows a forum post along with its viewer-specific
// aggregate state.
func (s *service) ShowPost(postID int64, viewerID int64) (*data.Post, *data.PostStats, error) {
	post, err := s.repo.GetPost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, nil, ErrRecordNotFound
		default:
			return nil, nil, err
		}
	}
	stats, err := s.getPostStats(postID, viewerID)
	if err != nil {
		return nil, nil, err
	}
	return post, &stats, nil
}

// UpdatePost service updates a forum post.
func (s *service) UpdatePost(postID int64, body *dto.UpdatePostRequestBody) (*data.Post, error) {
	post, err := s.repo.GetPost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if body.Title != nil {
		post.Title = *body.Title
	}
	if body.Content != nil {
		post.Content = *body.Content
	}
	v := validator.New()
	if data.ValidatePost(v, post); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err = s.repo.UpdatePost(post)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return post, nil
}

// DeletePost service deletes a forum post.
func (s *service) DeletePost(postID int64) error {
	err := s.repo.DeletePost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// ListPosts service lists forum posts, optionally filtered by full-text
// search, with pagination and sorting.
func (s *service) ListPosts(search string, filters data.Filters) ([]*data.Post, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, data.Metadata{}, ErrFailedValidation
	}
	posts, metadata, err := s.repo.GetAllPosts(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return posts, metadata, nil
}

// VotePost service records one vote action on a post. Clicking the direction
// already active clears the vote; clicking the opposite direction switches it
// in a single transition. The cached aggregate is updated optimistically and
// rolled back to its snapshot if the database write fails.
func (s *service) VotePost(postID int64, userID int64, direction string) (*data.PostStats, error) {
	var dir int
	switch direction {
	case "up":
		dir = data.VoteUp
	case "down":
		dir = data.VoteDown
	default:
		v := validator.New()
		v.AddError("direction", "must be either up or down")
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	_, err := s.repo.GetPost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	stats, err := s.getPostStats(postID, userID)
	if err != nil {
		return nil, err
	}
	key := postStatsKey(postID, userID)
	err = optimistic.Apply(&stats,
		func(st *data.PostStats) {
			st.ApplyVote(dir)
		},
		func() error {
			if stats.ViewerVote == data.VoteNone {
				return s.repo.DeleteVote(userID, postID)
			}
			return s.repo.SetVote(userID, postID, stats.ViewerVote)
		},
	)
	if err != nil {
		// The cached aggregate disagreed with storage. Drop it so the next
		// read refetches.
		s.postStats.Delete(key)
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.postStats.Set(key, stats, ttlcache.DefaultTTL)
	return &stats, nil
}

// ToggleFollowPost service flips the viewer's follow state for a post, with
// the same optimistic update and rollback protocol as voting.
func (s *service) ToggleFollowPost(postID int64, userID int64) (*data.PostStats, error) {
	_, err := s.repo.GetPost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	stats, err := s.getPostStats(postID, userID)
	if err != nil {
		return nil, err
	}
	key := postStatsKey(postID, userID)
	err = optimistic.Apply(&stats,
		func(st *data.PostStats) {
			st.ToggleFollow()
		},
		func() error {
			if stats.IsFollowing {
				return s.repo.InsertFollow(userID, postID)
			}
			return s.repo.DeleteFollow(userID, postID)
		},
	)
	if err != nil {
		s.postStats.Delete(key)
		switch {
		case errors.Is(err, repository.ErrRecordNotFound), errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.postStats.Set(key, stats, ttlcache.DefaultTTL)
	return &stats, nil
}
