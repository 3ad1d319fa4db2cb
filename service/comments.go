package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jellydator/ttlcache/v3"
	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/data/dto"
	"github.com/okezie/pawhaven/internal/mailer"
	"github.com/okezie/pawhaven/internal/optimistic"
	"github.com/okezie/pawhaven/internal/validator"
	"github.com/okezie/pawhaven/repository"
)

type comments interface {
	ListCommentsForPost(postID int64, viewerID int64) ([]*data.CommentNode, error)
	CreateComment(postID int64, userID int64, body *dto.CreateCommentRequestBody) (*data.Comment, error)
	ShowComment(commentID int64) (*data.Comment, error)
	UpdateComment(commentID int64, body *dto.UpdateCommentRequestBody) (*data.Comment, error)
	DeleteComment(commentID int64) error
	ToggleCommentLike(commentID int64, userID int64) (*data.CommentStats, error)
}

// commentStatsKey builds the cache key for one comment's like aggregate as
// seen by one viewer.
func commentStatsKey(commentID, viewerID int64) string {
	return fmt.Sprintf("%d:%d", commentID, viewerID)
}

// ListCommentsForPost service assembles the threaded comment tree for a post.
// The comment records, the like rows and the author profiles are fetched in
// three concurrent queries, joined before assembly. The assembled tree is a
// derived view and is rebuilt on every call.
func (s *service) ListCommentsForPost(postID int64, viewerID int64) ([]*data.CommentNode, error) {
	_, err := s.repo.GetPost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	var (
		records []*data.Comment
		likes   []*data.CommentLike
		authors []*data.AuthorInfo

		recordsErr error
		likesErr   error
		authorsErr error
	)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		records, recordsErr = s.repo.GetAllCommentsForPost(postID)
	}()
	go func() {
		defer wg.Done()
		likes, likesErr = s.repo.GetLikesForPost(postID)
	}()
	go func() {
		defer wg.Done()
		authors, authorsErr = s.repo.GetAuthorsForPost(postID)
	}()
	wg.Wait()
	for _, err := range []error{recordsErr, likesErr, authorsErr} {
		if err != nil {
			return nil, err
		}
	}
	// A reply whose parent is missing from the fetched set is promoted to top
	// level by the builder. That should not happen with cascade deletes in
	// place, so leave a trace when it does.
	byID := make(map[int64]bool, len(records))
	for _, record := range records {
		byID[record.ID] = true
	}
	for _, record := range records {
		if record.ParentID != 0 && !byID[record.ParentID] {
			s.logger.PrintInfo("promoting orphaned comment to top level", map[string]string{
				"post_id":    fmt.Sprintf("%d", postID),
				"comment_id": fmt.Sprintf("%d", record.ID),
			})
		}
	}
	return data.BuildCommentTree(records, likes, authors, viewerID), nil
}

// CreateComment service adds a comment to a post, either top-level or as a
// reply one level below a top-level comment. Followers of the post are
// notified by email in the background.
func (s *service) CreateComment(postID int64, userID int64, body *dto.CreateCommentRequestBody) (*data.Comment, error) {
	post, err := s.repo.GetPost(postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	comment := &data.Comment{
		PostID:   postID,
		ParentID: body.ParentID,
		UserID:   userID,
		Content:  body.Content,
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	if comment.ParentID != 0 {
		parent, err := s.repo.GetComment(comment.ParentID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("parent_id", "parent comment does not exist")
				ErrFailedValidation = s.failedValidation(v.Errors)
				return nil, ErrFailedValidation
			default:
				return nil, err
			}
		}
		if parent.PostID != postID {
			v.AddError("parent_id", "parent comment belongs to a different post")
			ErrFailedValidation = s.failedValidation(v.Errors)
			return nil, ErrFailedValidation
		}
		records, err := s.repo.GetAllCommentsForPost(postID)
		if err != nil {
			return nil, err
		}
		if data.Depth(records, parent.ID) >= data.MaxReplyDepth {
			v.AddError("parent_id", "replies cannot be nested any deeper")
			ErrFailedValidation = s.failedValidation(v.Errors)
			return nil, ErrFailedValidation
		}
	}
	err = s.repo.CreateComment(comment)
	if err != nil {
		return nil, err
	}
	// Notify post followers of the new comment, except the commenter
	s.background(func() {
		followers, err := s.repo.GetFollowersForPost(postID)
		if err != nil {
			s.logger.PrintError(err, nil)
			return
		}
		mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		for _, follower := range followers {
			if follower.ID == userID {
				continue
			}
			data := map[string]string{
				"userName":  strings.Split(follower.Name, " ")[0],
				"postTitle": post.Title,
			}
			err := mailer.Send(follower.Email, "comment_notification.tmpl", data)
			if err != nil {
				s.logger.PrintError(err, nil)
			}
		}
	})
	return comment, nil
}

// ShowComment service shows a single comment record.
func (s *service) ShowComment(commentID int64) (*data.Comment, error) {
	comment, err := s.repo.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return comment, nil
}

// UpdateComment service updates a comment's content.
func (s *service) UpdateComment(commentID int64, body *dto.UpdateCommentRequestBody) (*data.Comment, error) {
	comment, err := s.repo.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if body.Content != nil {
		comment.Content = *body.Content
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		ErrFailedValidation = s.failedValidation(v.Errors)
		return nil, ErrFailedValidation
	}
	err = s.repo.UpdateComment(comment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return comment, nil
}

// DeleteComment service deletes a comment and its replies.
func (s *service) DeleteComment(commentID int64) error {
	err := s.repo.DeleteComment(commentID)
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

// ToggleCommentLike service flips the viewer's like on a comment. The cached
// like aggregate is updated optimistically before the database write and
// rolled back to its snapshot if the write fails.
func (s *service) ToggleCommentLike(commentID int64, userID int64) (*data.CommentStats, error) {
	_, err := s.repo.GetComment(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	key := commentStatsKey(commentID, userID)
	var stats data.CommentStats
	if item := s.commentStats.Get(key); item != nil {
		stats = item.Value()
	} else {
		fetched, err := s.repo.GetCommentStats(commentID, userID)
		if err != nil {
			return nil, err
		}
		stats = *fetched
	}
	err = optimistic.Apply(&stats,
		func(st *data.CommentStats) {
			st.ToggleLike()
		},
		func() error {
			if stats.ViewerHasLiked {
				return s.repo.InsertCommentLike(commentID, userID)
			}
			return s.repo.DeleteCommentLike(commentID, userID)
		},
	)
	if err != nil {
		s.commentStats.Delete(key)
		switch {
		case errors.Is(err, repository.ErrRecordNotFound), errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.commentStats.Set(key, stats, ttlcache.DefaultTTL)
	return &stats, nil
}
