package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/okezie/pawhaven/data"
)

type votes interface {
	GetVote(userID, postID int64) (int, error)
	SetVote(userID, postID int64, value int) error
	DeleteVote(userID, postID int64) error
	GetPostStats(postID, viewerID int64) (*data.PostStats, error)
}

// GetVote retrieves the viewer's stored vote for a post, or data.VoteNone if
// no row exists.
func (r *repository) GetVote(userID, postID int64) (int, error) {
	query := `
		SELECT value
		FROM post_votes
		WHERE user_id = $1 AND post_id = $2`
	var value int
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, userID, postID).Scan(&value)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return data.VoteNone, nil
		default:
			return data.VoteNone, err
		}
	}
	return value, nil
}

// SetVote upserts the viewer's vote row for a post. One row per user per
// post; switching direction overwrites the existing row in place.
func (r *repository) SetVote(userID, postID int64, value int) error {
	query := `
		INSERT INTO post_votes (user_id, post_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, post_id) DO UPDATE SET value = EXCLUDED.value`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, userID, postID, value)
	return err
}

// DeleteVote removes the viewer's vote row for a post.
func (r *repository) DeleteVote(userID, postID int64) error {
	query := `
		DELETE FROM post_votes
		WHERE user_id = $1 AND post_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetPostStats retrieves vote totals, comment count and the viewer's own vote
// and follow state for a post in a single query.
func (r *repository) GetPostStats(postID, viewerID int64) (*data.PostStats, error) {
	if postID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT
			count(*) FILTER (WHERE post_votes.value = 1),
			count(*) FILTER (WHERE post_votes.value = -1),
			COALESCE(max(post_votes.value) FILTER (WHERE post_votes.user_id = $2), 0),
			(SELECT count(*) > 0 FROM post_follows WHERE post_id = $1 AND user_id = $2),
			(SELECT count(*) FROM comments WHERE post_id = $1)
		FROM post_votes
		WHERE post_votes.post_id = $1`
	stats := data.PostStats{PostID: postID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, postID, viewerID).Scan(
		&stats.Upvotes,
		&stats.Downvotes,
		&stats.ViewerVote,
		&stats.IsFollowing,
		&stats.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
