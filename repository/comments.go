package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/okezie/pawhaven/data"
)

type comments interface {
	CreateComment(comment *data.Comment) error
	GetComment(commentID int64) (*data.Comment, error)
	UpdateComment(comment *data.Comment) error
	DeleteComment(commentID int64) error
	GetAllCommentsForPost(postID int64) ([]*data.Comment, error)
	GetLikesForPost(postID int64) ([]*data.CommentLike, error)
	GetAuthorsForPost(postID int64) ([]*data.AuthorInfo, error)
	GetCommentStats(commentID, viewerID int64) (*data.CommentStats, error)
	InsertCommentLike(commentID, userID int64) error
	DeleteCommentLike(commentID, userID int64) error
}

// CreateComment creates a comment record. A zero ParentID is stored as NULL
// so the parent foreign key stays enforceable.
func (r *repository) CreateComment(comment *data.Comment) error {
	query := `
		INSERT INTO comments (post_id, parent_id, user_id, content)
		VALUES ($1, NULLIF($2, 0), $3, $4)
		RETURNING id, created_at, updated_at, version`
	args := []interface{}{comment.PostID, comment.ParentID, comment.UserID, comment.Content}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt, &comment.Version)
}

// GetComment retrieves a comment record.
func (r *repository) GetComment(commentID int64) (*data.Comment, error) {
	if commentID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT comments.id, comments.post_id, COALESCE(comments.parent_id, 0), comments.user_id, users.name, comments.content, comments.created_at, comments.updated_at, comments.version
		FROM comments
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.id = $1`
	var comment data.Comment
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, commentID).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.ParentID,
		&comment.UserID,
		&comment.UserName,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &comment, nil
}

// UpdateComment updates a comment record's content.
func (r *repository) UpdateComment(comment *data.Comment) error {
	query := `
		UPDATE comments
		SET content = $1, updated_at = now(), version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version`
	args := []interface{}{comment.Content, comment.ID, comment.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&comment.UpdatedAt, &comment.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteComment deletes a comment record. Descendant replies are removed by
// the ON DELETE CASCADE constraint on parent_id.
func (r *repository) DeleteComment(commentID int64) error {
	if commentID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM comments
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, commentID)
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

// GetAllCommentsForPost retrieves all comment records for a post in
// chronological ascending order. The tree builder relies on this order and
// performs no re-sorting of its own.
func (r *repository) GetAllCommentsForPost(postID int64) ([]*data.Comment, error) {
	query := `
		SELECT comments.id, comments.post_id, COALESCE(comments.parent_id, 0), comments.user_id, users.name, comments.content, comments.created_at, comments.updated_at, comments.version
		FROM comments
		INNER JOIN users ON comments.user_id = users.id
		WHERE comments.post_id = $1
		ORDER BY comments.id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := []*data.Comment{}
	for rows.Next() {
		var comment data.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.ParentID,
			&comment.UserID,
			&comment.UserName,
			&comment.Content,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.Version,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetLikesForPost retrieves all like rows for every comment on a post.
func (r *repository) GetLikesForPost(postID int64) ([]*data.CommentLike, error) {
	query := `
		SELECT comment_likes.comment_id, comment_likes.user_id
		FROM comment_likes
		INNER JOIN comments ON comment_likes.comment_id = comments.id
		WHERE comments.post_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	likes := []*data.CommentLike{}
	for rows.Next() {
		var like data.CommentLike
		err := rows.Scan(&like.CommentID, &like.UserID)
		if err != nil {
			return nil, err
		}
		likes = append(likes, &like)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return likes, nil
}

// GetAuthorsForPost retrieves the display profiles of every user who
// commented on a post.
func (r *repository) GetAuthorsForPost(postID int64) ([]*data.AuthorInfo, error) {
	query := `
		SELECT DISTINCT users.id, users.name, COALESCE(users.avatar_url, '')
		FROM users
		INNER JOIN comments ON comments.user_id = users.id
		WHERE comments.post_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	authors := []*data.AuthorInfo{}
	for rows.Next() {
		var author data.AuthorInfo
		err := rows.Scan(&author.UserID, &author.DisplayName, &author.AvatarURL)
		if err != nil {
			return nil, err
		}
		authors = append(authors, &author)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}

// GetCommentStats retrieves the like count and the viewer's like flag for one
// comment in a single query.
func (r *repository) GetCommentStats(commentID, viewerID int64) (*data.CommentStats, error) {
	if commentID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT count(*), count(*) FILTER (WHERE user_id = $2) > 0
		FROM comment_likes
		WHERE comment_id = $1`
	stats := data.CommentStats{CommentID: commentID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, commentID, viewerID).Scan(&stats.LikeCount, &stats.ViewerHasLiked)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// InsertCommentLike creates a like row for a comment.
func (r *repository) InsertCommentLike(commentID, userID int64) error {
	query := `
		INSERT INTO comment_likes (comment_id, user_id)
		VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, commentID, userID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "comment_likes_pkey"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// DeleteCommentLike deletes a like row for a comment.
func (r *repository) DeleteCommentLike(commentID, userID int64) error {
	query := `
		DELETE FROM comment_likes
		WHERE comment_id = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, commentID, userID)
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
