package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okezie/pawhaven/data"
)

type posts interface {
	CreatePost(post *data.Post) error
	GetPost(postID int64) (*data.Post, error)
	UpdatePost(post *data.Post) error
	DeletePost(postID int64) error
	GetAllPosts(search string, filters data.Filters) ([]*data.Post, data.Metadata, error)
}

// CreatePost creates a forum post record.
func (r *repository) CreatePost(post *data.Post) error {
	query := `
		INSERT INTO posts (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at, version`
	args := []interface{}{post.UserID, post.Title, post.Content}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt, &post.Version)
}

// GetPost retrieves a forum post record.
func (r *repository) GetPost(postID int64) (*data.Post, error) {
	if postID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT posts.id, posts.user_id, users.name, posts.title, posts.content, posts.created_at, posts.updated_at, posts.version
		FROM posts
		INNER JOIN users ON posts.user_id = users.id
		WHERE posts.id = $1`
	var post data.Post
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID,
		&post.UserID,
		&post.UserName,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &post, nil
}

// UpdatePost updates a forum post record.
func (r *repository) UpdatePost(post *data.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, updated_at = now(), version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING updated_at, version`
	args := []interface{}{post.Title, post.Content, post.ID, post.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&post.UpdatedAt, &post.Version)
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

// DeletePost deletes a forum post record. Comments, votes and follows go with
// it via ON DELETE CASCADE.
func (r *repository) DeletePost(postID int64) error {
	if postID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM posts
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, postID)
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

// GetAllPosts retrieves a paginated list of forum post records, optionally
// filtered by a full-text search on the title and content.
func (r *repository) GetAllPosts(search string, filters data.Filters) ([]*data.Post, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), posts.id, posts.user_id, users.name, posts.title, posts.content, posts.created_at, posts.updated_at, posts.version
		FROM posts
		INNER JOIN users ON posts.user_id = users.id
		WHERE (
			to_tsvector('simple', posts.title) ||
			to_tsvector('simple', posts.content)
			@@ plainto_tsquery('simple', $1) OR $1 = ''
		)
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{search, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	posts := []*data.Post{}
	for rows.Next() {
		var post data.Post
		err := rows.Scan(
			&totalRecords,
			&post.ID,
			&post.UserID,
			&post.UserName,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		posts = append(posts, &post)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return posts, metadata, nil
}
