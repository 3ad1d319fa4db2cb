package repository

import (
	"context"
	"time"

	"github.com/okezie/pawhaven/data"
)

type follows interface {
	InsertFollow(userID, postID int64) error
	DeleteFollow(userID, postID int64) error
	GetFollowersForPost(postID int64) ([]*data.User, error)
}

// InsertFollow creates a follow row for a post.
func (r *repository) InsertFollow(userID, postID int64) error {
	query := `
		INSERT INTO post_follows (user_id, post_id)
		VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "post_follows_pkey"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// DeleteFollow deletes a follow row for a post.
func (r *repository) DeleteFollow(userID, postID int64) error {
	query := `
		DELETE FROM post_follows
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

// GetFollowersForPost retrieves every user following a post, for comment
// notification emails.
func (r *repository) GetFollowersForPost(postID int64) ([]*data.User, error) {
	query := `
		SELECT users.id, users.name, users.email
		FROM users
		INNER JOIN post_follows ON post_follows.user_id = users.id
		WHERE post_follows.post_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := []*data.User{}
	for rows.Next() {
		var user data.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
