package data

import (
	"time"

	"github.com/okezie/pawhaven/internal/validator"
)

// MaxReplyDepth is the deepest comment a reply may be posted under. Replies
// are only writable one level below a top-level comment, although deeper
// trees already present in storage are still assembled and displayed.
const MaxReplyDepth = 1

// Comment defines a single forum comment as stored: a flat record whose
// ParentID references another comment, or 0 for a top-level comment.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	ParentID  int64     `json:"parent_id,omitempty"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int32     `json:"-"`
}

// CommentLike is one user's like of one comment.
type CommentLike struct {
	CommentID int64
	UserID    int64
}

// AuthorInfo carries the display profile for a comment author.
type AuthorInfo struct {
	UserID      int64
	DisplayName string
	AvatarURL   string
}

// CommentNode is a Comment enriched with aggregated like data, author display
// data and a nested Replies sequence. The tree is a derived, ephemeral view:
// it is rebuilt on every fetch and never persisted.
type CommentNode struct {
	Comment
	LikeCount         int64          `json:"like_count"`
	ViewerHasLiked    bool           `json:"viewer_has_liked"`
	AuthorDisplayName string         `json:"author_display_name"`
	AuthorAvatarURL   string         `json:"author_avatar_url,omitempty"`
	Replies           []*CommentNode `json:"replies"`
}

// BuildCommentTree assembles a flat, chronologically ascending list of comment
// records into a rooted forest. Like rows are aggregated per comment in one
// pass; viewerID 0 denotes an anonymous viewer and never matches a like row.
// Records whose ParentID does not resolve within the fetched set are promoted
// to top level rather than dropped. Input order is preserved at every level,
// so both the top-level sequence and each parent's replies stay in
// chronological order without re-sorting.
func BuildCommentTree(records []*Comment, likes []*CommentLike, authors []*AuthorInfo, viewerID int64) []*CommentNode {
	likeCounts := make(map[int64]int64)
	viewerLiked := make(map[int64]bool)
	for _, like := range likes {
		likeCounts[like.CommentID]++
		if viewerID != 0 && like.UserID == viewerID {
			viewerLiked[like.CommentID] = true
		}
	}

	profiles := make(map[int64]*AuthorInfo)
	for _, author := range authors {
		profiles[author.UserID] = author
	}

	nodes := make(map[int64]*CommentNode, len(records))
	for _, record := range records {
		node := &CommentNode{
			Comment:        *record,
			LikeCount:      likeCounts[record.ID],
			ViewerHasLiked: viewerLiked[record.ID],
			Replies:        []*CommentNode{},
		}
		// Missing profile falls back to the name embedded in the record.
		if profile, ok := profiles[record.UserID]; ok {
			node.AuthorDisplayName = profile.DisplayName
			node.AuthorAvatarURL = profile.AvatarURL
		} else {
			node.AuthorDisplayName = record.UserName
		}
		nodes[record.ID] = node
	}

	roots := []*CommentNode{}
	for _, record := range records {
		node := nodes[record.ID]
		if record.ParentID == 0 {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[record.ParentID]
		if !ok {
			// Orphaned reply: the declared parent is not in the fetched set.
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return roots
}

// Depth returns how many ancestors a comment has within the fetched set. An
// orphaned record counts as a root.
func Depth(records []*Comment, commentID int64) int {
	byID := make(map[int64]*Comment, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}
	depth := 0
	record, ok := byID[commentID]
	for ok && record.ParentID != 0 {
		record, ok = byID[record.ParentID]
		if !ok {
			break
		}
		depth++
		// Guard against reference cycles in bad data.
		if depth > len(records) {
			break
		}
	}
	return depth
}

func ValidateComment(v *validator.Validator, comment *Comment) {
	v.Check(comment.Content != "", "content", "must be provided")
	v.Check(len(comment.Content) <= 10_000, "content", "must not be more than 10000 bytes long")
}
