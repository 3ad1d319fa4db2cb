package data

// Vote directions. Stored votes are one row per user per post with a value
// of VoteUp or VoteDown; VoteNone means no stored row.
const (
	VoteDown = -1
	VoteNone = 0
	VoteUp   = 1
)

// PostStats is the viewer-specific aggregate state for one post: vote totals,
// the viewer's own vote and whether the viewer follows the post. It is the
// state the optimistic mutation protocol snapshots and rolls back.
type PostStats struct {
	PostID       int64 `json:"post_id"`
	Upvotes      int64 `json:"upvotes"`
	Downvotes    int64 `json:"downvotes"`
	ViewerVote   int   `json:"viewer_vote"`
	IsFollowing  bool  `json:"is_following"`
	CommentCount int64 `json:"comment_count"`
}

// ApplyVote transitions the aggregate for one vote action in a single state
// change: clicking the currently active direction clears the vote, and
// switching direction removes the prior vote's effect and applies the new
// one with both counters adjusted together.
func (s *PostStats) ApplyVote(direction int) {
	if direction == s.ViewerVote {
		s.adjust(direction, -1)
		s.ViewerVote = VoteNone
		return
	}
	if s.ViewerVote != VoteNone {
		s.adjust(s.ViewerVote, -1)
	}
	s.adjust(direction, 1)
	s.ViewerVote = direction
}

// ToggleFollow flips the viewer's follow state.
func (s *PostStats) ToggleFollow() {
	s.IsFollowing = !s.IsFollowing
}

func (s *PostStats) adjust(direction int, delta int64) {
	switch direction {
	case VoteUp:
		s.Upvotes += delta
	case VoteDown:
		s.Downvotes += delta
	}
}

// CommentStats is the viewer-specific like aggregate for one comment.
type CommentStats struct {
	CommentID      int64 `json:"comment_id"`
	LikeCount      int64 `json:"like_count"`
	ViewerHasLiked bool  `json:"viewer_has_liked"`
}

// ToggleLike flips the viewer's like and adjusts the count in the same state
// change, returning the new liked flag.
func (s *CommentStats) ToggleLike() bool {
	if s.ViewerHasLiked {
		s.LikeCount--
		s.ViewerHasLiked = false
		return false
	}
	s.LikeCount++
	s.ViewerHasLiked = true
	return true
}
