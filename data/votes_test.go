package data

import "testing"

func TestApplyVote(t *testing.T) {
	t.Run("upvote from no vote", func(t *testing.T) {
		stats := PostStats{Upvotes: 5, Downvotes: 2, ViewerVote: VoteNone}
		stats.ApplyVote(VoteUp)
		if stats.Upvotes != 6 || stats.Downvotes != 2 || stats.ViewerVote != VoteUp {
			t.Errorf("got %+v", stats)
		}
	})

	t.Run("re-click clears the vote", func(t *testing.T) {
		stats := PostStats{Upvotes: 6, Downvotes: 2, ViewerVote: VoteUp}
		stats.ApplyVote(VoteUp)
		if stats.Upvotes != 5 || stats.Downvotes != 2 || stats.ViewerVote != VoteNone {
			t.Errorf("got %+v", stats)
		}
	})

	t.Run("switch adjusts both counters", func(t *testing.T) {
		stats := PostStats{Upvotes: 6, Downvotes: 2, ViewerVote: VoteUp}
		stats.ApplyVote(VoteDown)
		if stats.Upvotes != 5 || stats.Downvotes != 3 || stats.ViewerVote != VoteDown {
			t.Errorf("got %+v", stats)
		}
	})

	t.Run("full click sequence", func(t *testing.T) {
		stats := PostStats{Upvotes: 5, Downvotes: 2, ViewerVote: VoteNone}
		steps := []struct {
			direction int
			upvotes   int64
			downvotes int64
			viewer    int
		}{
			{VoteUp, 6, 2, VoteUp},
			{VoteUp, 5, 2, VoteNone},
			{VoteUp, 6, 2, VoteUp},
			{VoteDown, 5, 3, VoteDown},
			{VoteDown, 5, 2, VoteNone},
		}
		for i, step := range steps {
			stats.ApplyVote(step.direction)
			if stats.Upvotes != step.upvotes || stats.Downvotes != step.downvotes || stats.ViewerVote != step.viewer {
				t.Fatalf("step %d: got %+v", i, stats)
			}
		}
	})
}

func TestToggleFollow(t *testing.T) {
	stats := PostStats{IsFollowing: false}
	stats.ToggleFollow()
	if !stats.IsFollowing {
		t.Error("expected following after first toggle")
	}
	stats.ToggleFollow()
	if stats.IsFollowing {
		t.Error("expected not following after second toggle")
	}
}

func TestToggleLike(t *testing.T) {
	stats := CommentStats{LikeCount: 3, ViewerHasLiked: false}
	liked := stats.ToggleLike()
	if !liked || stats.LikeCount != 4 || !stats.ViewerHasLiked {
		t.Errorf("after like: got %+v", stats)
	}
	liked = stats.ToggleLike()
	if liked || stats.LikeCount != 3 || stats.ViewerHasLiked {
		t.Errorf("after unlike: got %+v", stats)
	}
}
