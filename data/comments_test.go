package data

import (
	"testing"
)

func comment(id, parentID, userID int64, content string) *Comment {
	return &Comment{
		ID:       id,
		PostID:   1,
		ParentID: parentID,
		UserID:   userID,
		UserName: "user",
		Content:  content,
	}
}

func TestBuildCommentTree(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		tree := BuildCommentTree(nil, nil, nil, 0)
		if tree == nil {
			t.Fatal("expected an empty forest; got nil")
		}
		if len(tree) != 0 {
			t.Errorf("expected 0 top-level nodes; got %d", len(tree))
		}
	})

	t.Run("nesting and completeness", func(t *testing.T) {
		records := []*Comment{
			comment(1, 0, 10, "a"),
			comment(2, 1, 11, "b"),
			comment(3, 0, 10, "c"),
			comment(4, 1, 12, "d"),
			comment(5, 3, 11, "e"),
		}
		tree := BuildCommentTree(records, nil, nil, 0)
		if len(tree) != 2 {
			t.Fatalf("expected 2 top-level nodes; got %d", len(tree))
		}
		if tree[0].ID != 1 || tree[1].ID != 3 {
			t.Errorf("expected top-level IDs [1 3]; got [%d %d]", tree[0].ID, tree[1].ID)
		}
		if len(tree[0].Replies) != 2 {
			t.Fatalf("expected 2 replies under comment 1; got %d", len(tree[0].Replies))
		}
		if tree[0].Replies[0].ID != 2 || tree[0].Replies[1].ID != 4 {
			t.Errorf("expected reply IDs [2 4]; got [%d %d]", tree[0].Replies[0].ID, tree[0].Replies[1].ID)
		}
		if len(tree[1].Replies) != 1 || tree[1].Replies[0].ID != 5 {
			t.Errorf("expected comment 5 under comment 3")
		}
		// Every record appears in the tree exactly once
		total := 0
		var count func(nodes []*CommentNode)
		count = func(nodes []*CommentNode) {
			for _, node := range nodes {
				total++
				count(node.Replies)
			}
		}
		count(tree)
		if total != len(records) {
			t.Errorf("expected %d nodes in tree; got %d", len(records), total)
		}
	})

	t.Run("input order preserved", func(t *testing.T) {
		records := []*Comment{
			comment(7, 0, 10, "first"),
			comment(2, 0, 10, "second"),
			comment(9, 0, 10, "third"),
		}
		tree := BuildCommentTree(records, nil, nil, 0)
		want := []int64{7, 2, 9}
		for i, node := range tree {
			if node.ID != want[i] {
				t.Errorf("position %d: expected ID %d; got %d", i, want[i], node.ID)
			}
		}
	})

	t.Run("orphan promoted to top level", func(t *testing.T) {
		records := []*Comment{
			comment(1, 0, 10, "a"),
			comment(2, 99, 11, "orphan"),
			comment(3, 0, 10, "c"),
		}
		tree := BuildCommentTree(records, nil, nil, 0)
		if len(tree) != 3 {
			t.Fatalf("expected 3 top-level nodes; got %d", len(tree))
		}
		if tree[1].ID != 2 {
			t.Errorf("expected orphan at position 1; got ID %d", tree[1].ID)
		}
	})

	t.Run("like aggregation", func(t *testing.T) {
		records := []*Comment{
			comment(1, 0, 10, "a"),
			comment(2, 0, 11, "b"),
		}
		likes := []*CommentLike{
			{CommentID: 1, UserID: 20},
			{CommentID: 1, UserID: 21},
			{CommentID: 1, UserID: 22},
			{CommentID: 2, UserID: 21},
		}
		tree := BuildCommentTree(records, likes, nil, 21)
		if tree[0].LikeCount != 3 {
			t.Errorf("expected like count 3; got %d", tree[0].LikeCount)
		}
		if !tree[0].ViewerHasLiked {
			t.Error("expected viewer 21 to have liked comment 1")
		}
		if tree[1].LikeCount != 1 || !tree[1].ViewerHasLiked {
			t.Errorf("expected comment 2 liked once by the viewer; got count %d, liked %t", tree[1].LikeCount, tree[1].ViewerHasLiked)
		}
	})

	t.Run("anonymous viewer never matches likes", func(t *testing.T) {
		records := []*Comment{comment(1, 0, 10, "a")}
		likes := []*CommentLike{{CommentID: 1, UserID: 0}}
		tree := BuildCommentTree(records, likes, nil, 0)
		if tree[0].ViewerHasLiked {
			t.Error("anonymous viewer must not be flagged as having liked")
		}
		if tree[0].LikeCount != 1 {
			t.Errorf("expected like count 1; got %d", tree[0].LikeCount)
		}
	})

	t.Run("author profiles", func(t *testing.T) {
		records := []*Comment{
			comment(1, 0, 10, "a"),
			comment(2, 0, 11, "b"),
		}
		authors := []*AuthorInfo{
			{UserID: 10, DisplayName: "Ada", AvatarURL: "https://cdn.example.com/ada.png"},
		}
		tree := BuildCommentTree(records, nil, authors, 0)
		if tree[0].AuthorDisplayName != "Ada" {
			t.Errorf("expected display name Ada; got %q", tree[0].AuthorDisplayName)
		}
		if tree[0].AuthorAvatarURL != "https://cdn.example.com/ada.png" {
			t.Errorf("unexpected avatar URL %q", tree[0].AuthorAvatarURL)
		}
		// Missing profile falls back to the record's embedded name
		if tree[1].AuthorDisplayName != "user" {
			t.Errorf("expected fallback name user; got %q", tree[1].AuthorDisplayName)
		}
	})

	t.Run("replies initialized empty", func(t *testing.T) {
		tree := BuildCommentTree([]*Comment{comment(1, 0, 10, "a")}, nil, nil, 0)
		if tree[0].Replies == nil {
			t.Error("expected an empty replies slice, not nil")
		}
	})
}

func TestDepth(t *testing.T) {
	records := []*Comment{
		comment(1, 0, 10, "root"),
		comment(2, 1, 11, "reply"),
		comment(3, 2, 12, "nested"),
		comment(4, 99, 13, "orphan"),
	}

	t.Run("top-level comment", func(t *testing.T) {
		if got := Depth(records, 1); got != 0 {
			t.Errorf("expected depth 0; got %d", got)
		}
	})

	t.Run("reply", func(t *testing.T) {
		if got := Depth(records, 2); got != 1 {
			t.Errorf("expected depth 1; got %d", got)
		}
	})

	t.Run("nested reply", func(t *testing.T) {
		if got := Depth(records, 3); got != 2 {
			t.Errorf("expected depth 2; got %d", got)
		}
	})

	t.Run("orphan counts as root", func(t *testing.T) {
		if got := Depth(records, 4); got != 0 {
			t.Errorf("expected depth 0; got %d", got)
		}
	})

	t.Run("cycle terminates", func(t *testing.T) {
		cyclic := []*Comment{
			comment(1, 2, 10, "a"),
			comment(2, 1, 11, "b"),
		}
		// Must not hang; the exact value is unimportant
		Depth(cyclic, 1)
	})
}
