package data

import "testing"

func TestFilters(t *testing.T) {
	filters := Filters{
		Page:         3,
		PageSize:     20,
		Sort:         "-created_at",
		SortSafelist: []string{"id", "created_at", "-id", "-created_at"},
	}

	t.Run("sort column", func(t *testing.T) {
		if got := filters.SortColumn(); got != "created_at" {
			t.Errorf("expected created_at; got %q", got)
		}
	})

	t.Run("sort direction", func(t *testing.T) {
		if got := filters.SortDirection(); got != "DESC" {
			t.Errorf("expected DESC; got %q", got)
		}
		filters := Filters{Sort: "id", SortSafelist: []string{"id"}}
		if got := filters.SortDirection(); got != "ASC" {
			t.Errorf("expected ASC; got %q", got)
		}
	})

	t.Run("unsafe sort panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for an unlisted sort value")
			}
		}()
		unsafe := Filters{Sort: "password_hash", SortSafelist: []string{"id"}}
		unsafe.SortColumn()
	})

	t.Run("limit and offset", func(t *testing.T) {
		if got := filters.Limit(); got != 20 {
			t.Errorf("expected limit 20; got %d", got)
		}
		if got := filters.Offset(); got != 40 {
			t.Errorf("expected offset 40; got %d", got)
		}
	})
}

func TestCalculateMetadata(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		metadata := CalculateMetadata(0, 1, 20)
		if metadata != (Metadata{}) {
			t.Errorf("expected empty metadata; got %+v", metadata)
		}
	})

	t.Run("partial last page", func(t *testing.T) {
		metadata := CalculateMetadata(45, 2, 20)
		if metadata.LastPage != 3 {
			t.Errorf("expected last page 3; got %d", metadata.LastPage)
		}
		if metadata.CurrentPage != 2 || metadata.TotalRecords != 45 || metadata.FirstPage != 1 {
			t.Errorf("got %+v", metadata)
		}
	})
}
