package validator

import "testing"

func TestValidator(t *testing.T) {
	t.Run("new validator is valid", func(t *testing.T) {
		v := New()
		if !v.Valid() {
			t.Error("expected a fresh validator to be valid")
		}
	})

	t.Run("failed check records an error", func(t *testing.T) {
		v := New()
		v.Check(false, "name", "must be provided")
		if v.Valid() {
			t.Error("expected validator to be invalid")
		}
		if v.Errors["name"] != "must be provided" {
			t.Errorf("got %q", v.Errors["name"])
		}
	})

	t.Run("first error for a key wins", func(t *testing.T) {
		v := New()
		v.AddError("email", "must be provided")
		v.AddError("email", "must be a valid email address")
		if v.Errors["email"] != "must be provided" {
			t.Errorf("got %q", v.Errors["email"])
		}
	})

	t.Run("in", func(t *testing.T) {
		if !In("up", "up", "down") {
			t.Error("expected up to be in the list")
		}
		if In("sideways", "up", "down") {
			t.Error("expected sideways to be rejected")
		}
	})

	t.Run("email matching", func(t *testing.T) {
		if !Matches("ada@example.com", EmailRX) {
			t.Error("expected a valid email to match")
		}
		if Matches("not-an-email", EmailRX) {
			t.Error("expected an invalid email not to match")
		}
	})

	t.Run("unique", func(t *testing.T) {
		if !Unique([]string{"a", "b", "c"}) {
			t.Error("expected distinct values to be unique")
		}
		if Unique([]string{"a", "b", "a"}) {
			t.Error("expected duplicates to be rejected")
		}
	})
}
