package controller

import (
	"testing"
)

func TestRegistry(t *testing.T) {
	t.Run("AddAndGet", func(t *testing.T) {
		r := NewRegistry()
		f := &recordingFeature{}

		r.Add("mmtel", f)

		got, ok := r.Get("mmtel")
		if !ok {
			t.Fatal("Get returned ok=false")
		}
		if got != Feature(f) {
			t.Error("Get returned a different feature")
		}
		if r.Len() != 1 {
			t.Errorf("Len() = %d, want 1", r.Len())
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		r := NewRegistry()

		if _, ok := r.Get("ucse"); ok {
			t.Error("Get on empty registry returned ok=true")
		}
	})

	t.Run("ReplaceKeepsPosition", func(t *testing.T) {
		r := NewRegistry()
		first := &recordingFeature{}
		second := &recordingFeature{}
		replacement := &recordingFeature{}

		r.Add("mmtel", first)
		r.Add("ucse", second)
		r.Add("mmtel", replacement)

		kinds := r.Kinds()
		if len(kinds) != 2 {
			t.Fatalf("Kinds() = %v, want 2 entries", kinds)
		}
		if kinds[0] != "mmtel" || kinds[1] != "ucse" {
			t.Errorf("Kinds() = %v, want [mmtel ucse]", kinds)
		}

		got, _ := r.Get("mmtel")
		if got != Feature(replacement) {
			t.Error("replaced kind still holds the original feature")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		r := NewRegistry()
		f := &recordingFeature{}
		r.Add("mmtel", f)

		removed := r.Remove("mmtel")
		if removed != Feature(f) {
			t.Error("Remove returned a different feature")
		}
		if r.Len() != 0 {
			t.Errorf("Len() = %d after Remove, want 0", r.Len())
		}
		if r.Remove("mmtel") != nil {
			t.Error("second Remove returned non-nil")
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		r := NewRegistry()

		if r.Remove("never-added") != nil {
			t.Error("Remove on empty registry returned non-nil")
		}
	})

	t.Run("EachInsertionOrder", func(t *testing.T) {
		r := NewRegistry()
		r.Add("c", &recordingFeature{})
		r.Add("a", &recordingFeature{})
		r.Add("b", &recordingFeature{})
		r.Remove("a")
		r.Add("a", &recordingFeature{})

		var order []FeatureKind
		r.Each(func(kind FeatureKind, _ Feature) {
			order = append(order, kind)
		})

		want := []FeatureKind{"c", "b", "a"}
		if len(order) != len(want) {
			t.Fatalf("Each visited %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("Each visited %v, want %v", order, want)
				break
			}
		}
	})

	t.Run("Clear", func(t *testing.T) {
		r := NewRegistry()
		r.Add("mmtel", &recordingFeature{})
		r.Add("ucse", &recordingFeature{})

		r.Clear()

		if r.Len() != 0 {
			t.Errorf("Len() = %d after Clear, want 0", r.Len())
		}
		if len(r.Kinds()) != 0 {
			t.Errorf("Kinds() = %v after Clear, want empty", r.Kinds())
		}
	})
}
