package games

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	gameType := reflect.TypeOf(Game{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Title", "title"},
	}

	for _, fc := range fields {
		field, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestGameDecodesWithoutID(t *testing.T) {
	var g Game
	if err := json.Unmarshal([]byte(`{"title":"some game"}`), &g); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if g.ID != 0 || g.Title != "some game" {
		t.Fatalf("unexpected game %+v", g)
	}
}

func TestWithIDLeavesOriginalUntouched(t *testing.T) {
	orig := Game{ID: 10, Title: "some game"}
	got := orig.WithID(1)

	if got.ID != 1 || got.Title != "some game" {
		t.Fatalf("unexpected copy %+v", got)
	}
	if orig.ID != 10 {
		t.Fatalf("expected original id preserved, got %d", orig.ID)
	}
}
