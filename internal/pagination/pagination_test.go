package pagination

import "testing"

func TestLinks(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		limit        int64
		total        int64
		wantNext     bool
		wantPrevious bool
	}{
		{"first page with more records", 1, 10, 25, true, false},
		{"middle page", 2, 10, 25, true, true},
		{"last partial page", 3, 10, 25, false, true},
		{"exact fit has no next", 2, 10, 20, false, true},
		{"single page", 1, 10, 10, false, false},
		{"empty collection", 1, 10, 0, false, false},
		{"one past the end", 4, 10, 25, false, true},
	}

	for _, tc := range tests {
		next, previous := Links(Params{Page: tc.page, Limit: tc.limit}, tc.total)
		if (next != nil) != tc.wantNext {
			t.Errorf("%s: next = %v, want present=%v", tc.name, next, tc.wantNext)
		}
		if (previous != nil) != tc.wantPrevious {
			t.Errorf("%s: previous = %v, want present=%v", tc.name, previous, tc.wantPrevious)
		}
	}
}

func TestLinksValues(t *testing.T) {
	next, previous := Links(Params{Page: 2, Limit: 5}, 100)
	if next == nil || next.Page != 3 || next.Limit != 5 {
		t.Errorf("next = %+v, want page 3 limit 5", next)
	}
	if previous == nil || previous.Page != 1 || previous.Limit != 5 {
		t.Errorf("previous = %+v, want page 1 limit 5", previous)
	}
}

func TestEnvelope(t *testing.T) {
	next, previous := Links(Params{Page: 2, Limit: 10}, 30)
	body := Envelope("posts", []int{1, 2, 3}, next, previous)
	if _, ok := body["posts"]; !ok {
		t.Fatal("envelope missing items key")
	}
	if _, ok := body["next"]; !ok {
		t.Error("envelope missing next")
	}
	if _, ok := body["previous"]; !ok {
		t.Error("envelope missing previous")
	}

	body = Envelope("posts", nil, nil, nil)
	if _, ok := body["next"]; ok {
		t.Error("next should be omitted when nil")
	}
	if _, ok := body["previous"]; ok {
		t.Error("previous should be omitted when nil")
	}
}
