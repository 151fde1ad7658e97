package resultcache

import (
	"testing"
	"time"
)

func TestPutGetRoundTrip(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	key := Key(`{"variable":"n","terms":[{"coefficient":2,"scale_factor":0.5}]}`)
	want := Entry{
		Outcome:          "MasterCase2",
		Expression:       "O(n log n)",
		CriticalExponent: 1,
		Reasons:          []string{"master theorem case 2"},
		CachedAt:         time.Unix(1700000000, 0).UTC(),
	}
	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.Outcome != want.Outcome || got.Expression != want.Expression {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.Reasons) != 1 || got.Reasons[0] != want.Reasons[0] {
		t.Errorf("reasons = %v, want %v", got.Reasons, want.Reasons)
	}
}

func TestGetMissReturnsNoError(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Get(Key("nonexistent"))
	if err != nil {
		t.Fatalf("unexpected error on miss: %v", err)
	}
	if ok {
		t.Error("expected a miss")
	}
}

func TestPutOverwritesExistingKey(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	key := Key("same-recurrence")
	first := Entry{Outcome: "MasterCase1", Expression: "O(1)", CachedAt: time.Unix(1, 0).UTC()}
	second := Entry{Outcome: "MasterCase2", Expression: "O(n log n)", CachedAt: time.Unix(2, 0).UTC()}

	if err := c.Put(key, first); err != nil {
		t.Fatalf("Put first: %v", err)
	}
	if err := c.Put(key, second); err != nil {
		t.Fatalf("Put second: %v", err)
	}

	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Outcome != second.Outcome {
		t.Errorf("outcome = %q, want %q (the overwritten value)", got.Outcome, second.Outcome)
	}
}
