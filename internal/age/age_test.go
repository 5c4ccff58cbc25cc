package age

import (
	"testing"
	"time"
)

func TestAgeData(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	age, ok := AgeData(now.Add(-time.Hour), now)
	if !ok || age != time.Hour {
		t.Errorf("got (%v, %v)", age, ok)
	}

	if _, ok := AgeData(time.Time{}, now); ok {
		t.Error("zero time must report no data")
	}

	// Clock skew never produces a negative age.
	age, ok = AgeData(now.Add(time.Minute), now)
	if !ok || age != 0 {
		t.Errorf("future time: got (%v, %v)", age, ok)
	}
}
