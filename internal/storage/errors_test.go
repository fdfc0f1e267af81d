package storage

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", ErrNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("task 42: %w", ErrNotFound), KindNotFound},
		{"constraint", ErrConstraint, KindConstraint},
		{"wrapped constraint", fmt.Errorf("%w: UNIQUE constraint failed", ErrConstraint), KindConstraint},
		{"backend", errors.New("disk I/O error"), KindBackend},
		{"nil-ish unknown", errors.New(""), KindBackend},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.err); got != c.want {
				t.Errorf("Classify(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}
