package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/amp-queue/ordering"
)

func TestNatural(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		less := ordering.Natural[int]()
		assert.True(t, less(1, 2))
		assert.False(t, less(2, 1))
		assert.False(t, less(1, 1))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		less := ordering.Natural[string]()
		assert.True(t, less("apple", "banana"))
		assert.False(t, less("banana", "apple"))
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()

		less := ordering.Natural[float64]()
		assert.True(t, less(1.5, 2.5))
		assert.False(t, less(2.5, 1.5))
	})
}

func TestReverse(t *testing.T) {
	t.Parallel()

	less := ordering.Reverse(ordering.Natural[int]())
	assert.True(t, less(2, 1))
	assert.False(t, less(1, 2))
	assert.False(t, less(1, 1))
}

func TestNaturalStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "embedded numbers compare numerically", a: "file2", b: "file10", want: true},
		{name: "reversed embedded numbers", a: "file10", b: "file2", want: false},
		{name: "plain strings", a: "apple", b: "banana", want: true},
		{name: "equal strings", a: "same", b: "same", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			less := ordering.NaturalStrings()
			assert.Equal(t, tt.want, less(tt.a, tt.b))
		})
	}
}

func TestBySortable(t *testing.T) {
	t.Parallel()

	less := ordering.BySortable[ordering.Int]()
	assert.True(t, less(ordering.Int(1), ordering.Int(2)))
	assert.False(t, less(ordering.Int(2), ordering.Int(1)))
	assert.False(t, less(ordering.Int(1), ordering.Int(1)))
}
