package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/amp-queue/ordering"
)

func TestInt(t *testing.T) {
	t.Parallel()

	t.Run("Equals", func(t *testing.T) {
		t.Parallel()

		assert.True(t, ordering.Int(5).Equals(ordering.Int(5)))
		assert.False(t, ordering.Int(5).Equals(ordering.Int(6)))
	})

	t.Run("LessThan", func(t *testing.T) {
		t.Parallel()

		assert.True(t, ordering.Int(5).LessThan(ordering.Int(6)))
		assert.False(t, ordering.Int(6).LessThan(ordering.Int(5)))
		assert.False(t, ordering.Int(5).LessThan(ordering.Int(5)))
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("Equals", func(t *testing.T) {
		t.Parallel()

		assert.True(t, ordering.String("a").Equals(ordering.String("a")))
		assert.False(t, ordering.String("a").Equals(ordering.String("b")))
	})

	t.Run("LessThan is lexicographic", func(t *testing.T) {
		t.Parallel()

		assert.True(t, ordering.String("a").LessThan(ordering.String("b")))
		// Lexicographic order: "file10" < "file2"
		assert.True(t, ordering.String("file10").LessThan(ordering.String("file2")))
	})
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	t.Run("Equals", func(t *testing.T) {
		t.Parallel()

		assert.True(t, ordering.NaturalString("a").Equals(ordering.NaturalString("a")))
		assert.False(t, ordering.NaturalString("a").Equals(ordering.NaturalString("b")))
	})

	t.Run("LessThan is natural order", func(t *testing.T) {
		t.Parallel()

		// Natural order: "file2" < "file10"
		assert.True(t, ordering.NaturalString("file2").LessThan(ordering.NaturalString("file10")))
		assert.False(t, ordering.NaturalString("file10").LessThan(ordering.NaturalString("file2")))
	})

	t.Run("LessThan is strict", func(t *testing.T) {
		t.Parallel()

		// An equal value never precedes itself.
		assert.False(t, ordering.NaturalString("same").LessThan(ordering.NaturalString("same")))
		assert.False(t, ordering.NaturalString("file2").LessThan(ordering.NaturalString("file2")))
	})
}
