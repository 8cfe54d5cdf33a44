package utils_test

import (
	"errors"
	"testing"

	"github.com/denismitr/extensions/utils"
	"github.com/stretchr/testify/assert"
)

type point struct {
	x, y int
}

func TestIsZero(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		assert.True(t, utils.IsZero(0))
		assert.False(t, utils.IsZero(42))
		assert.True(t, utils.IsZero(0.0))
	})

	t.Run("structs", func(t *testing.T) {
		assert.True(t, utils.IsZero(point{}))
		assert.False(t, utils.IsZero(point{x: 1}))
	})

	t.Run("nil pointers and interfaces", func(t *testing.T) {
		var p *point
		assert.True(t, utils.IsZero(p))
		assert.False(t, utils.IsZero(&point{}))

		var err error
		assert.True(t, utils.IsZero(err))
		assert.False(t, utils.IsZero(errors.New("boom")))
	})
}

func TestLowerStrings(t *testing.T) {
	t.Run("it does not mutate the source", func(t *testing.T) {
		src := []string{"Foo", "BAR", ""}
		lowered := utils.LowerStrings(src)

		assert.Equal(t, []string{"foo", "bar", ""}, lowered)
		assert.Equal(t, []string{"Foo", "BAR", ""}, src)
	})

	t.Run("non ascii", func(t *testing.T) {
		assert.Equal(t, "straße", utils.LowerString("STRAßE"))
		assert.Equal(t, 'ж', utils.LowerRune('Ж'))
	})
}
