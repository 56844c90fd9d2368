package mdnative_test

import (
	"testing"

	"github.com/fwojciec/mdnative"
	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("later styles win per key", func(t *testing.T) {
		t.Parallel()
		got := mdnative.Flatten(
			mdnative.Style{"color": "1", "fontSize": 10},
			mdnative.Style{"color": "2"},
			nil,
			mdnative.Style{"margin": 1},
		)
		assert.Equal(t, mdnative.Style{"color": "2", "fontSize": 10, "margin": 1}, got)
	})

	t.Run("empty input yields empty non-nil style", func(t *testing.T) {
		t.Parallel()
		got := mdnative.Flatten()
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("result does not alias inputs", func(t *testing.T) {
		t.Parallel()
		in := mdnative.Style{"color": "1"}
		got := mdnative.Flatten(in)
		got["color"] = "2"
		assert.Equal(t, "1", in["color"])
	})
}

func TestStyle_Accessors(t *testing.T) {
	t.Parallel()

	s := mdnative.Style{"a": "x", "b": 2, "c": 3.7, "d": "4", "e": true}

	assert.Equal(t, "x", s.Str("a"))
	assert.Equal(t, "", s.Str("b"))
	assert.Equal(t, 2, s.Num("b"))
	assert.Equal(t, 3, s.Num("c"))
	assert.Equal(t, 4, s.Num("d"))
	assert.Equal(t, 0, s.Num("e"))
	assert.Equal(t, 0, s.Num("missing"))
}

func TestStyleSheet_Merge(t *testing.T) {
	t.Parallel()

	base := mdnative.StyleSheet{
		"text": {"color": "1", "fontSize": 12},
		"list": {"margin": 1},
	}
	merged := base.Merge(mdnative.StyleSheet{
		"text":  {"color": "2"},
		"image": {"width": 10},
	})

	assert.Equal(t, mdnative.Style{"color": "2", "fontSize": 12}, merged["text"])
	assert.Equal(t, mdnative.Style{"margin": 1}, merged["list"])
	assert.Equal(t, mdnative.Style{"width": 10}, merged["image"])
	assert.Equal(t, "1", base["text"]["color"])
}

func TestDefaultStyleSheet(t *testing.T) {
	t.Parallel()

	t.Run("returns an independent copy", func(t *testing.T) {
		t.Parallel()
		ss := mdnative.DefaultStyleSheet()
		ss["heading1"]["color"] = "changed"
		assert.Equal(t, "5", mdnative.DefaultStyleSheet()["heading1"]["color"])
	})

	t.Run("covers every heading level", func(t *testing.T) {
		t.Parallel()
		ss := mdnative.DefaultStyleSheet()
		for d := 1; d <= 6; d++ {
			assert.Contains(t, ss, mdnative.HeadingStyleName(d))
		}
	})

	t.Run("is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, mdnative.ValidateStyleSheet(mdnative.DefaultStyleSheet()))
	})
}
