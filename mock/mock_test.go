package mock_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/mdnative"
	"github.com/fwojciec/mdnative/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ParseFn", func(t *testing.T) {
		t.Parallel()
		want := &mdnative.Node{Type: mdnative.NodeContainer}
		p := mock.Parser{
			ParseFn: func(source string) (*mdnative.Node, error) {
				assert.Equal(t, "# hi", source)
				return want, nil
			},
		}
		got, err := p.Parse("# hi")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("bad markdown")
		p := mock.Parser{
			ParseFn: func(string) (*mdnative.Node, error) {
				return nil, wantErr
			},
		}
		_, err := p.Parse("")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when ParseFn not set", func(t *testing.T) {
		t.Parallel()
		p := mock.Parser{}
		assert.Panics(t, func() {
			_, _ = p.Parse("")
		})
	})
}

func TestElementBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("delegates to BuildFn", func(t *testing.T) {
		t.Parallel()
		b := mock.ElementBuilder{
			BuildFn: func(p mdnative.Props) *mdnative.Element {
				return &mdnative.Element{Component: "Custom", Key: p.Key}
			},
		}
		got := b.Build(mdnative.Props{Key: "k"})
		assert.Equal(t, &mdnative.Element{Component: "Custom", Key: "k"}, got)
	})

	t.Run("panics when BuildFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.ElementBuilder{}
		assert.Panics(t, func() {
			b.Build(mdnative.Props{})
		})
	})
}

func TestPainter_Paint(t *testing.T) {
	t.Parallel()

	t.Run("delegates to PaintFn", func(t *testing.T) {
		t.Parallel()
		el := &mdnative.Element{Component: mdnative.ComponentText, Text: "x"}
		p := mock.Painter{
			PaintFn: func(got *mdnative.Element, width int) string {
				assert.Same(t, el, got)
				assert.Equal(t, 40, width)
				return "painted"
			},
		}
		assert.Equal(t, "painted", p.Paint(el, 40))
	})

	t.Run("panics when PaintFn not set", func(t *testing.T) {
		t.Parallel()
		p := mock.Painter{}
		assert.Panics(t, func() {
			p.Paint(nil, 0)
		})
	})
}
