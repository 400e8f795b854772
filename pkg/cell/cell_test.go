package cell_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/cell"
)

func TestCell(t *testing.T) {
	t.Run("returns initial value", func(t *testing.T) {
		c := cell.New(42)
		assert.Equal(t, 42, c.Get())
	})

	t.Run("set replaces value", func(t *testing.T) {
		c := cell.New("a")
		c.Set("b")
		assert.Equal(t, "b", c.Get())
	})

	t.Run("swap returns previous value", func(t *testing.T) {
		c := cell.New(1)
		prev := c.Swap(2)
		assert.Equal(t, 1, prev)
		assert.Equal(t, 2, c.Get())
	})

	t.Run("holds map values by reference", func(t *testing.T) {
		m := map[string]string{"k": "v"}
		c := cell.New(m)
		assert.Equal(t, m, c.Get())
	})

	t.Run("tolerates concurrent readers and writers", func(t *testing.T) {
		c := cell.New(0)
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				c.Set(i)
			}()
			go func() {
				defer wg.Done()
				_ = c.Get()
			}()
		}
		wg.Wait()
	})
}

func TestStatic(t *testing.T) {
	t.Run("always returns the wrapped value", func(t *testing.T) {
		g := cell.Static("fixed")
		assert.Equal(t, "fixed", g.Get())
		assert.Equal(t, "fixed", g.Get())
	})
}

func TestFunc(t *testing.T) {
	t.Run("reads through to the function result", func(t *testing.T) {
		n := 0
		g := cell.Func[int](func() int {
			n++
			return n
		})
		assert.Equal(t, 1, g.Get())
		assert.Equal(t, 2, g.Get())
	})
}
