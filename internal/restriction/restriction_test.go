package restriction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_Render(t *testing.T) {
	t.Run("empty buffer renders nothing", func(t *testing.T) {
		var b Buffer
		assert.Equal(t, "", b.Render())
		assert.Equal(t, 0, b.Len())
	})

	t.Run("values and lists keep insertion order", func(t *testing.T) {
		// Arrange
		var b Buffer
		b.AddList("Enum", []string{"**A** - first", "**B**"})
		b.Add("maxLength", 255)
		b.Add("exclusiveMaximum", true)
		b.Add("pattern", `^\d+$`)

		// Act
		out := b.Render()

		// Assert
		assert.Equal(t,
			"\n* Enum: "+
				"\n  * **A** - first"+
				"\n  * **B**"+
				"\n* maxLength: 255"+
				"\n* exclusiveMaximum: true"+
				"\n* pattern: ^\\d+$",
			out)
	})

	t.Run("append concatenates buffers", func(t *testing.T) {
		var head, tail Buffer
		head.Add("minLength", 1)
		tail.Add("pattern", "x")

		head.Append(tail)

		assert.Equal(t, 2, head.Len())
		assert.Equal(t, "\n* minLength: 1\n* pattern: x", head.Render())
	})

	t.Run("list items are copied", func(t *testing.T) {
		items := []string{"**A**"}
		var b Buffer
		b.AddList("Enum", items)
		items[0] = "changed"

		assert.Equal(t, "\n* Enum: \n  * **A**", b.Render())
	})
}
