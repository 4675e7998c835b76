package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPointer(t *testing.T) {
	d := New()
	assert.False(t, d.ShowFPS)

	d.SetPointer("", "")
	assert.Equal(t, "hover: -  selected: -", d.pointerText)

	d.SetPointer("laces", "")
	assert.Equal(t, "hover: laces  selected: -", d.pointerText)

	d.SetPointer("sole", "band")
	assert.Equal(t, "hover: sole  selected: band", d.pointerText)

	d.SetPointer("", "band")
	assert.Equal(t, "hover: -  selected: band", d.pointerText)
}
