package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrUint(u uint) *uint { return &u }

func TestResizeClientSlots_Truncate(t *testing.T) {
	slots := []*uint{ptrUint(1), ptrUint(2), ptrUint(3)}

	out := ResizeClientSlots(slots, 2)

	assert.Len(t, out, 2)
	assert.Equal(t, uint(1), *out[0])
	assert.Equal(t, uint(2), *out[1])
}

func TestResizeClientSlots_PadWithNil(t *testing.T) {
	slots := []*uint{ptrUint(1)}

	out := ResizeClientSlots(slots, 3)

	assert.Len(t, out, 3)
	assert.Equal(t, uint(1), *out[0])
	assert.Nil(t, out[1])
	assert.Nil(t, out[2])
}

func TestResizeClientSlots_NegativeRequired(t *testing.T) {
	out := ResizeClientSlots([]*uint{ptrUint(1)}, -1)
	assert.Len(t, out, 0)
}

func TestHasClient(t *testing.T) {
	a := Activity{Clients: []Client{{UserID: 5}, {UserID: 7}}}

	assert.True(t, a.HasClient(5))
	assert.True(t, a.HasClient(7))
	assert.False(t, a.HasClient(6))
}

func TestActiveSchedule_Empty(t *testing.T) {
	a := Activity{}
	assert.Nil(t, a.ActiveSchedule())
}
