package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberPath(t *testing.T) {
	// Simple path
	p1 := NewMemberPath("Order")
	assert.Equal(t, "Order", p1.String())

	// Field path
	p2 := p1.Field("Items")
	assert.Equal(t, "Order.Items", p2.String())

	// Method parameter
	p3 := p1.Field("Cancel").Param("reason")
	assert.Equal(t, "Order.Cancel(reason)", p3.String())

	// Function result
	p4 := NewMemberPath("NewOrder").Result(1)
	assert.Equal(t, "NewOrder#1", p4.String())

	// Paths are immutable
	assert.Equal(t, "Order", p1.String())
	assert.Equal(t, "Order.Items", p2.String())

	empty := (&MemberPath{}).Result(0)
	assert.Equal(t, "#0", empty.String())
}
