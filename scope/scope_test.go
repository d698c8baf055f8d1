package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector(t *testing.T) {
	id := Counted(AttrName(""), 0)
	if id.Selector() != `[data-kremling="0"]` {
		t.Errorf("expected selector to be [data-kremling=\"0\"], is %s", id.Selector())
	}
	id = ID{Attr: "donkey-kong", Value: "15"}
	assert.Equal(t, `[donkey-kong="15"]`, id.Selector())
	assert.Equal(t, map[string]string{"donkey-kong": "15"}, id.Descriptor())
}

func TestAttrName(t *testing.T) {
	assert.Equal(t, "data-kremling", AttrName(DefaultNamespace))
	assert.Equal(t, "data-yoshi", AttrName("yoshi"))
}

func TestZeroID(t *testing.T) {
	var id ID
	if !id.IsZero() {
		t.Error("expected zero ID to report IsZero")
	}
	assert.Empty(t, id.Descriptor())
}

func TestCounterIsMonotonic(t *testing.T) {
	var c Counter
	prev := -1
	for i := 0; i < 10; i++ {
		n := c.Next()
		if n <= prev {
			t.Fatalf("expected counter to increase, got %d after %d", n, prev)
		}
		prev = n
	}
	assert.Equal(t, 10, c.Peek())
	c.Reset()
	assert.Equal(t, 0, c.Next())
}
