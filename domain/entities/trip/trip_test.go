package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	record := Record{StartStation: "Canal St & Adams St", EndStation: "Clark St & Elm St"}
	assert.Equal(t, "Canal St & Adams St, Clark St & Elm St", record.Route())
}

func TestSliceClampsBounds(t *testing.T) {
	table := NewTable(Schema{}, make([]Record, 12))

	assert.Len(t, table.Slice(0, 5), 5)
	assert.Len(t, table.Slice(10, 15), 2)
	assert.Nil(t, table.Slice(12, 17))
	assert.Equal(t, 12, table.Len())
}
