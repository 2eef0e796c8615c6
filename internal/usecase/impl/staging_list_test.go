package impl

import (
	"sync"
	"testing"

	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagingList_AddAndLookup(t *testing.T) {
	staging := NewStagingList()

	require.NoError(t, staging.Add(entity.Product{ID: 1, Name: "First"}))
	require.NoError(t, staging.Add(entity.Product{ID: 2, Name: "Second"}))

	assert.True(t, staging.ContainsID(1))
	assert.True(t, staging.ContainsName("Second"))
	assert.False(t, staging.ContainsID(3))
	assert.False(t, staging.ContainsName("Third"))
	assert.Len(t, staging.Items(), 2)
}

func TestStagingList_AddRejectsDuplicates(t *testing.T) {
	staging := NewStagingList()

	require.NoError(t, staging.Add(entity.Product{ID: 1, Name: "First"}))

	err := staging.Add(entity.Product{ID: 1, Name: "Other"})
	assert.ErrorIs(t, err, domainerrors.ErrProductIDTaken)

	err = staging.Add(entity.Product{ID: 2, Name: "First"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNameTaken)

	assert.Len(t, staging.Items(), 1)
}

func TestStagingList_Choose(t *testing.T) {
	staging := NewStagingList()

	assert.Equal(t, 0, staging.ChosenID())

	staging.Choose(7)
	assert.Equal(t, 7, staging.ChosenID())

	staging.Choose(3)
	assert.Equal(t, 3, staging.ChosenID())
}

func TestStagingList_ItemsReturnsCopy(t *testing.T) {
	staging := NewStagingList()
	require.NoError(t, staging.Add(entity.Product{ID: 1, Name: "First"}))

	items := staging.Items()
	items[0].Name = "Mutated"

	assert.Equal(t, "First", staging.Items()[0].Name)
}

func TestStagingList_ConcurrentAccess(t *testing.T) {
	staging := NewStagingList()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = staging.Add(entity.Product{ID: id, Name: "Product"})
			staging.Choose(id)
			_ = staging.ContainsID(id)
			_ = staging.Items()
		}(i + 1)
	}
	wg.Wait()

	// Only the first Add can win, every later one collides on the name.
	assert.Len(t, staging.Items(), 1)
	assert.NotEqual(t, 0, staging.ChosenID())
}
