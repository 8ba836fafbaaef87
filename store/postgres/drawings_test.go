package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmap/inkmap/store"
)

func TestFeedOrder_UniqueTiebreak(t *testing.T) {
	sorts := []store.FeedSort{
		store.SortNewest,
		store.SortOldest,
		store.SortPopular,
		store.SortUnpopular,
	}

	// Every ordering must end on the unique id column, otherwise rows
	// with equal created_at can drift across page boundaries.
	for _, sort := range sorts {
		order := feedOrder(sort)
		assert.True(t,
			strings.HasSuffix(order, "drawings.id ASC") || strings.HasSuffix(order, "drawings.id DESC"),
			"order %q has no id tiebreak", order)
	}
}

func TestFeedOrder_Directions(t *testing.T) {
	assert.Equal(t, "drawings.created_at DESC, drawings.id DESC", feedOrder(store.SortNewest))
	assert.Equal(t, "drawings.created_at ASC, drawings.id ASC", feedOrder(store.SortOldest))
	assert.True(t, strings.HasPrefix(feedOrder(store.SortPopular), "like_count DESC"))
	assert.True(t, strings.HasPrefix(feedOrder(store.SortUnpopular), "like_count ASC"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
