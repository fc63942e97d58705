package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	post, ok := ByID(1)
	require.True(t, ok)
	assert.Contains(t, post.Title, "Акварель")

	_, ok = ByID(999)
	assert.False(t, ok)
}

func TestRecent(t *testing.T) {
	assert.Len(t, Recent(3), 3)
	assert.Len(t, Recent(100), len(All()))
}

func TestFilter(t *testing.T) {
	t.Run("no filters returns everything", func(t *testing.T) {
		assert.Len(t, Filter("", "", ""), len(All()))
	})

	t.Run("search matches title and content, case-insensitive", func(t *testing.T) {
		byTitle := Filter("АКВАРЕЛЬ", "", "")
		require.Len(t, byTitle, 1)
		assert.Equal(t, 1, byTitle[0].ID)

		byContent := Filter("дистресс", "", "")
		require.Len(t, byContent, 1)
		assert.Equal(t, 4, byContent[0].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		got := Filter("", "Вязание", "")
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("tag filter", func(t *testing.T) {
		got := Filter("", "", "мастер-класс")
		assert.Len(t, got, 2)
	})

	t.Run("filters combine", func(t *testing.T) {
		assert.Empty(t, Filter("акварель", "Лепка", ""))
	})
}
