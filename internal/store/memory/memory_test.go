package memory

import (
	"context"
	"testing"

	"github.com/abgdnv/gocatalog/internal/product"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_Save_AssignsSequentialIDs(t *testing.T) {
	// given
	ctx := context.Background()
	s := New[*product.Product]()

	// when
	laptop, err := s.Save(ctx, &product.Product{Name: "Laptop", Price: 1200.0})

	// then
	require.NoError(t, err)
	assert.Equal(t, int64(1), laptop.ID)
	assert.Equal(t, "Laptop", laptop.Name)
	assert.Equal(t, 1200.0, laptop.Price)

	// and a second save gets the next fresh ID
	mouse, err := s.Save(ctx, &product.Product{Name: "Mouse", Price: 25.0})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mouse.ID)
}

func Test_Store_Save_OverwritesExistingID(t *testing.T) {
	// given
	ctx := context.Background()
	s := New[*product.Product]()
	saved, err := s.Save(ctx, &product.Product{Name: "Laptop", Price: 1200.0})
	require.NoError(t, err)

	// when: saving an entity with an already assigned ID
	_, err = s.Save(ctx, &product.Product{ID: saved.ID, Name: "Laptop Pro", Price: 1500.0})

	// then: last write wins, no error, ID unchanged
	require.NoError(t, err)
	found, err := s.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", found.Name)
	assert.Equal(t, 1500.0, found.Price)
}

func Test_Store_Save_FreshIDNeverReusesExplicitID(t *testing.T) {
	// given: entities saved with caller-supplied IDs
	ctx := context.Background()
	s := New[*product.Product]()
	taken, err := s.Save(ctx, &product.Product{ID: 1, Name: "Taken", Price: 10.0})
	require.NoError(t, err)
	_, err = s.Save(ctx, &product.Product{ID: 5, Name: "Monitor", Price: 310.0})
	require.NoError(t, err)

	// when: a later save without an ID
	fresh, err := s.Save(ctx, &product.Product{Name: "Fresh", Price: 20.0})

	// then: the fresh identifier is previously unused, nothing is overwritten
	require.NoError(t, err)
	assert.Equal(t, int64(6), fresh.ID)

	kept, err := s.FindByID(ctx, taken.ID)
	require.NoError(t, err)
	assert.Equal(t, "Taken", kept.Name)
}

func Test_Store_FindByID(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name        string
		seed        []*product.Product
		id          int64
		expected    *product.Product
		expectError error
	}{
		{
			name:     "Success - entity found",
			seed:     []*product.Product{{ID: 1, Name: "Laptop", Price: 1200.0}},
			id:       1,
			expected: &product.Product{ID: 1, Name: "Laptop", Price: 1200.0},
		},
		{
			name:        "Error - never saved",
			seed:        nil,
			id:          42,
			expectError: store.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := NewSeeded(tc.seed...)
			// when
			found, err := s.FindByID(ctx, tc.id)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_Store_DeleteByID_IsIdempotent(t *testing.T) {
	// given
	ctx := context.Background()
	s := New[*product.Product]()
	saved, err := s.Save(ctx, &product.Product{Name: "Laptop", Price: 1200.0})
	require.NoError(t, err)

	// when: deleting twice, then deleting a never-saved ID
	require.NoError(t, s.DeleteByID(ctx, saved.ID))
	require.NoError(t, s.DeleteByID(ctx, saved.ID))
	require.NoError(t, s.DeleteByID(ctx, 999))

	// then: the entity stays absent
	_, err = s.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func Test_Store_FindAll(t *testing.T) {
	// given
	ctx := context.Background()
	s := New[*product.Product]()
	first, err := s.Save(ctx, &product.Product{Name: "Laptop", Price: 1200.0})
	require.NoError(t, err)
	second, err := s.Save(ctx, &product.Product{Name: "Mouse", Price: 25.0})
	require.NoError(t, err)

	// when
	all, err := s.FindAll(ctx)

	// then
	require.NoError(t, err)
	assert.ElementsMatch(t, []*product.Product{first, second}, all)

	// and after deleting the first, only the second remains
	require.NoError(t, s.DeleteByID(ctx, first.ID))
	remaining, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second, remaining[0])
}

func Test_Store_NewSeeded_CounterStartsAboveSeededIDs(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewSeeded(
		&product.Product{ID: 3, Name: "Keyboard", Price: 49.5},
		&product.Product{ID: 7, Name: "Monitor", Price: 310.0},
	)

	// when
	created, err := s.Save(ctx, &product.Product{Name: "Mouse", Price: 25.0})

	// then: the fresh ID does not collide with any seeded identifier
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	seeded, err := s.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", seeded.Name)
}

func Test_Store_NewSeeded_AssignsIDsToUnassignedSeeds(t *testing.T) {
	// given: one seed with an ID, one without
	ctx := context.Background()
	s := NewSeeded(
		&product.Product{ID: 4, Name: "Monitor", Price: 310.0},
		&product.Product{Name: "Mouse", Price: 25.0},
	)

	// when
	all, err := s.FindAll(ctx)

	// then: the ID-less seed got a fresh identifier above the seeded ones
	require.NoError(t, err)
	require.Len(t, all, 2)
	mouse, err := s.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", mouse.Name)

	// and nothing lives under the unassigned key
	_, err = s.FindByID(ctx, 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
