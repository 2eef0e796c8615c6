package entity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPurchases struct {
	rows []BoughtProduct
	err  error
}

func (s *stubPurchases) BoughtProductsByUser(_ context.Context, userID *uuid.UUID) ([]BoughtProduct, error) {
	if userID == nil {
		return nil, s.err
	}

	return s.rows, s.err
}

type stubTags struct {
	names []string
	err   error
}

func (s *stubTags) TagNamesByProduct(context.Context, int) ([]string, error) {
	return s.names, s.err
}

type stubImages struct {
	list []Image
	byIx *Image
}

func (s *stubImages) ImagesByProduct(context.Context, int) ([]Image, error) {
	return s.list, nil
}

func (s *stubImages) ImageByOrderIndex(context.Context, int, int) (*Image, error) {
	return s.byIx, nil
}

func TestProduct_IsBought(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &User{ID: userID}
	p := &Product{ID: 3}

	t.Run("absent user is never a buyer", func(t *testing.T) {
		purchases := &stubPurchases{rows: []BoughtProduct{{ID: 1, AppUserRefID: &userID, ProductRefID: 3}}}
		bought, err := p.IsBought(ctx, purchases, nil)
		require.NoError(t, err)
		assert.False(t, bought)
	})

	t.Run("row with matching product reference", func(t *testing.T) {
		purchases := &stubPurchases{rows: []BoughtProduct{{ID: 1, AppUserRefID: &userID, ProductRefID: 3}}}
		bought, err := p.IsBought(ctx, purchases, user)
		require.NoError(t, err)
		assert.True(t, bought)
	})

	t.Run("rows for other products only", func(t *testing.T) {
		purchases := &stubPurchases{rows: []BoughtProduct{{ID: 1, AppUserRefID: &userID, ProductRefID: 7}}}
		bought, err := p.IsBought(ctx, purchases, user)
		require.NoError(t, err)
		assert.False(t, bought)
	})
}

func TestProduct_IsBoughtString(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &User{ID: userID}
	p := &Product{ID: 3}

	s, err := p.IsBoughtString(ctx, &stubPurchases{rows: []BoughtProduct{{ProductRefID: 3, AppUserRefID: &userID}}}, user)
	require.NoError(t, err)
	assert.Equal(t, "Bought", s)

	s, err = p.IsBoughtString(ctx, &stubPurchases{}, user)
	require.NoError(t, err)
	assert.Equal(t, "+", s)
}

func TestProduct_AddToCartLabel_Priority(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := &User{ID: ownerID}
	buyer := &User{ID: uuid.New()}
	p := &Product{ID: 3, OwnerID: &ownerID}
	boughtRows := &stubPurchases{rows: []BoughtProduct{{ProductRefID: 3}}}

	// Ownership wins even when the product is also bought and chosen.
	label, err := p.AddToCartLabel(ctx, boughtRows, owner, 3)
	require.NoError(t, err)
	assert.Equal(t, "Yours", label)

	label, err = p.AddToCartLabel(ctx, boughtRows, buyer, 3)
	require.NoError(t, err)
	assert.Equal(t, "Bought", label)

	label, err = p.AddToCartLabel(ctx, &stubPurchases{}, buyer, 3)
	require.NoError(t, err)
	assert.Equal(t, "Selected", label)

	label, err = p.AddToCartLabel(ctx, &stubPurchases{}, buyer, 0)
	require.NoError(t, err)
	assert.Equal(t, "+", label)
}

func TestProduct_AddToCartButtonClass_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	poor := &User{ID: uuid.New(), Balance: decimal.RequireFromString("5")}
	rich := &User{ID: uuid.New(), Balance: decimal.RequireFromString("10")}
	p := &Product{ID: 1, Price: decimal.RequireFromString("10")}

	class, err := p.AddToCartButtonClass(ctx, &stubPurchases{}, poor, 0)
	require.NoError(t, err)
	assert.Equal(t, "btn btn-outline-danger", class)

	// Balance equal to the final price is still affordable: the check
	// is a strict less-than.
	class, err = p.AddToCartButtonClass(ctx, &stubPurchases{}, rich, 0)
	require.NoError(t, err)
	assert.Equal(t, "btn btn-outline-success", class)
}

func TestProduct_ContainsTags(t *testing.T) {
	ctx := context.Background()
	p := &Product{ID: 1}
	reader := &stubTags{names: []string{"a", "b", "c"}}

	tests := []struct {
		name          string
		find          []string
		fullyMatching bool
		want          bool
	}{
		{"full match subset", []string{"a", "b"}, true, true},
		{"full match missing tag", []string{"a", "z"}, true, false},
		{"any match intersection", []string{"z", "b"}, false, true},
		{"any match disjoint", []string{"x", "z"}, false, false},
		{"empty full match is vacuously true", nil, true, true},
		{"empty any match can never match", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ContainsTags(ctx, reader, tt.find, tt.fullyMatching)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProduct_ImageSrc(t *testing.T) {
	ctx := context.Background()
	const fallback = "https://cdn.example.com/placeholder.jpg"
	p := &Product{ID: 1}

	src, err := p.ImageSrc(ctx, &stubImages{list: []Image{{Link: "https://cdn.example.com/a.jpg"}}}, nil, fallback)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg", src)

	src, err = p.ImageSrc(ctx, &stubImages{}, nil, fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, src)

	index := 2
	src, err = p.ImageSrc(ctx, &stubImages{byIx: &Image{Link: "https://cdn.example.com/b.jpg"}}, &index, fallback)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/b.jpg", src)

	src, err = p.ImageSrc(ctx, &stubImages{byIx: &Image{}}, &index, fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, src, "image row with an empty link falls back")
}

func TestUser_CanAfford(t *testing.T) {
	u := &User{Balance: decimal.RequireFromString("10")}
	assert.True(t, u.CanAfford(decimal.RequireFromString("10")))
	assert.True(t, u.CanAfford(decimal.RequireFromString("9.99")))
	assert.False(t, u.CanAfford(decimal.RequireFromString("10.01")))
}
