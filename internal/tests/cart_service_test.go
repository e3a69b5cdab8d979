package tests

import (
	"strconv"
	"testing"

	"quickbite/internal/service"
	"quickbite/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

func newCartService() *service.CartService {
	catalog := storage.DefaultCatalog()
	cart := storage.NewCartStore(&seqIDs{})
	return service.NewCartService(catalog, cart, 150)
}

func TestCartService_AddItemValidation(t *testing.T) {
	tests := []struct {
		name      string
		dishID    string
		quantity  int
		sizeID    string
		optionIDs []string
		wantErr   error
	}{
		{name: "valid configured dish", dishID: "1", quantity: 2, sizeID: "s2", optionIDs: []string{"o1"}},
		{name: "dish without sizes", dishID: "3", quantity: 1},
		{name: "zero quantity", dishID: "1", quantity: 0, wantErr: service.ErrInvalidQuantity},
		{name: "negative quantity", dishID: "1", quantity: -1, wantErr: service.ErrInvalidQuantity},
		{name: "unknown dish", dishID: "999", quantity: 1, wantErr: service.ErrDishNotFound},
		{name: "size from another dish", dishID: "3", quantity: 1, sizeID: "s2", wantErr: service.ErrSizeNotFound},
		{name: "unknown size", dishID: "1", quantity: 1, sizeID: "s9", wantErr: service.ErrSizeNotFound},
		{name: "unknown option", dishID: "1", quantity: 1, optionIDs: []string{"o9"}, wantErr: service.ErrOptionNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := newCartService()
			item, err := svc.AddItem(testCase.dishID, testCase.quantity, testCase.sizeID, testCase.optionIDs)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, svc.Items())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.dishID, item.Dish.ID)
			assert.Equal(t, testCase.quantity, item.Quantity)
		})
	}
}

func TestCartService_DefaultSizeIsFirst(t *testing.T) {
	svc := newCartService()

	// Dish 1 has sizes; adding without an explicit size picks the first one.
	item, err := svc.AddItem("1", 1, "", nil)
	require.NoError(t, err)
	require.NotNil(t, item.SelectedSize)
	assert.Equal(t, "s1", item.SelectedSize.ID)
	assert.Equal(t, float64(550), item.TotalPrice)
}

func TestCartService_DuplicateOptionsCountedOnce(t *testing.T) {
	svc := newCartService()

	item, err := svc.AddItem("1", 1, "s1", []string{"o1", "o1"})
	require.NoError(t, err)
	assert.Len(t, item.SelectedOptions, 1)
	assert.Equal(t, float64(550+100), item.TotalPrice)
}

func TestCartService_SummaryWorkedExample(t *testing.T) {
	svc := newCartService()

	// One pizza at 550, medium size +200, extra cheese +100, quantity 2.
	item, err := svc.AddItem("1", 2, "s2", []string{"o1"})
	require.NoError(t, err)
	assert.Equal(t, float64(1700), item.TotalPrice)

	summary, err := svc.ApplyPromo("FIRST25")
	require.NoError(t, err)
	assert.Equal(t, float64(1700), summary.Subtotal)
	assert.Equal(t, float64(425), summary.Discount)
	assert.Equal(t, float64(150), summary.DeliveryFee)
	assert.Equal(t, float64(1425), summary.Total)
	assert.Equal(t, "FIRST25", summary.PromoCode)
}

func TestCartService_PromoCodes(t *testing.T) {
	t.Run("known code by uppercased input", func(t *testing.T) {
		svc := newCartService()
		_, err := svc.AddItem("3", 1, "", nil) // 480

		require.NoError(t, err)
		summary, err := svc.ApplyPromo("save10")
		require.NoError(t, err)
		assert.Equal(t, float64(48), summary.Discount)
	})

	t.Run("unknown code leaves cart unchanged", func(t *testing.T) {
		svc := newCartService()
		_, err := svc.AddItem("3", 1, "", nil)
		require.NoError(t, err)

		_, err = svc.ApplyPromo("NOPE")
		assert.ErrorIs(t, err, service.ErrInvalidPromoCode)

		summary := svc.Summary()
		assert.Equal(t, float64(480), summary.Subtotal)
		assert.Equal(t, float64(0), summary.Discount)
		assert.Empty(t, summary.PromoCode)
	})

	t.Run("new code replaces the previous one", func(t *testing.T) {
		svc := newCartService()
		_, err := svc.AddItem("3", 1, "", nil)
		require.NoError(t, err)

		_, err = svc.ApplyPromo("SAVE10")
		require.NoError(t, err)
		summary, err := svc.ApplyPromo("FIRST25")
		require.NoError(t, err)
		assert.Equal(t, "FIRST25", summary.PromoCode)
		assert.Equal(t, float64(120), summary.Discount)
	})

	t.Run("remove promo", func(t *testing.T) {
		svc := newCartService()
		_, err := svc.AddItem("3", 1, "", nil)
		require.NoError(t, err)

		_, err = svc.ApplyPromo("SAVE10")
		require.NoError(t, err)
		summary := svc.RemovePromo()
		assert.Equal(t, float64(0), summary.Discount)
		assert.Empty(t, summary.PromoCode)
	})
}

func TestCartService_ClearResetsEverything(t *testing.T) {
	svc := newCartService()
	_, err := svc.AddItem("1", 2, "s2", []string{"o1"})
	require.NoError(t, err)
	_, err = svc.ApplyPromo("FIRST25")
	require.NoError(t, err)

	svc.Clear()

	assert.Empty(t, svc.Items())
	assert.Equal(t, 0, svc.ItemsCount())
	summary := svc.Summary()
	assert.Equal(t, float64(0), summary.Subtotal)
	assert.Equal(t, float64(0), summary.Discount)
	assert.Empty(t, summary.PromoCode)
}
