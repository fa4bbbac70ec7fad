package simulator

import (
	"context"
	"testing"

	"creditsmart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) Create(ctx context.Context, product *models.CreditProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCreditRepository) GetAll(ctx context.Context) ([]models.CreditProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CreditProduct), args.Error(1)
}

func (m *MockCreditRepository) GetByID(ctx context.Context, id uint) (*models.CreditProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditProduct), args.Error(1)
}

func (m *MockCreditRepository) GetByName(ctx context.Context, name string) (*models.CreditProduct, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditProduct), args.Error(1)
}

func (m *MockCreditRepository) GetByIdempotencyKey(ctx context.Context, key string) (*models.CreditProduct, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreditProduct), args.Error(1)
}

func sampleProducts() []models.CreditProduct {
	return []models.CreditProduct{
		{ID: 1, Name: "Crédito Libre Inversión", MinAmount: 1_000_000, MaxAmount: 5_000_000, InterestRate: 18},
		{ID: 2, Name: "Crédito Vivienda", MinAmount: 20_000_000, MaxAmount: 500_000_000, InterestRate: 11},
		{ID: 3, Name: "Crédito Vehículo", MinAmount: 5_000_000, MaxAmount: 80_000_000, InterestRate: 14},
	}
}

func ids(products []models.CreditProduct) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_NameSubstring(t *testing.T) {
	products := sampleProducts()

	// Case-folded substring; exactly one product carries "Libre".
	got := Apply(products, Filters{Search: "libre"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	// Empty search matches everything.
	got = Apply(products, Filters{})
	assert.Len(t, got, 3)
}

func TestApply_AmountContainment(t *testing.T) {
	products := []models.CreditProduct{
		{ID: 1, MinAmount: 1_000_000, MaxAmount: 5_000_000, InterestRate: 18},
	}

	// The filter is a desired loan amount: the product matches when
	// that amount falls within its range.
	got := Apply(products, Filters{Amount: 3_000_000, AmountActive: true})
	assert.Len(t, got, 1)

	got = Apply(products, Filters{Amount: 6_000_000, AmountActive: true})
	assert.Empty(t, got)

	got = Apply(products, Filters{Amount: 500_000, AmountActive: true})
	assert.Empty(t, got)

	// Bounds are inclusive on both ends.
	got = Apply(products, Filters{Amount: 1_000_000, AmountActive: true})
	assert.Len(t, got, 1)
	got = Apply(products, Filters{Amount: 5_000_000, AmountActive: true})
	assert.Len(t, got, 1)
}

func TestApply_InterestCeilingMonotonic(t *testing.T) {
	products := sampleProducts()

	// Raising the ceiling can only grow the result set.
	previous := map[uint]bool{}
	for _, ceiling := range []float64{0, 5, 11, 12, 14, 17, 18, 25} {
		got := Apply(products, Filters{MaxInterest: ceiling, InterestActive: true})
		current := map[uint]bool{}
		for _, p := range got {
			current[p.ID] = true
		}
		for id := range previous {
			assert.True(t, current[id], "product %d disappeared when ceiling rose to %v", id, ceiling)
		}
		previous = current
	}
}

func TestApply_ZeroRateProductStillFilterable(t *testing.T) {
	products := []models.CreditProduct{
		{ID: 1, Name: "Promocional", InterestRate: 0, MinAmount: 1, MaxAmount: 10},
		{ID: 2, Name: "Estándar", InterestRate: 12, MinAmount: 1, MaxAmount: 10},
	}

	// A ceiling of exactly 0 is a real filter, not "disabled": only the
	// zero-rate product matches.
	got := Apply(products, Filters{MaxInterest: 0, InterestActive: true})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	// With the flag off, the value is ignored entirely.
	got = Apply(products, Filters{MaxInterest: 0})
	assert.Len(t, got, 2)
}

func TestApply_SortByInterestStable(t *testing.T) {
	products := []models.CreditProduct{
		{ID: 1, InterestRate: 18},
		{ID: 2, InterestRate: 11},
		{ID: 3, InterestRate: 14},
		{ID: 4, InterestRate: 14},
	}

	got := Apply(products, Filters{SortByInterest: true})
	assert.Equal(t, []uint{2, 3, 4, 1}, ids(got))

	// Without the flag, catalog order is preserved.
	got = Apply(products, Filters{})
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(got))
}

func TestApply_CombinedFilters(t *testing.T) {
	got := Apply(sampleProducts(), Filters{
		Search:         "crédito",
		Amount:         30_000_000,
		AmountActive:   true,
		MaxInterest:    14,
		InterestActive: true,
	})
	// Amount 30M rules out product 1, rate ceiling 14 rules out nothing
	// further of the remainder; products 2 and 3 survive.
	assert.Equal(t, []uint{2, 3}, ids(got))
}

func TestBounds(t *testing.T) {
	b := Bounds(sampleProducts())
	assert.Equal(t, 1_000_000.0, b.MinAmount)
	assert.Equal(t, 500_000_000.0, b.MaxAmount)
	assert.Equal(t, 11.0, b.MinInterest)
	assert.Equal(t, 18.0, b.MaxInterest)
}

func TestBounds_EmptyCatalogFallbacks(t *testing.T) {
	b := Bounds(nil)
	assert.Equal(t, 1_000_000.0, b.MinAmount)
	assert.Equal(t, 500_000_000.0, b.MaxAmount)
	assert.Equal(t, 0.0, b.MinInterest)
	assert.Equal(t, 30.0, b.MaxInterest)
}

func TestSimulate(t *testing.T) {
	repo := new(MockCreditRepository)
	svc := NewService(repo)

	repo.On("GetAll", mock.Anything).Return(sampleProducts(), nil)

	result, err := svc.Simulate(context.Background(), Filters{Search: "Libre"})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, uint(1), result.Products[0].ID)
	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Showing)

	// Bounds and the full-set average come from the whole catalog, not
	// the filtered subset.
	assert.Equal(t, 500_000_000.0, result.Bounds.MaxAmount)
	assert.InDelta(t, (18.0+11+14)/3, result.Summary.AverageRate, 1e-9)
	assert.Equal(t, 18.0, result.Summary.FilteredAverageRate)

	repo.AssertExpectations(t)
}
