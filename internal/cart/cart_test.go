package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craft-store/internal/catalog"
	"craft-store/internal/storage"
)

var (
	productA = catalog.Product{ID: 1, Name: "Краски", Price: 1000, Category: "drawing"}
	productB = catalog.Product{ID: 2, Name: "Пряжа", Price: 500, Category: "knitting"}
)

func testCatalog() *catalog.Store {
	return catalog.NewStoreFromProducts([]catalog.Product{productA, productB}, nil)
}

func newTestEngine(t *testing.T) (*Engine, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return NewEngine(context.Background(), kv, "cart:test", testCatalog()), kv
}

func TestAddMergesLines(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Add(ctx, productA, 2)
	require.NoError(t, err)
	state, err := e.Add(ctx, productA, 3)
	require.NoError(t, err)

	require.Len(t, state.Lines, 1)
	assert.Equal(t, Line{ProductID: 1, Quantity: 5}, state.Lines[0])
	assert.Equal(t, 5, state.ItemCount)
}

func TestAddClampsQuantity(t *testing.T) {
	e, _ := newTestEngine(t)

	state, err := e.Add(context.Background(), productA, -3)
	require.NoError(t, err)
	require.Len(t, state.Lines, 1)
	assert.Equal(t, 1, state.Lines[0].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.Add(ctx, productB, 1)
	state, _ := e.Add(ctx, productA, 1)

	require.Len(t, state.Lines, 2)
	assert.Equal(t, 2, state.Lines[0].ProductID)
	assert.Equal(t, 1, state.Lines[1].ProductID)
}

func TestRemove(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.Add(ctx, productA, 1)

	t.Run("removes the line", func(t *testing.T) {
		state, err := e.Remove(ctx, productA.ID)
		require.NoError(t, err)
		assert.Empty(t, state.Lines)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		state, err := e.Remove(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, state.Lines)
	})
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets absolute quantity", func(t *testing.T) {
		e, _ := newTestEngine(t)
		e.Add(ctx, productA, 5)
		state, err := e.SetQuantity(ctx, productA.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, state.Lines[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		e, _ := newTestEngine(t)
		e.Add(ctx, productA, 5)
		state, err := e.SetQuantity(ctx, productA.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, state.Lines)
	})

	t.Run("negative removes the line too", func(t *testing.T) {
		e, _ := newTestEngine(t)
		e.Add(ctx, productA, 5)
		state, err := e.SetQuantity(ctx, productA.ID, -1)
		require.NoError(t, err)
		assert.Empty(t, state.Lines)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		e, _ := newTestEngine(t)
		e.Add(ctx, productA, 5)
		state, err := e.SetQuantity(ctx, 999, 3)
		require.NoError(t, err)
		require.Len(t, state.Lines, 1)
		assert.Equal(t, 5, state.Lines[0].Quantity)
	})
}

func TestAggregates(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	// the end-to-end scenario: A (1000) x2 plus B (500) x1
	e.Add(ctx, productA, 2)
	e.Add(ctx, productB, 1)
	assert.Equal(t, 3, e.ItemCount())
	assert.Equal(t, 2500.0, e.TotalPrice())

	e.SetQuantity(ctx, productA.ID, 1)
	assert.Equal(t, 1500.0, e.TotalPrice())

	e.Clear(ctx)
	assert.Equal(t, 0, e.ItemCount())
	assert.Equal(t, 0.0, e.TotalPrice())
}

func TestTotalPriceTracksCatalog(t *testing.T) {
	kv := storage.NewMemory()
	cs := testCatalog()
	e := NewEngine(context.Background(), kv, "cart:test", cs)
	ctx := context.Background()

	e.Add(ctx, productA, 2)
	require.Equal(t, 2000.0, e.TotalPrice())

	// a catalog price change is reflected retroactively
	repriced := productA
	repriced.Price = 1200
	cs.Replace([]catalog.Product{repriced, productB})
	assert.Equal(t, 2400.0, e.TotalPrice())

	// a product dropped from the catalog contributes nothing
	cs.Replace([]catalog.Product{productB})
	assert.Equal(t, 0.0, e.TotalPrice())
	assert.Equal(t, 2, e.ItemCount())
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	cs := testCatalog()
	ctx := context.Background()

	e := NewEngine(ctx, kv, "cart:client", cs)
	e.Add(ctx, productA, 2)
	e.Add(ctx, productB, 1)
	before := e.State()

	// simulate a reload
	reloaded := NewEngine(ctx, kv, "cart:client", cs)
	assert.Equal(t, before, reloaded.State())
}

func TestCorruptStoredState(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "cart:client", []byte("{not json")))

	e := NewEngine(ctx, kv, "cart:client", testCatalog())
	assert.Empty(t, e.State().Lines)
	assert.Equal(t, 0, e.ItemCount())
}

func TestLoadDropsNonPositiveQuantities(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	kv.Set(ctx, "cart:client", []byte(`[{"productId":1,"quantity":2},{"productId":2,"quantity":0}]`))

	e := NewEngine(ctx, kv, "cart:client", testCatalog())
	state := e.State()
	require.Len(t, state.Lines, 1)
	assert.Equal(t, 1, state.Lines[0].ProductID)
}

func TestPersistedForm(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	e := NewEngine(ctx, kv, "cart:client", testCatalog())
	e.Add(ctx, productA, 2)

	raw, err := kv.Get(ctx, "cart:client")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":1,"quantity":2}]`, string(raw))

	e.Clear(ctx)
	raw, err = kv.Get(ctx, "cart:client")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestManagerSharesEngineWithinClient(t *testing.T) {
	kv := storage.NewMemory()
	cs := testCatalog()
	m := NewManager(kv, cs)
	ctx := context.Background()

	// two overlapping requests for the same client each Load the cart;
	// both writes must survive
	e1 := m.Load(ctx, "alice")
	e2 := m.Load(ctx, "alice")
	require.Same(t, e1, e2)

	_, err := e1.Add(ctx, productA, 1)
	require.NoError(t, err)
	_, err = e2.Add(ctx, productB, 1)
	require.NoError(t, err)

	state := m.Load(ctx, "alice").State()
	require.Len(t, state.Lines, 2)
	assert.Equal(t, 2, state.ItemCount)

	// the persisted form holds both lines too
	reloaded := NewEngine(ctx, kv, "cart:alice", cs)
	assert.Equal(t, state, reloaded.State())
}

func TestConcurrentSameClientWriters(t *testing.T) {
	kv := storage.NewMemory()
	cs := testCatalog()
	m := NewManager(kv, cs)
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			m.Load(ctx, "alice").Add(ctx, productA, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, m.Load(ctx, "alice").ItemCount())

	reloaded := NewEngine(ctx, kv, "cart:alice", cs)
	assert.Equal(t, writers, reloaded.ItemCount())
}

func TestManagerLoadsPerClient(t *testing.T) {
	kv := storage.NewMemory()
	m := NewManager(kv, testCatalog())
	ctx := context.Background()

	m.Load(ctx, "alice").Add(ctx, productA, 1)
	m.Load(ctx, "bob").Add(ctx, productB, 2)

	assert.Equal(t, 1, m.Load(ctx, "alice").ItemCount())
	assert.Equal(t, 2, m.Load(ctx, "bob").ItemCount())
}
