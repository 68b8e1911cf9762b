package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	return NewRepository(db)
}

func TestOpenPositionBySymbol(t *testing.T) {
	repo := testRepo(t)

	p, err := repo.OpenPositionBySymbol("BTC")
	require.NoError(t, err)
	assert.Nil(t, p, "missing position is not an error")

	require.NoError(t, repo.SavePosition(&Position{
		Symbol: "BTC", EntryPrice: 100, Quantity: 1, InvestedAmount: 100,
		Status: StatusOpen, BoughtAt: time.Now(),
	}))

	p, err = repo.OpenPositionBySymbol("btc")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "BTC", p.Symbol)
}

func TestCountAndCloseFlow(t *testing.T) {
	repo := testRepo(t)

	pos := &Position{
		Symbol: "ETH", EntryPrice: 100, Quantity: 1, InvestedAmount: 100,
		Status: StatusOpen, BoughtAt: time.Now(),
	}
	require.NoError(t, repo.SavePosition(pos))

	count, err := repo.CountOpenPositions()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	now := time.Now()
	pos.Status = StatusClosed
	pos.ExitPrice = 106
	pos.CloseReason = CloseTakeProfit
	pos.ClosedAt = &now
	pos.RealizedPnL = 6
	require.NoError(t, repo.UpdatePosition(pos))

	count, err = repo.CountOpenPositions()
	require.NoError(t, err)
	assert.Zero(t, count)

	closed, err := repo.ClosedPositions(10)
	require.NoError(t, err)
	require.Len(t, closed, 1)

	total, err := repo.TotalRealizedPnL()
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)

	today, err := repo.TodayRealizedPnL()
	require.NoError(t, err)
	assert.Equal(t, 6.0, today)
}

func TestTotalPnLEmptyIsZero(t *testing.T) {
	repo := testRepo(t)

	total, err := repo.TotalRealizedPnL()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRecentSignalSymbolsAreDistinct(t *testing.T) {
	repo := testRepo(t)

	for _, sym := range []string{"BTC", "BTC", "ETH"} {
		require.NoError(t, repo.SaveSignal(&Signal{
			Market: "CRYPTO", Symbol: sym, Name: sym, Price: 1,
		}))
	}

	symbols, err := repo.RecentSignalSymbols(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC", "ETH"}, symbols)
}
