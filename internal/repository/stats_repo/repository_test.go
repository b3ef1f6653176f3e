package stats_repo

import (
	"sync"
	"testing"

	"lucky_slots/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func spin(stake, payout int, free bool, reels model.Reels) model.SpinRecord {
	return model.SpinRecord{Stake: stake, Payout: payout, FreeSpin: free, Reels: reels}
}

func TestStateRepo_Record(t *testing.T) {
	r := NewStatsRepository(2)

	st := r.Stats()
	assert.Zero(t, st.TotalSpins)
	assert.True(t, st.RTP.IsZero())

	r.Record(spin(50, 0, false, model.Reels{model.Cherry, model.Lemon, model.Bell}))
	r.Record(spin(0, 500, true, model.Reels{model.Diamond, model.Diamond, model.Diamond}))
	r.Record(spin(100, 10, false, model.Reels{model.Star, model.Star, model.Bell}))

	st = r.Stats()
	assert.Equal(t, 3, st.TotalSpins)
	assert.Equal(t, 1, st.FreeSpins)
	assert.Equal(t, int64(150), st.TotalStaked)
	assert.Equal(t, int64(510), st.TotalPaid)
	assert.Equal(t, 500, st.BiggestPayout)
	assert.Equal(t, map[model.Symbol]int{model.Diamond: 1}, st.JackpotsByType)

	// 510 / 150 * 100
	assert.True(t, decimal.RequireFromString("340").Equal(st.RTP), st.RTP.String())

	// в окне два последних спина: ставка 100, выплата 510
	assert.Equal(t, 2, st.WindowSize)
	assert.True(t, decimal.RequireFromString("510").Equal(st.WindowRTP), st.WindowRTP.String())
}

func TestStateRepo_Rounding(t *testing.T) {
	r := NewStatsRepository(10)
	r.Record(spin(25, 10, false, model.Reels{model.Bell, model.Bell, model.Star}))
	r.Record(spin(50, 0, false, model.Reels{model.Bell, model.Seven, model.Star}))

	// 10 / 75 * 100 = 13.333...
	assert.Equal(t, "13.33", r.Stats().RTP.String())
}

func TestStateRepo_Concurrent(t *testing.T) {
	r := NewStatsRepository(100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record(spin(10, 10, false, model.Reels{model.Bell, model.Bell, model.Star}))
			_ = r.Stats()
		}()
	}
	wg.Wait()

	st := r.Stats()
	assert.Equal(t, 50, st.TotalSpins)
	assert.Equal(t, "100", st.RTP.String())
}
