package exchange

import (
	"testing"

	"dslit/model"
	"dslit/simulation"

	"github.com/stretchr/testify/require"
)

func TestPairLinks(t *testing.T) {
	a, b := NewPair()
	require.NoError(t, a.Send(model.HaloFrame{Step: 1, Rank: 0, Side: model.SideLead, Row: []float64{1, 2}}))

	f, err := b.Recv()
	require.NoError(t, err)
	require.Equal(t, 1, f.Step)
	require.Equal(t, []float64{1, 2}, f.Row)
}

func twoRankDomains(t *testing.T) (*simulation.Domain, *simulation.Domain) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.N = 16
	cfg.Workers = 1
	par, err := simulation.NewParameters(cfg)
	require.NoError(t, err)

	layout, err := simulation.NewLayout(16, 2)
	require.NoError(t, err)
	return simulation.NewDomain(par, layout.Partition(0), nil),
		simulation.NewDomain(par, layout.Partition(1), nil)
}

func fill(row []float64, v float64) {
	for j := range row {
		row[j] = v
	}
}

func TestExchangeHalosTwoRanks(t *testing.T) {
	d0, d1 := twoRankDomains(t)

	fill(d0.FirstInterior(), 10)
	fill(d0.LastInterior(), 17)
	fill(d1.FirstInterior(), 20)
	fill(d1.LastInterior(), 27)

	// 两对链路组成 0-1 双向环
	a01, b01 := NewPair()
	a10, b10 := NewPair()

	errs := make(chan error, 2)
	go func() { errs <- ExchangeHalos(0, d0, b10, a01) }()
	go func() { errs <- ExchangeHalos(0, d1, b01, a10) }()
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	// 每个分区的 halo 等于邻居相应的边界行
	require.Equal(t, 27.0, d0.LeadHalo()[3])
	require.Equal(t, 20.0, d0.TrailHalo()[3])
	require.Equal(t, 17.0, d1.LeadHalo()[3])
	require.Equal(t, 10.0, d1.TrailHalo()[3])
}

func TestExchangeHalosStepMismatch(t *testing.T) {
	d0, d1 := twoRankDomains(t)

	a01, b01 := NewPair()
	a10, b10 := NewPair()

	errs := make(chan error, 2)
	go func() { errs <- ExchangeHalos(0, d0, b10, a01) }()
	go func() { errs <- ExchangeHalos(1, d1, b01, a10) }()

	require.Error(t, <-errs)
	require.Error(t, <-errs)
}

func TestRecvRejectsWrongLength(t *testing.T) {
	d0, _ := twoRankDomains(t)

	a01, b01 := NewPair()
	a10, b10 := NewPair()

	// 伪造邻居：标签正确但行长不符
	short := []float64{1, 2, 3}
	require.NoError(t, a10.Send(model.HaloFrame{Step: 0, Rank: 1, Side: model.SideLead, Row: short}))
	require.NoError(t, b01.Send(model.HaloFrame{Step: 0, Rank: 1, Side: model.SideTrail, Row: short}))

	require.Error(t, ExchangeHalos(0, d0, b10, a01))
}
