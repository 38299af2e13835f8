package cluster

import (
	"testing"

	"dslit/simulation"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testParameters(t *testing.T, n, workers int) simulation.Parameters {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.N = n
	cfg.TEnd = 0.5
	cfg.Workers = workers
	par, err := simulation.NewParameters(cfg)
	require.NoError(t, err)
	return par
}

func serialField(t *testing.T, par simulation.Parameters) *mat.Dense {
	t.Helper()
	sim := simulation.NewSimulator(par)
	defer sim.Close()
	sim.Run()

	global := mat.NewDense(par.N, par.N, nil)
	for l := 0; l < par.N; l++ {
		global.SetRow(l, sim.Dom.Row(l))
	}
	return global
}

// 区域分解不改变数值结果：任意分区数与串行运行逐位一致
func TestRunLocalMatchesSerial(t *testing.T) {
	par := testParameters(t, 32, 2)
	want := serialField(t, par)

	for _, ranks := range []int{1, 2, 4} {
		got, reports, err := RunLocal(par, ranks)
		require.NoError(t, err)
		require.Len(t, reports, ranks)
		for _, r := range reports {
			require.Greater(t, r.Steps, 0)
		}
		require.True(t, mat.Equal(want, got), "ranks=%d 结果不一致", ranks)
	}
}

func TestRunLocalRejectsUnevenSplit(t *testing.T) {
	par := testParameters(t, 32, 1)
	_, _, err := RunLocal(par, 3)
	require.Error(t, err)
}

func TestGatherReassemblesRows(t *testing.T) {
	par := testParameters(t, 16, 1)
	layout, err := simulation.NewLayout(16, 4)
	require.NoError(t, err)

	doms := make([]*simulation.Domain, 4)
	for r := 0; r < 4; r++ {
		doms[r] = simulation.NewDomain(par, layout.Partition(r), nil)
		for l := 0; l < 4; l++ {
			row := doms[r].Row(l)
			for j := range row {
				row[j] = float64(layout.Partition(r).Start + l)
			}
		}
	}

	global := Gather(doms, 16)
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			require.Equal(t, float64(i), global.At(i, j))
		}
	}
}
