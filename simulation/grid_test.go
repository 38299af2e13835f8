package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testParameters(t *testing.T, n int) Parameters {
	t.Helper()
	cfg := DefaultConfig()
	cfg.N = n
	cfg.Workers = 1
	par, err := NewParameters(cfg)
	require.NoError(t, err)
	return par
}

func fullDomain(t *testing.T, n int) *Domain {
	t.Helper()
	par := testParameters(t, n)
	layout, err := NewLayout(n, 1)
	require.NoError(t, err)
	return NewDomain(par, layout.Partition(0), nil)
}

// 掩码几何的参考实现：逐格点按全局行列号判定
func expectMasked(n, i, j int) bool {
	masked := false
	if i == 0 || i == n-1 || j == 0 || j == n-1 {
		masked = true
	}
	if i >= n/4 && i < 9*n/32 && j <= n-2 {
		masked = true
	}
	inSlit := (j >= 5*n/16 && j < 3*n/8) || (j >= 5*n/8 && j < 11*n/16)
	if inSlit && i >= 1 && i <= n-2 {
		masked = false
	}
	return masked
}

func TestMaskGeometry(t *testing.T) {
	n := 32
	d := fullDomain(t, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, expectMasked(n, i, j), d.Masked(i, j),
				"掩码不一致: (%d, %d)", i, j)
		}
	}
}

func TestMaskBarrierHasTwoSlits(t *testing.T) {
	n := 32
	d := fullDomain(t, n)

	// n = 32 时挡板占据全局行 8，缝隙在列 10..11 和 20..21
	barrier := 8
	open := 0
	for j := 0; j < n; j++ {
		if !d.Masked(barrier, j) {
			open++
			require.True(t, (j >= 10 && j < 12) || (j >= 20 && j < 22),
				"缝隙位置不对: 列 %d", j)
		}
	}
	require.Equal(t, 4, open)
}

func TestMaskIndependentOfPartitioning(t *testing.T) {
	n := 32
	whole := fullDomain(t, n)
	par := testParameters(t, n)

	layout, err := NewLayout(n, 4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		part := layout.Partition(r)
		d := NewDomain(par, part, nil)
		for l := 0; l < part.LocalN(); l++ {
			for j := 0; j < n; j++ {
				require.Equal(t, whole.Masked(part.Start+l, j), d.Masked(l, j),
					"rank %d 本地行 %d 列 %d", r, l, j)
			}
		}
	}
}

func TestMaskParallelBuildMatchesSerial(t *testing.T) {
	n := 32
	serial := fullDomain(t, n)

	par := testParameters(t, n)
	layout, _ := NewLayout(n, 1)
	ex := NewExecutor(4)
	defer ex.Close()
	parallel := NewDomain(par, layout.Partition(0), ex)

	require.Equal(t, serial.Mask, parallel.Mask)
}

func TestCoordinates(t *testing.T) {
	n := 16
	par := testParameters(t, n)
	d := fullDomain(t, n)

	require.Len(t, d.Xlin, n)
	require.InDelta(t, 0.5*par.Dx, d.Xlin[0], 1e-15)
	for i := 1; i < n; i++ {
		require.InDelta(t, par.Dx, d.Xlin[i]-d.Xlin[i-1], 1e-15)
	}
}

func TestAdvanceRotatesBuffers(t *testing.T) {
	d := fullDomain(t, 16)
	u, uprev, unew := d.U, d.Uprev, d.Unew

	d.Advance()
	require.Same(t, u, d.Uprev)
	require.Same(t, unew, d.U)
	require.Same(t, uprev, d.Unew)
}
