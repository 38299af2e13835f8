package simulation

import "math"

// 蛙跳格式推进一个时间步：
//
//	laplacian = U[i-1][j] + U[i+1][j] + U[i][j-1] + U[i][j+1] - 4·U[i][j]
//	Unew[i][j] = 2·U[i][j] - Uprev[i][j] + fac·laplacian
//
// 只更新未被掩码标记的全局内部格点；掩码格点在 Unew 中保持原值，
// 由边界处理重新确立。输出缓冲 Unew 与两个输入缓冲各自独立，
// 推进后由 Advance 旋转缓冲区角色。
func (d *Domain) Step(fac float64, ex *Executor) {
	n := d.N
	start := d.Part.Start

	parallelRows(ex, 0, d.Part.LocalN(), func(lo, hi int) {
		for l := lo; l < hi; l++ {
			g := start + l
			if g == 0 || g == n-1 {
				continue
			}
			up := d.U.RawRowView(l)
			mid := d.U.RawRowView(l + 1)
			down := d.U.RawRowView(l + 2)
			prev := d.Uprev.RawRowView(l + 1)
			out := d.Unew.RawRowView(l + 1)
			for j := 1; j < n-1; j++ {
				if d.Mask[l*n+j] {
					continue
				}
				laplacian := up[j] + down[j] + mid[j-1] + mid[j+1] - 4*mid[j]
				out[j] = 2*mid[j] - prev[j] + fac*laplacian
			}
		}
	})
}

// 边界处理：先把掩码标记的边缘格点压回零，
// 再用波源信号覆盖全局第一行：
//
//	U[0][j] = sin(20π·t) · sin(π·x[j])²
//
// 波源覆盖发生在压零之后，与掩码无关。
// 分布式运行时每个分区只处理自己的行；只有拥有全局首行的分区注入波源。
func (d *Domain) ApplyBoundary(t float64, ex *Executor) {
	n := d.N
	start := d.Part.Start

	parallelRows(ex, 0, d.Part.LocalN(), func(lo, hi int) {
		for l := lo; l < hi; l++ {
			g := start + l
			row := d.row(l)
			if d.Mask[l*n] {
				row[0] = 0
			}
			if d.Mask[l*n+n-1] {
				row[n-1] = 0
			}
			if g == n-1 {
				for j := 0; j < n; j++ {
					row[j] = 0
				}
			}
			if g == 0 {
				amp := math.Sin(20 * math.Pi * t)
				for j := 0; j < n; j++ {
					s := math.Sin(math.Pi * d.Xlin[j])
					row[j] = amp * s * s
				}
			}
		}
	})
}
