package simulation

import (
	"gonum.org/v1/gonum/mat"
)

// Domain 持有一个分区的三份场缓冲、障碍掩码和坐标数组。
//
// 缓冲区行数为 LocalN+2：第 0 行和第 LocalN+1 行是 halo 行，
// 存放相邻分区的边界行。单分区运行时 halo 行保持为零，
// 差分只作用于全局内部行，永远不会读到它们。
// 本地行 l 对应全局行 Part.Start+l，对应缓冲区第 l+1 行。
type Domain struct {
	Part Partition
	N    int

	U     *mat.Dense
	Uprev *mat.Dense
	Unew  *mat.Dense

	// 掩码按本地行存储，但几何始终以全局行号定义：
	// 四条全局边、双缝挡板，对任何分区划分都一致
	Mask []bool

	Xlin []float64
}

// 初始化网格：坐标数组、障碍掩码和三份全零场缓冲。
// ex 为 nil 时掩码串行构建，否则挡板/缝隙两个阶段按行并行。
func NewDomain(par Parameters, part Partition, ex *Executor) *Domain {
	n := par.N
	localN := part.LocalN()

	d := &Domain{
		Part:  part,
		N:     n,
		U:     mat.NewDense(localN+2, n, nil),
		Uprev: mat.NewDense(localN+2, n, nil),
		Unew:  mat.NewDense(localN+2, n, nil),
		Mask:  make([]bool, localN*n),
		Xlin:  coordinates(n, par.Dx),
	}
	d.buildMask(ex)
	return d
}

// x[i] = 0.5·dx + i·dx
func coordinates(n int, dx float64) []float64 {
	xlin := make([]float64, n)
	for i := 0; i < n; i++ {
		xlin[i] = 0.5*dx + float64(i)*dx
	}
	return xlin
}

// 构建障碍掩码：
// 1. 四条最外层的全局边
// 2. 横向挡板：全局行 N/4 .. 9N/32，列 0 .. N-2
// 3. 在挡板上开两条竖缝：列 5N/16..3N/8 与 5N/8..11N/16，作用于所有全局内部行
func (d *Domain) buildMask(ex *Executor) {
	n := d.N
	start := d.Part.Start

	for l := 0; l < d.Part.LocalN(); l++ {
		g := start + l
		if g == 0 || g == n-1 {
			for j := 0; j < n; j++ {
				d.Mask[l*n+j] = true
			}
			continue
		}
		d.Mask[l*n] = true
		d.Mask[l*n+n-1] = true
	}

	parallelRows(ex, 0, d.Part.LocalN(), func(lo, hi int) {
		for l := lo; l < hi; l++ {
			g := start + l
			if g >= n/4 && g < 9*n/32 {
				for j := 0; j < n-1; j++ {
					d.Mask[l*n+j] = true
				}
			}
		}
	})

	parallelRows(ex, 0, d.Part.LocalN(), func(lo, hi int) {
		for l := lo; l < hi; l++ {
			g := start + l
			if g < 1 || g > n-2 {
				continue
			}
			for j := 5 * n / 16; j < 3*n/8; j++ {
				d.Mask[l*n+j] = false
			}
			for j := 5 * n / 8; j < 11*n/16; j++ {
				d.Mask[l*n+j] = false
			}
		}
	})
}

// 本地行 l 在 U 中对应的存储行
func (d *Domain) row(l int) []float64 {
	return d.U.RawRowView(l + 1)
}

// 旋转缓冲区：淘汰最旧的一份，prev ← curr，curr ← new。
// 指针交换，不拷贝数据；被淘汰的缓冲成为下一步的输出缓冲。
func (d *Domain) Advance() {
	d.Uprev, d.U, d.Unew = d.U, d.Unew, d.Uprev
}

// Masked 查询本地行 l、列 j 的掩码
func (d *Domain) Masked(l, j int) bool {
	return d.Mask[l*d.N+j]
}

// LeadHalo / TrailHalo 返回两条 halo 行的存储
func (d *Domain) LeadHalo() []float64 {
	return d.U.RawRowView(0)
}

func (d *Domain) TrailHalo() []float64 {
	return d.U.RawRowView(d.Part.LocalN() + 1)
}

// FirstInterior / LastInterior 返回发送给邻居的两条边界行
func (d *Domain) FirstInterior() []float64 {
	return d.U.RawRowView(1)
}

func (d *Domain) LastInterior() []float64 {
	return d.U.RawRowView(d.Part.LocalN())
}

// Row 返回本地行 l 的当前值（测试与快照使用）
func (d *Domain) Row(l int) []float64 {
	return d.row(l)
}
