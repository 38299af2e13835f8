package simulation

import "fmt"

// 按连续行块对全局 N 行做静态划分，每个 rank 一块。
// 邻居拓扑为环：rank 0 的上一个邻居是 P-1，rank P-1 的下一个邻居是 0。

type Layout struct {
	N      int
	Ranks  int
	LocalN int
}

// N 必须能被 rank 数整除，余数行不允许被静默丢弃
func NewLayout(n, ranks int) (Layout, error) {
	if ranks < 1 {
		return Layout{}, fmt.Errorf("rank 数必须为正: %d", ranks)
	}
	if n%ranks != 0 {
		return Layout{}, fmt.Errorf("网格行数 %d 不能被 rank 数 %d 整除", n, ranks)
	}
	return Layout{N: n, Ranks: ranks, LocalN: n / ranks}, nil
}

// 某个分区的行范围 [Start, End) 以及它的两个环形邻居
type Partition struct {
	Rank  int
	Ranks int
	Start int
	End   int
	Prev  int
	Next  int
}

func (l Layout) Partition(rank int) Partition {
	return Partition{
		Rank:  rank,
		Ranks: l.Ranks,
		Start: rank * l.LocalN,
		End:   (rank + 1) * l.LocalN,
		Prev:  (rank + l.Ranks - 1) % l.Ranks,
		Next:  (rank + 1) % l.Ranks,
	}
}

func (p Partition) LocalN() int {
	return p.End - p.Start
}

// 是否拥有全局第一行（顶边波源所在行）
func (p Partition) OwnsTop() bool {
	return p.Start == 0
}

func (p Partition) OwnsBottom(n int) bool {
	return p.End == n
}
