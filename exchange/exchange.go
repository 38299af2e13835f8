package exchange

import (
	"fmt"
	"sync"

	"dslit/model"
	"dslit/simulation"
)

// ExchangeHalos 在差分读取 halo 行之前完成与两个环形邻居的边界行交换：
// 把第一条内部行发给上一个邻居、最后一条内部行发给下一个邻居，
// 同时把上一个邻居的最后一行收进前导 halo、下一个邻居的第一行收进末尾 halo。
// 四次传输并发进行，全部完成后才返回；任何一次失败、步号不一致或行长不符
// 都是致命错误——带着陈旧的 halo 继续计算是正确性问题，不是性能问题。
func ExchangeHalos(step int, d *simulation.Domain, prev, next Link) error {
	rank := d.Part.Rank

	sendFirst := append([]float64(nil), d.FirstInterior()...)
	sendLast := append([]float64(nil), d.LastInterior()...)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	wg.Add(4)

	go func() {
		defer wg.Done()
		errs <- prev.Send(model.HaloFrame{Step: step, Rank: rank, Side: model.SideTrail, Row: sendFirst})
	}()
	go func() {
		defer wg.Done()
		errs <- next.Send(model.HaloFrame{Step: step, Rank: rank, Side: model.SideLead, Row: sendLast})
	}()
	go func() {
		defer wg.Done()
		errs <- recvInto(prev, step, d.Part.Prev, model.SideLead, d.N, d.LeadHalo())
	}()
	go func() {
		defer wg.Done()
		errs <- recvInto(next, step, d.Part.Next, model.SideTrail, d.N, d.TrailHalo())
	}()

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return fmt.Errorf("rank %d halo 交换失败: %w", rank, err)
		}
	}
	return nil
}

func recvInto(l Link, step, fromRank, side, n int, dst []float64) error {
	f, err := l.Recv()
	if err != nil {
		return err
	}
	if f.Step != step {
		return fmt.Errorf("步号不一致: 期望 %d, 收到 %d (rank %d)", step, f.Step, f.Rank)
	}
	if f.Rank != fromRank || f.Side != side {
		return fmt.Errorf("收到非预期的边界行: rank %d side %d", f.Rank, f.Side)
	}
	if len(f.Row) != n {
		return fmt.Errorf("行长不符: 期望 %d, 收到 %d", n, len(f.Row))
	}
	copy(dst, f.Row)
	return nil
}
