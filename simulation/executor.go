package simulation

// 基于行区间的任务分配：固定数量的 worker 从分发通道取任务，
// 每个任务是输出缓冲中一段互不重叠的连续行区间。
// worker 只写自己区间内的行、只读本步不变的输入缓冲，
// 因此无锁也不会竞争；run 返回即是一次并行阶段结束的屏障。
// worker 数只影响耗时，不影响数值结果。

type task struct {
	first int
	last  int
	f     func(first, last int)
}

type Executor struct {
	workers  int
	dispatch chan task
	done     chan struct{}
}

func NewExecutor(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	e := &Executor{
		workers:  workers,
		dispatch: make(chan task, workers),
		done:     make(chan struct{}, workers),
	}
	for i := 0; i < workers; i++ {
		go func() {
			for t := range e.dispatch {
				t.f(t.first, t.last)
				e.done <- struct{}{}
			}
		}()
	}
	return e
}

func (e *Executor) Workers() int {
	return e.workers
}

// run 把 [first, last) 均匀切成至多 workers 个区间，全部完成后返回
func (e *Executor) run(first, last int, f func(first, last int)) {
	total := last - first
	if total <= 0 {
		return
	}

	chunk, remainder := total/e.workers, total%e.workers
	issued := 0
	lo := first
	for w := 0; w < e.workers && lo < last; w++ {
		hi := lo + chunk
		if w < remainder {
			hi++
		}
		if hi > lo {
			e.dispatch <- task{first: lo, last: hi, f: f}
			issued++
		}
		lo = hi
	}

	for i := 0; i < issued; i++ {
		<-e.done
	}
}

func (e *Executor) Close() {
	close(e.dispatch)
}

// parallelRows 是掩码构建、差分和边界处理共用的迭代入口；
// ex 为 nil 时退化为串行执行
func parallelRows(ex *Executor, first, last int, f func(first, last int)) {
	if ex == nil || ex.workers == 1 {
		f(first, last)
		return
	}
	ex.run(first, last, f)
}
