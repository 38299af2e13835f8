package simulation

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Simulator 是串行/共享内存模式的引擎：单分区覆盖全部 N 行，
// 每个时间步依次做差分推进、缓冲区旋转、边界处理，然后推进模拟时间。
// 分布式模式的逐 rank 循环在 cluster 包中。
type Simulator struct {
	Par Parameters
	Dom *Domain

	ex      *Executor
	calcHub *CalcHub

	step int
	t    float64

	// 每隔多少步推送一帧快照，0 表示不推送
	PushEvery  int
	PushStride int
}

func NewSimulator(par Parameters) *Simulator {
	ex := NewExecutor(par.Workers)
	layout, _ := NewLayout(par.N, 1)
	return &Simulator{
		Par:        par,
		Dom:        NewDomain(par, layout.Partition(0), ex),
		ex:         ex,
		calcHub:    NewCalcHub(),
		PushStride: 1,
	}
}

func (s *Simulator) GetCalcHub() *CalcHub {
	return s.calcHub
}

func (s *Simulator) Executor() *Executor {
	return s.ex
}

func (s *Simulator) Step() int {
	return s.step
}

func (s *Simulator) T() float64 {
	return s.t
}

// RunStep 推进一个时间步
func (s *Simulator) RunStep() {
	s.Dom.Step(s.Par.Fac, s.ex)
	s.Dom.Advance()
	s.Dom.ApplyBoundary(s.t, s.ex)
	s.t += s.Par.Dt
	s.step++
}

// Run 一直推进到 TEnd 或收到停止信号，返回计算耗时
func (s *Simulator) Run() time.Duration {
	s.calcHub.StartSignal()
	start := time.Now()
LOOP:
	for s.t < s.Par.TEnd {
		select {
		case <-s.calcHub.Stop:
			break LOOP
		default:
			s.RunStep()
			log.WithFields(log.Fields{"step": s.step, "t": s.t}).Debug("时间步完成")
			if s.PushEvery > 0 && s.step%s.PushEvery == 0 {
				s.calcHub.PushFrame(s.Dom.BuildFrame(s.step, s.t, s.PushStride))
			}
		}
	}
	elapsed := time.Since(start)
	log.WithFields(log.Fields{
		"steps":   s.step,
		"workers": s.Par.Workers,
		"elapsed": elapsed,
	}).Info("模拟结束")
	return elapsed
}

func (s *Simulator) Close() {
	s.ex.Close()
}
