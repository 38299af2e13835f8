package exchange

import "dslit/model"

// Link 是到一个邻居分区的双向行通道。
// 每个时间步，同一条链路上双方各发送一条边界行；
// 实现只需保证同方向消息按发送顺序到达。
type Link interface {
	Send(f model.HaloFrame) error
	Recv() (model.HaloFrame, error)
	Close() error
}

// 进程内实现：一对用 channel 背靠背相连的链路，
// 本地多分区模式和测试使用
type chanLink struct {
	out chan model.HaloFrame
	in  chan model.HaloFrame
}

// NewPair 返回互通的两端
func NewPair() (Link, Link) {
	a := make(chan model.HaloFrame, 2)
	b := make(chan model.HaloFrame, 2)
	return &chanLink{out: a, in: b}, &chanLink{out: b, in: a}
}

func (l *chanLink) Send(f model.HaloFrame) error {
	l.out <- f
	return nil
}

func (l *chanLink) Recv() (model.HaloFrame, error) {
	return <-l.in, nil
}

func (l *chanLink) Close() error {
	return nil
}
