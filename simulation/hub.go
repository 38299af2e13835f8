package simulation

import (
	"dslit/model"

	log "github.com/sirupsen/logrus"
)

// CalcHub 负责计算循环和推送端之间的信号传递：
// 停止信号 + 周期性的场快照
type CalcHub struct {
	Stop   chan struct{}
	Frames chan model.Frame
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		Frames: make(chan model.Frame, 10),
	}
}

func (ch *CalcHub) StartSignal() {
	ch.Stop = make(chan struct{})
}

func (ch *CalcHub) StopSignal() {
	close(ch.Stop)
}

// PushFrame 不阻塞计算循环：推送跟不上时丢弃最旧的一帧
func (ch *CalcHub) PushFrame(f model.Frame) {
	for {
		select {
		case ch.Frames <- f:
			return
		default:
			select {
			case old := <-ch.Frames:
				log.WithField("step", old.Step).Debug("推送滞后，丢弃快照")
			default:
			}
		}
	}
}
