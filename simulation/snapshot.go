package simulation

import "dslit/model"

// BuildFrame 按 stride 下采样当前场，构建推送快照。
// 只包含本分区拥有的行；stride 小于 1 时按 1 处理。
func (d *Domain) BuildFrame(step int, t float64, stride int) model.Frame {
	if stride < 1 {
		stride = 1
	}
	frame := model.Frame{
		Step:   step,
		T:      t,
		N:      d.N,
		Stride: stride,
	}
	for l := 0; l < d.Part.LocalN(); l += stride {
		src := d.row(l)
		row := make([]float64, 0, (d.N+stride-1)/stride)
		for j := 0; j < d.N; j += stride {
			row = append(row, src[j])
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame
}
