package simulation

import (
	"fmt"
	"math"
)

// 由配置推导出的积分参数，积分过程中只读
//
// dt 取 (√2/2)·dx/c，对应 fac = (c·dt/dx)² = 0.5；
// fac > 1 时五点差分格式不满足 CFL 稳定性条件，数值解发散。
// 稳定性是前置条件：NewParameters 在构造时校验一次，步进器本身不做检查。
type Parameters struct {
	N       int
	BoxSize float64
	C       float64
	TEnd    float64

	Dx  float64
	Dt  float64
	Fac float64

	Steps int

	Workers int
}

func NewParameters(cfg Config) (Parameters, error) {
	if cfg.N < 8 {
		return Parameters{}, fmt.Errorf("网格分辨率过小: N = %d", cfg.N)
	}
	if cfg.BoxSize <= 0 || cfg.C <= 0 || cfg.TEnd <= 0 {
		return Parameters{}, fmt.Errorf("非法参数: BoxSize = %v, C = %v, TEnd = %v", cfg.BoxSize, cfg.C, cfg.TEnd)
	}
	if cfg.Workers < 1 {
		return Parameters{}, fmt.Errorf("worker 数必须为正: %d", cfg.Workers)
	}

	dx := cfg.BoxSize / float64(cfg.N)
	dt := (math.Sqrt2 / 2) * dx / cfg.C
	fac := dt * dt * cfg.C * cfg.C / (dx * dx)

	p := Parameters{
		N:       cfg.N,
		BoxSize: cfg.BoxSize,
		C:       cfg.C,
		TEnd:    cfg.TEnd,
		Dx:      dx,
		Dt:      dt,
		Fac:     fac,
		Steps:   int(math.Ceil(cfg.TEnd / dt)),
		Workers: cfg.Workers,
	}
	if p.Fac > 1 {
		return Parameters{}, fmt.Errorf("稳定性因子超出 CFL 上界: fac = %v", p.Fac)
	}
	return p, nil
}
