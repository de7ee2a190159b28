package engine

import "wp/gas"

// Inlet 进气道：截面 0 -> 2，等熵冲压恢复
type Inlet struct {
	ps gas.Props
}

func NewInlet(ps gas.Props) *Inlet {
	return &Inlet{ps: ps}
}

// RamRecovery 由环境静态状态和飞行马赫数求进气道出口总压、总温。
// 马赫数为零时直接返回静态值，避免退化的速度/焓计算。
func (in *Inlet) RamRecovery(x gas.Composition, pAmb, tAmb, mach float64) (pt, tt float64, err error) {
	if mach == 0 {
		return pAmb, tAmb, nil
	}
	amb, err := in.ps.AtTP(x, tAmb, pAmb)
	if err != nil {
		return 0, 0, err
	}
	// 总焓 = 静焓 + 动能，冲压恢复按等熵处理
	vFlight := mach * amb.SoundSpeed
	hTotal := amb.H + 0.5*vFlight*vFlight
	total, err := in.ps.AtSH(x, amb.S, hTotal)
	if err != nil {
		return 0, 0, err
	}
	return total.P, total.T, nil
}
