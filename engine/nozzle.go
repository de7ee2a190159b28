package engine

import (
	"errors"
	"math"

	"wp/gas"
)

// ErrInvalidOperatingPoint 物理上退化的工况（如喉道密度×速度为零）
var ErrInvalidOperatingPoint = errors.New("engine: 工况物理退化，喉道密度或速度为零")

// Nozzle 尾喷管：截面 5 -> 8/9
type Nozzle struct {
	ps gas.Props
}

func NewNozzle(ps gas.Props) *Nozzle {
	return &Nozzle{ps: ps}
}

// ThrustResult 推力分量，N
type ThrustResult struct {
	Fnet float64 // 净推力
	Fg   float64 // 总推力
	Fd   float64 // 冲压阻力
}

// NozzleResult 喷管计算结果
type NozzleResult struct {
	Thrust ThrustResult
	W      float64   // 正算模式：喉道通过的质量流量，kg/s
	Area   float64   // 反算模式：喉道面积，m^2
	Throat gas.State // 喉道状态（截面 8 报告用）
}

// throat 共用喉道例程：先判壅塞，再等熵膨胀到喉道压力。
// 壅塞时临界压力起作用，否则取环境压力。
func (n *Nozzle) throat(st gas.State, pAmb float64) (rho, v float64, throat gas.State, err error) {
	gamma := st.Gamma
	pCrit := st.P * math.Pow(2.0/(gamma+1.0), gamma/(gamma-1.0))

	pTh := pAmb
	if pCrit > pAmb {
		pTh = pCrit // 壅塞
	}

	th, err := n.ps.AtSP(st.X, st.S, pTh)
	if err != nil {
		return 0, 0, gas.State{}, err
	}
	drop := st.H - th.H
	if drop < 0 {
		// 接近零压降时截断舍入误差
		drop = 0
	}
	return th.Rho, math.Sqrt(2.0 * drop), th, nil
}

// thrust 共用推力例程：等熵膨胀到环境压力得理想出口速度，
// 总推力 = 流量 × 理想速度 × 推力系数，净推力再扣冲压阻力。
func (n *Nozzle) thrust(st5 gas.State, wTotal, wAir float64, amb gas.State, mach, cfgThrust float64) (ThrustResult, error) {
	ideal, err := n.ps.AtSP(st5.X, st5.S, amb.P)
	if err != nil {
		return ThrustResult{}, err
	}
	drop := st5.H - ideal.H
	if drop < 0 {
		drop = 0
	}
	vIdeal := math.Sqrt(2.0 * drop)
	fg := wTotal * vIdeal * cfgThrust
	fd := wAir * mach * amb.SoundSpeed
	return ThrustResult{Fnet: fg - fd, Fg: fg, Fd: fd}, nil
}

// Calculate 【脱设计点用】喉道面积固定，返回推力与按
// ρ·V·A·Cd 算出的质量流量（供流量连续残差用）。
func (n *Nozzle) Calculate(st5 gas.State, wTotal, wAir float64, amb gas.State, mach, cfgThrust, cd, area float64) (NozzleResult, error) {
	tr, err := n.thrust(st5, wTotal, wAir, amb, mach, cfgThrust)
	if err != nil {
		return NozzleResult{}, err
	}
	rho, v, th, err := n.throat(st5, amb.P)
	if err != nil {
		return NozzleResult{}, err
	}
	return NozzleResult{
		Thrust: tr,
		W:      rho * v * area * cd,
		Area:   area,
		Throat: th,
	}, nil
}

// CalculateDesignPoint 【设计点用】总流量已知，反算所需喉道面积
func (n *Nozzle) CalculateDesignPoint(st5 gas.State, wTotal, wAir float64, amb gas.State, mach, cfgThrust, cd float64) (NozzleResult, error) {
	tr, err := n.thrust(st5, wTotal, wAir, amb, mach, cfgThrust)
	if err != nil {
		return NozzleResult{}, err
	}
	rho, v, th, err := n.throat(st5, amb.P)
	if err != nil {
		return NozzleResult{}, err
	}
	if rho*v == 0 {
		return NozzleResult{}, ErrInvalidOperatingPoint
	}
	return NozzleResult{
		Thrust: tr,
		W:      wTotal,
		Area:   wTotal / (rho * v * cd),
		Throat: th,
	}, nil
}
