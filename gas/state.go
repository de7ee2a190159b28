package gas

import "math"

// State 单个状态点的全部热力学量，创建后只读。
// 派生量（焓/熵/密度/声速）在构造时一次算全，之后不再更新，
// 避免把一个可变物性句柄在各部件之间传来传去。
type State struct {
	X Composition // 摩尔分数组成

	T float64 // 温度，K
	P float64 // 压力，Pa

	H          float64 // 比焓，J/kg（含生成焓）
	S          float64 // 比熵，J/(kg·K)
	Cp         float64 // 定压比热，J/(kg·K)
	Rho        float64 // 密度，kg/m^3
	SoundSpeed float64 // 声速，m/s
	Gamma      float64 // 比热比 cp/cv
	MW         float64 // 平均摩尔质量，kg/kmol
}

// 混合物摩尔量

func mixCpMolar(x Composition, T float64) float64 {
	var cp float64
	for k, v := range x {
		cp += v * speciesTable[k].CpMolar(T)
	}
	return cp
}

func mixHMolar(x Composition, T float64) float64 {
	var h float64
	for k, v := range x {
		h += v * speciesTable[k].HMolar(T)
	}
	return h
}

// 混合熵：各组分分压修正 -R*ln(xi)，总压修正 -R*ln(P/PRef)
func mixSMolar(x Composition, T, P float64) float64 {
	var s float64
	for k, v := range x {
		if v <= 0 {
			continue
		}
		s += v * (speciesTable[k].S0Molar(T) - RUniversal*math.Log(v))
	}
	return s - RUniversal*math.Log(P/PRef)
}

// newState 由 (组成, T, P) 构造完整状态
func newState(x Composition, T, P float64) (State, error) {
	if T <= 0 || P <= 0 {
		return State{}, &StateError{Op: "newState", Msg: "温度或压力非正", T: T, P: P}
	}
	if T < TSpeciesMin || T > TSpeciesMax {
		return State{}, &StateError{Op: "newState", Msg: "温度超出物性数据范围", T: T, P: P}
	}
	xc := x.Clone()
	if err := xc.Normalize(); err != nil {
		return State{}, err
	}
	mw, err := xc.MeanMW()
	if err != nil {
		return State{}, err
	}
	rs := RUniversal / mw // 比气体常数
	cp := mixCpMolar(xc, T) / mw
	gamma := cp / (cp - rs)
	return State{
		X:          xc,
		T:          T,
		P:          P,
		H:          mixHMolar(xc, T) / mw,
		S:          mixSMolar(xc, T, P) / mw,
		Cp:         cp,
		Rho:        P / (rs * T),
		SoundSpeed: math.Sqrt(gamma * rs * T),
		Gamma:      gamma,
		MW:         mw,
	}, nil
}
