package gas

import (
	"fmt"
	"math"
)

// Props 物性查询服务。每次调用都是无状态的纯函数：
// 输入组成与两个状态量，返回一个新的 State 值，
// 部件之间绝不共享可变句柄。
type Props interface {
	// AtTP 由温度、压力定状态
	AtTP(x Composition, T, P float64) (State, error)
	// AtHP 由比焓(J/kg)、压力定状态
	AtHP(x Composition, h, P float64) (State, error)
	// AtSP 由比熵(J/kg·K)、压力定状态
	AtSP(x Composition, s, P float64) (State, error)
	// AtSH 由比熵、比焓定状态（等熵过程恢复压力用）
	AtSH(x Composition, s, h float64) (State, error)
	// EquilibrateHP 定焓定压平衡燃烧。
	// 注意：hMolar 是摩尔焓，J/kmol —— 调用方必须先把质量基准
	// 的掺混焓乘以未燃混合物摩尔质量（见燃烧室实现）。
	EquilibrateHP(x Composition, hMolar, P float64) (State, error)
}

// IdealGas 默认物性实现：理想气体混合物 + 完全燃烧平衡。
// 不含解离，贫油范围内足够；富油（氧不足）返回 StateError。
type IdealGas struct{}

func NewIdealGas() *IdealGas { return &IdealGas{} }

const (
	newtonMaxIter = 100
	tempTolRel    = 1e-10
)

func (g *IdealGas) AtTP(x Composition, T, P float64) (State, error) {
	return newState(x, T, P)
}

// solveTFromH 理想气体焓只依赖温度，牛顿迭代求 T
func solveTFromH(x Composition, hMolarTarget float64) (float64, error) {
	T := 800.0
	for i := 0; i < newtonMaxIter; i++ {
		f := mixHMolar(x, T) - hMolarTarget
		cp := mixCpMolar(x, T)
		dT := f / cp
		T -= dT
		if T < TSpeciesMin {
			T = TSpeciesMin
		}
		if T > TSpeciesMax {
			T = TSpeciesMax
		}
		if math.Abs(dT) < tempTolRel*T+1e-9 {
			return T, nil
		}
	}
	return 0, &StateError{Op: "solveTFromH", Msg: "焓-温度迭代不收敛"}
}

func (g *IdealGas) AtHP(x Composition, h, P float64) (State, error) {
	xc := x.Clone()
	if err := xc.Normalize(); err != nil {
		return State{}, err
	}
	mw, err := xc.MeanMW()
	if err != nil {
		return State{}, err
	}
	T, err := solveTFromH(xc, h*mw)
	if err != nil {
		return State{}, err
	}
	return newState(xc, T, P)
}

func (g *IdealGas) AtSP(x Composition, s, P float64) (State, error) {
	if P <= 0 {
		return State{}, &StateError{Op: "AtSP", Msg: "压力非正", P: P}
	}
	xc := x.Clone()
	if err := xc.Normalize(); err != nil {
		return State{}, err
	}
	mw, err := xc.MeanMW()
	if err != nil {
		return State{}, err
	}
	sMolarTarget := s * mw
	// ds/dT = cp/T
	T := 800.0
	for i := 0; i < newtonMaxIter; i++ {
		f := mixSMolar(xc, T, P) - sMolarTarget
		dT := f * T / mixCpMolar(xc, T)
		T -= dT
		if T < TSpeciesMin {
			T = TSpeciesMin
		}
		if T > TSpeciesMax {
			T = TSpeciesMax
		}
		if math.Abs(dT) < tempTolRel*T+1e-9 {
			return newState(xc, T, P)
		}
	}
	return State{}, &StateError{Op: "AtSP", Msg: "熵-温度迭代不收敛", P: P}
}

// AtSH 理想气体下有半闭式解：先由 h 定 T，再由 s 反解 P
func (g *IdealGas) AtSH(x Composition, s, h float64) (State, error) {
	xc := x.Clone()
	if err := xc.Normalize(); err != nil {
		return State{}, err
	}
	mw, err := xc.MeanMW()
	if err != nil {
		return State{}, err
	}
	T, err := solveTFromH(xc, h*mw)
	if err != nil {
		return State{}, err
	}
	// s_molar = sum(xi*(s0-R*ln xi)) - R*ln(P/PRef)
	var s0 float64
	for k, v := range xc {
		if v <= 0 {
			continue
		}
		s0 += v * (speciesTable[k].S0Molar(T) - RUniversal*math.Log(v))
	}
	lnP := (s0 - s*mw) / RUniversal
	if lnP > 50 || lnP < -50 {
		return State{}, &StateError{Op: "AtSH", Msg: "反解压力溢出", T: T}
	}
	return newState(xc, T, PRef*math.Exp(lnP))
}

// 正十二烷完全燃烧：C12H26 + 18.5 O2 -> 12 CO2 + 13 H2O
const (
	o2PerFuel  = 18.5
	co2PerFuel = 12.0
	h2oPerFuel = 13.0
)

func (g *IdealGas) EquilibrateHP(x Composition, hMolar, P float64) (State, error) {
	if P <= 0 {
		return State{}, &StateError{Op: "EquilibrateHP", Msg: "压力非正", P: P}
	}
	xc := x.Clone()
	if err := xc.Normalize(); err != nil {
		return State{}, err
	}

	// 以 1 kmol 未燃混合物为基准，总焓守恒
	nFuel := xc["c12h26"]
	nO2 := xc["o2"]
	needO2 := o2PerFuel * nFuel
	if needO2 > nO2 {
		return State{}, &StateError{
			Op:  "EquilibrateHP",
			Msg: fmt.Sprintf("氧量不足（需 %.4f，实有 %.4f），富油混合物不支持", needO2, nO2),
			P:   P,
		}
	}

	prod := Composition{
		"n2":  xc["n2"],
		"o2":  nO2 - needO2,
		"co2": xc["co2"] + co2PerFuel*nFuel,
		"h2o": xc["h2o"] + h2oPerFuel*nFuel,
	}
	var nTotal float64
	for _, v := range prod {
		nTotal += v
	}
	if nTotal <= 0 {
		return State{}, &StateError{Op: "EquilibrateHP", Msg: "燃烧产物摩尔数非正", P: P}
	}
	// 产物的目标摩尔焓 = 总焓 / 产物摩尔数
	hProdMolar := hMolar * 1.0 / nTotal
	if err := prod.Normalize(); err != nil {
		return State{}, err
	}
	T, err := solveTFromH(prod, hProdMolar)
	if err != nil {
		return State{}, err
	}
	return newState(prod, T, P)
}
