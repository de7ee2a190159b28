package engine

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"wp/gas"
	"wp/maths"
)

// Burner 燃烧室：截面 3 -> 4，定焓定压平衡燃烧
type Burner struct {
	ps   gas.Props
	cfg  Config
	fuel gas.Composition
}

func NewBurner(ps gas.Props, cfg Config) *Burner {
	return &Burner{ps: ps, cfg: cfg, fuel: gas.Fuel()}
}

// BurnerResult 燃烧计算结果。OK 为假表示走了回退路径，
// Message 说明原因，Exit 仍然可用（上游空气状态 + 降压）。
type BurnerResult struct {
	Exit    gas.State
	Far     float64
	OK      bool
	Message string
}

// combust 共用燃烧例程：按摩尔掺混燃油与空气，
// 出口压力 = 入口压力 × (1 - 压损比)。
func (b *Burner) combust(st3 gas.State, far, dpRatio float64) (gas.State, error) {
	pOut := st3.P * (1.0 - dpRatio)

	// 燃油按喷入基准状态取焓
	fuel, err := b.ps.AtTP(b.fuel, gas.TFuelRef, gas.PFuelRef)
	if err != nil {
		return gas.State{}, err
	}
	// 质量加权掺混焓，J/kg
	hMix := (st3.H + far*fuel.H) / (1.0 + far)

	// 摩尔掺混：1 kg 空气对 far kg 燃油
	molesAir := 1.0 / st3.MW
	molesFuel := far / fuel.MW
	molesTotal := molesAir + molesFuel
	unburned := gas.Composition{}
	for k, v := range st3.X {
		unburned[k] = molesAir * v / molesTotal
	}
	unburned["c12h26"] += molesFuel / molesTotal

	// 关键一步：平衡调用以摩尔焓为基准（J/kmol），
	// 质量基准的掺混焓必须先乘以未燃混合物摩尔质量，
	// 否则结果悄悄偏差上千度。
	mwUnburned, err := unburned.MeanMW()
	if err != nil {
		return gas.State{}, err
	}
	hMolar := hMix * mwUnburned

	return b.ps.EquilibrateHP(unburned, hMolar, pOut)
}

// fallback 燃烧失败时返回上游空气组成、上游温度、降压后压力
func (b *Burner) fallback(st3 gas.State, dpRatio float64) gas.State {
	st, err := b.ps.AtTP(st3.X, st3.T, st3.P*(1.0-dpRatio))
	if err != nil {
		// 上游状态本身合法，这里不应失败；保底返回入口状态
		return st3
	}
	return st
}

// CalculateFromFar 【脱设计点用】油气比给定，直接算出口状态
func (b *Burner) CalculateFromFar(st3 gas.State, far, dpRatio float64) BurnerResult {
	st4, err := b.combust(st3, far, dpRatio)
	if err != nil {
		log.WithFields(log.Fields{
			"far": far,
			"err": err.Error(),
		}).Warn("燃烧室平衡计算失败，回退为上游空气状态")
		return BurnerResult{Exit: b.fallback(st3, dpRatio), Far: far, OK: false, Message: err.Error()}
	}
	return BurnerResult{Exit: st4, Far: far, OK: true}
}

// CalculateFromExitTemperature 【设计点用】给定目标出口总温，
// 在 [FarMin, FarMax] 内反解油气比（出口温度对 far 单调递增）。
// 目标超出括号范围时回退到 FarFallback 并告警。
func (b *Burner) CalculateFromExitTemperature(st3 gas.State, ttOut, dpRatio float64) BurnerResult {
	objective := func(far float64) float64 {
		st, err := b.combust(st3, far, dpRatio)
		if err != nil {
			return 1e6
		}
		return st.T - ttOut
	}

	far, err := maths.Brent(objective, b.cfg.FarMin, b.cfg.FarMax, b.cfg.FarTol, b.cfg.RootMaxIter)
	if err != nil {
		log.WithFields(log.Fields{
			"targetK": ttOut,
			"farMin":  b.cfg.FarMin,
			"farMax":  b.cfg.FarMax,
			"err":     err.Error(),
		}).Warn("燃烧室油气比反解失败，改用回退油气比")
		far = b.cfg.FarFallback
		st4, cerr := b.combust(st3, far, dpRatio)
		if cerr != nil {
			return BurnerResult{Exit: b.fallback(st3, dpRatio), Far: far, OK: false,
				Message: fmt.Sprintf("反解失败(%v)，回退燃烧亦失败(%v)", err, cerr)}
		}
		return BurnerResult{Exit: st4, Far: far, OK: false, Message: err.Error()}
	}

	st4, cerr := b.combust(st3, far, dpRatio)
	if cerr != nil {
		return BurnerResult{Exit: b.fallback(st3, dpRatio), Far: far, OK: false, Message: cerr.Error()}
	}
	return BurnerResult{Exit: st4, Far: far, OK: true}
}
