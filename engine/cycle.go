package engine

import (
	log "github.com/sirupsen/logrus"

	"wp/gas"
)

// Engine 整机部件集合。所有部件共享同一个无状态物性服务，
// 一次求值就是一次纯函数调用，彼此之间没有残留状态。
type Engine struct {
	ps  gas.Props
	cfg Config
	air gas.Composition

	Inlet      *Inlet
	Compressor *Compressor
	Burner     *Burner
	Turbine    *Turbine
	Nozzle     *Nozzle
}

func New(ps gas.Props, cfg Config) *Engine {
	return &Engine{
		ps:         ps,
		cfg:        cfg,
		air:        gas.Air(),
		Inlet:      NewInlet(ps),
		Compressor: NewCompressor(ps),
		Burner:     NewBurner(ps, cfg),
		Turbine:    NewTurbine(ps, cfg),
		Nozzle:     NewNozzle(ps),
	}
}

func (e *Engine) Props() gas.Props { return e.ps }
func (e *Engine) Air() gas.Composition { return e.air.Clone() }

// DesignInput 设计点输入，全 SI
type DesignInput struct {
	PAmb      float64 // Pa
	TAmb      float64 // K
	Mach      float64
	PRComp    float64
	EffComp   float64
	WAir      float64 // kg/s
	Tt4Target float64 // K
	BurnerDP  float64
	EffTurb   float64
	CfgThrust float64
	Cd        float64
}

// DesignResult 设计点输出。AThroat 是后续脱设计点求解的固定喉道面积。
type DesignResult struct {
	Stations StationChain
	Far      float64
	WFuel    float64 // kg/s
	AThroat  float64 // m^2
	CompWork float64 // J/kg 空气
	Fnet     float64 // N
	Fg       float64
	Fd       float64
	SFC      float64 // lbm/(hr·lbf)，英制展示约定
	Warnings []string
}

// DesignPoint 设计点序列：固定的一次性调用链 0→2→3→4→5→8/9，
// 无迭代，在一个标称工况下给发动机定尺寸。
func (e *Engine) DesignPoint(in DesignInput) (DesignResult, error) {
	var res DesignResult
	chain := StationChain{}

	// 截面 0：环境
	st0, err := e.ps.AtTP(e.air, in.TAmb, in.PAmb)
	if err != nil {
		return res, err
	}
	chain[St0] = GasState{Gas: st0, W: in.WAir}

	// 截面 2：进气道
	pt2, tt2, err := e.Inlet.RamRecovery(e.air, in.PAmb, in.TAmb, in.Mach)
	if err != nil {
		return res, err
	}
	st2, err := e.ps.AtTP(e.air, tt2, pt2)
	if err != nil {
		return res, err
	}
	chain[St2] = GasState{Gas: st2, W: in.WAir}

	// 截面 3：压气机
	pt3, tt3, compWork, err := e.Compressor.Compress(e.air, tt2, pt2, in.PRComp, in.EffComp)
	if err != nil {
		return res, err
	}
	st3, err := e.ps.AtTP(e.air, tt3, pt3)
	if err != nil {
		return res, err
	}
	chain[St3] = GasState{Gas: st3, W: in.WAir}

	// 截面 4：燃烧室（反解油气比以命中目标 Tt4）
	br := e.Burner.CalculateFromExitTemperature(st3, in.Tt4Target, in.BurnerDP)
	if !br.OK {
		res.Warnings = append(res.Warnings, "burner: "+br.Message)
	}
	far := br.Far
	wFuel := in.WAir * far
	wTotal := in.WAir + wFuel
	chain[St4] = GasState{Gas: br.Exit, W: wTotal}

	// 截面 5：涡轮（按压气机耗功配平）
	tr := e.Turbine.CalculateFromRequiredWork(br.Exit, compWork, in.EffTurb, far)
	if !tr.OK {
		res.Warnings = append(res.Warnings, "turbine: "+tr.Message)
	}
	chain[St5] = GasState{Gas: tr.Exit, W: wTotal}

	// 截面 8/9：喷管（反算喉道面积）
	nr, err := e.Nozzle.CalculateDesignPoint(tr.Exit, wTotal, in.WAir, st0, in.Mach, in.CfgThrust, in.Cd)
	if err != nil {
		return res, err
	}
	chain[St8] = GasState{Gas: nr.Throat, W: wTotal}

	res.Stations = chain
	res.Far = far
	res.WFuel = wFuel
	res.AThroat = nr.Area
	res.CompWork = compWork
	res.Fnet = nr.Thrust.Fnet
	res.Fg = nr.Thrust.Fg
	res.Fd = nr.Thrust.Fd
	res.SFC = SFC(wFuel, nr.Thrust.Fnet)

	log.WithFields(log.Fields{
		"far":       res.Far,
		"aThroatM2": res.AThroat,
		"fnetLbf":   res.Fnet / LbfToN,
		"sfc":       res.SFC,
	}).Info("设计点计算完成")
	return res, nil
}

// SFC 燃油消耗率，英制展示约定 (lbm/hr)/lbf；推力非正时记零
func SFC(wFuel, fnet float64) float64 {
	if fnet <= 0 {
		return 0
	}
	return (wFuel / LbmToKg * 3600.0) / (fnet / LbfToN)
}
