// Package solver 脱设计点工作点求解。
// 把整条管线包成 (修正转速, 工作线位置) 上的两残差目标函数，
// 用阻尼最小二乘把功率平衡残差和流量连续残差同时压到零。
package solver

import (
	"math"

	log "github.com/sirupsen/logrus"

	"wp/engine"
	"wp/gas"
	"wp/maths"
	"wp/perfmap"
)

// 内部失败时返回的残差哨兵值：外层求解器据此避开该点继续搜索
const residualSentinel = 1e6

// Conditions 一次脱设计点求解的固定输入，全 SI
type Conditions struct {
	PAmb      float64 // Pa
	TAmb      float64 // K
	Mach      float64
	Far       float64 // 油门输入：油气比（此处是控制量，不是未知数）
	BurnerDP  float64
	CfgThrust float64
	Cd        float64
	AThroat   float64 // 设计点定下的喉道面积，m^2
}

// Performance 收敛点上的整机性能
type Performance struct {
	Fnet, Fg, Fd float64 // N
	SFC          float64
	WAir, WFuel  float64 // kg/s
	Far          float64
	Nc, Rline    float64
	PRComp       float64
	PRTurb       float64
	Stations     engine.StationChain
}

// Result 求解结果，显式成功标志 + 求解器最后一条信息
type Result struct {
	Nc, Rline  float64
	Residual   [2]float64
	Iterations int
	Converged  bool
	Message    string
	Perf       Performance
}

type Solver struct {
	eng  *engine.Engine
	maps perfmap.Map
	cfg  engine.Config
}

func New(eng *engine.Engine, maps perfmap.Map, cfg engine.Config) *Solver {
	return &Solver{eng: eng, maps: maps, cfg: cfg}
}

// uncorrectFlow 修正流量换算实际流量：
// W = Wc · δ / sqrt(θ)，θ、δ 为对标准天的温度比、压力比
func uncorrectFlow(wc, pt, tt float64) float64 {
	theta := tt / engine.TStdK
	delta := pt / engine.PStdPa
	return wc * delta / math.Sqrt(theta)
}

// evaluate 在一个试探点 (nc, rline) 上跑完整条正向管线。
// 返回未缩放前已除以缩放系数的两残差和该点的性能快照。
func (s *Solver) evaluate(cond Conditions, nc, rline float64) ([2]float64, Performance, error) {
	air := s.eng.Air()
	ps := s.eng.Props()

	// 进气道 0 -> 2
	pt2, tt2, err := s.eng.Inlet.RamRecovery(air, cond.PAmb, cond.TAmb, cond.Mach)
	if err != nil {
		return [2]float64{}, Performance{}, err
	}

	// 压气机图查询 + 流量去修正
	cp := s.maps.Compressor(nc, rline)
	wAir := uncorrectFlow(cp.Wc, pt2, tt2)

	// 压气机 2 -> 3
	pt3, tt3, compWork, err := s.eng.Compressor.Compress(air, tt2, pt2, cp.PR, cp.Eff)
	if err != nil {
		return [2]float64{}, Performance{}, err
	}
	powerComp := compWork * wAir

	st3, err := ps.AtTP(air, tt3, pt3)
	if err != nil {
		return [2]float64{}, Performance{}, err
	}

	// 燃烧室 3 -> 4：油气比是控制量，直接正算。
	// 燃烧失败会回退为空气状态，求解器继续走
	br := s.eng.Burner.CalculateFromFar(st3, cond.Far, cond.BurnerDP)
	wTotal := wAir * (1.0 + cond.Far)

	// 涡轮 4 -> 5
	tp := s.maps.Turbine(nc, rline)
	tr, err := s.eng.Turbine.Calculate(br.Exit, tp.PR, tp.Eff)
	if err != nil {
		return [2]float64{}, Performance{}, err
	}
	powerTurb := tr.Work * wTotal

	// 喷管 5 -> 8/9：用固定的设计点喉道面积
	st0, err := ps.AtTP(air, cond.TAmb, cond.PAmb)
	if err != nil {
		return [2]float64{}, Performance{}, err
	}
	nr, err := s.eng.Nozzle.Calculate(tr.Exit, wTotal, wAir, st0, cond.Mach, cond.CfgThrust, cond.Cd, cond.AThroat)
	if err != nil {
		return [2]float64{}, Performance{}, err
	}

	// 两残差各自缩放到可比量级
	res := [2]float64{
		(powerTurb - powerComp) / s.cfg.WorkScale,
		(wAir - nr.W) / s.cfg.FlowScale,
	}

	wFuel := wAir * cond.Far
	chain := engine.StationChain{
		engine.St0: {Gas: st0, W: wAir},
		engine.St2: {Gas: mustState(ps, air, tt2, pt2), W: wAir},
		engine.St3: {Gas: st3, W: wAir},
		engine.St4: {Gas: br.Exit, W: wTotal},
		engine.St5: {Gas: tr.Exit, W: wTotal},
		engine.St8: {Gas: nr.Throat, W: wTotal},
	}
	perf := Performance{
		Fnet: nr.Thrust.Fnet, Fg: nr.Thrust.Fg, Fd: nr.Thrust.Fd,
		SFC:  engine.SFC(wFuel, nr.Thrust.Fnet),
		WAir: wAir, WFuel: wFuel, Far: cond.Far,
		Nc: nc, Rline: rline,
		PRComp: cp.PR, PRTurb: tp.PR,
		Stations: chain,
	}
	return res, perf, nil
}

// mustState 由已验证过的 (T,P) 重建状态，仅在链内部使用
func mustState(ps gas.Props, x gas.Composition, t, p float64) gas.State {
	st, err := ps.AtTP(x, t, p)
	if err != nil {
		return gas.State{T: t, P: p, X: x}
	}
	return st
}

// Residuals 目标函数。任何内部失败都折算成哨兵残差而不是中断，
// 让外层根搜索能够继续扰动猜测值。
func (s *Solver) Residuals(cond Conditions, nc, rline float64) [2]float64 {
	res, _, err := s.evaluate(cond, nc, rline)
	if err != nil {
		log.WithFields(log.Fields{
			"nc":    nc,
			"rline": rline,
			"err":   err.Error(),
		}).Warn("试探点求值失败，返回哨兵残差")
		return [2]float64{residualSentinel, residualSentinel}
	}
	return res
}

// Solve 从初值 (nc0, rline0) 出发找工作点。
// 未知量内部按初值量级归一后交给 LM，收敛后在解处重算一遍性能。
func (s *Solver) Solve(cond Conditions, nc0, rline0 float64) Result {
	scaleNc := math.Max(math.Abs(nc0), 1.0)
	scaleR := math.Max(math.Abs(rline0), 1.0)

	objective := func(u []float64) []float64 {
		r := s.Residuals(cond, u[0]*scaleNc, u[1]*scaleR)
		return []float64{r[0], r[1]}
	}

	lm := maths.LevenbergMarquardt(objective, []float64{nc0 / scaleNc, rline0 / scaleR}, &maths.LMOptions{
		Tol:     s.cfg.SolverTol,
		MaxIter: s.cfg.SolverMaxIter,
	})

	nc := lm.X[0] * scaleNc
	rline := lm.X[1] * scaleR
	out := Result{
		Nc:         nc,
		Rline:      rline,
		Residual:   [2]float64{lm.Residual[0], lm.Residual[1]},
		Iterations: lm.Iterations,
		Converged:  lm.Converged,
		Message:    lm.Message,
	}

	if !lm.Converged {
		log.WithFields(log.Fields{
			"nc":    nc,
			"rline": rline,
			"msg":   lm.Message,
		}).Warn("脱设计点求解未收敛")
		return out
	}

	// 在解处重算整机性能
	_, perf, err := s.evaluate(cond, nc, rline)
	if err != nil {
		out.Converged = false
		out.Message = "解处性能重算失败: " + err.Error()
		return out
	}
	out.Perf = perf
	log.WithFields(log.Fields{
		"nc":      nc,
		"rline":   rline,
		"fnetLbf": perf.Fnet / engine.LbfToN,
		"iter":    lm.Iterations,
	}).Info("脱设计点求解收敛")
	return out
}
