package engine

import (
	log "github.com/sirupsen/logrus"

	"wp/gas"
	"wp/maths"
)

// Turbine 涡轮：截面 4 -> 5
type Turbine struct {
	ps  gas.Props
	cfg Config
}

func NewTurbine(ps gas.Props, cfg Config) *Turbine {
	return &Turbine{ps: ps, cfg: cfg}
}

// TurbineResult 涡轮计算结果。Work 为单位排气质量的膨胀功（J/kg）。
// 反解模式下 OK 为假表示出口压力求根失败、用的是种子压力。
type TurbineResult struct {
	Exit          gas.State
	Work          float64
	PressureRatio float64
	OK            bool
	Message       string
}

// Calculate 【脱设计点用】给定压比和效率做膨胀。
// 入口状态按值读取，上游不会被改动。
func (t *Turbine) Calculate(st4 gas.State, pr, eff float64) (TurbineResult, error) {
	pOut := st4.P / pr

	// 理想（等熵）出口
	ideal, err := t.ps.AtSP(st4.X, st4.S, pOut)
	if err != nil {
		return TurbineResult{}, err
	}
	dropIdeal := st4.H - ideal.H
	dropReal := dropIdeal * eff

	exit, err := t.ps.AtHP(st4.X, st4.H-dropReal, pOut)
	if err != nil {
		return TurbineResult{}, err
	}
	return TurbineResult{Exit: exit, Work: dropReal, PressureRatio: pr, OK: true}, nil
}

// CalculateFromRequiredWork 【设计点用】由压气机耗功反推出口状态。
// 排气流量是空气流量的 (1+far) 倍，为保持整机功率平衡，
// 单位排气焓降 = 压气机单位空气功 / (1+far)。
// 出口压力是一维求根的解：等熵膨胀到该压力时焓恰为理想出口焓。
func (t *Turbine) CalculateFromRequiredWork(st4 gas.State, compWork, eff, far float64) TurbineResult {
	drop := compWork / (1.0 + far)
	hOut := st4.H - drop
	// 由效率反算理想焓降
	hOutIdeal := st4.H - drop/eff

	seed := st4.P / t.cfg.TurbineSeedPR
	objective := func(p float64) float64 {
		if p <= 0 {
			return 1e6
		}
		st, err := t.ps.AtSP(st4.X, st4.S, p)
		if err != nil {
			return 1e6
		}
		return st.H - hOutIdeal
	}

	// 等熵焓对压力单调递增：上界取入口压力（焓降为正必有根在其下），
	// 下界从种子往下扩直到变号
	pOut, ok, msg := t.solvePressure(objective, seed, st4.P)
	if !ok {
		log.WithFields(log.Fields{
			"seedPa":   seed,
			"inletPa":  st4.P,
			"compWork": compWork,
			"msg":      msg,
		}).Warn("涡轮出口压力求根失败，改用种子压力")
		pOut = seed
	}

	exit, err := t.ps.AtHP(st4.X, hOut, pOut)
	if err != nil {
		return TurbineResult{OK: false, Message: err.Error(), Work: drop, PressureRatio: st4.P / pOut}
	}
	return TurbineResult{Exit: exit, Work: drop, PressureRatio: st4.P / pOut, OK: ok, Message: msg}
}

func (t *Turbine) solvePressure(objective func(float64) float64, seed, pIn float64) (float64, bool, string) {
	lo, hi := seed, pIn
	fLo := objective(lo)
	for i := 0; i < 40 && fLo > 0; i++ {
		lo /= 2
		if lo < 1.0 {
			return 0, false, "下界扩展到 1 Pa 仍未变号"
		}
		fLo = objective(lo)
	}
	p, err := maths.Brent(objective, lo, hi, t.cfg.TurbinePTol*pIn, t.cfg.RootMaxIter)
	if err != nil {
		return 0, false, err.Error()
	}
	return p, true, ""
}
