package engine

import (
	"math"
	"testing"

	"wp/gas"
)

func turbineInletState(t *testing.T, e *Engine) gas.State {
	t.Helper()
	st3 := compressorExitState(t, e)
	br := e.Burner.CalculateFromFar(st3, 0.017, 0.05)
	if !br.OK {
		t.Fatalf("燃烧失败: %s", br.Message)
	}
	return br.Exit
}

// 按需求功反解再以所得压比正算，膨胀功必须闭合
func TestTurbineWorkRoundTrip(t *testing.T) {
	e := newTestEngine()
	st4 := turbineInletState(t, e)
	const (
		compWork = 2.45e5
		eff      = 0.85
		far      = 0.017
	)

	inv := e.Turbine.CalculateFromRequiredWork(st4, compWork, eff, far)
	if !inv.OK {
		t.Fatalf("反解失败: %s", inv.Message)
	}
	wantDrop := compWork / (1.0 + far)
	if math.Abs(inv.Work-wantDrop) > 1e-9*wantDrop {
		t.Errorf("单位焓降: %v vs %v", inv.Work, wantDrop)
	}

	fwd, err := e.Turbine.Calculate(st4, inv.PressureRatio, eff)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fwd.Work-wantDrop) > 1e-3*wantDrop {
		t.Errorf("往返膨胀功偏差: %v vs %v", fwd.Work, wantDrop)
	}
	if math.Abs(fwd.Exit.T-inv.Exit.T) > 0.5 {
		t.Errorf("往返出口温度偏差: %v vs %v", fwd.Exit.T, inv.Exit.T)
	}
}

// 需求功为负时理想出口焓高于入口焓，区间内无根：
// 反解必须回退到种子压力并报告失败原因
func TestTurbineSeedFallbackOnNoRoot(t *testing.T) {
	e := newTestEngine()
	st4 := turbineInletState(t, e)

	inv := e.Turbine.CalculateFromRequiredWork(st4, -1e5, 0.85, 0.017)
	if inv.OK {
		t.Fatal("无根工况却报告成功")
	}
	if inv.Message == "" {
		t.Error("回退未携带失败原因")
	}
	wantPR := e.Turbine.cfg.TurbineSeedPR
	if math.Abs(inv.PressureRatio-wantPR) > 1e-9*wantPR {
		t.Errorf("回退压比: %v vs 种子压比 %v", inv.PressureRatio, wantPR)
	}
}

// 正算不改动上游状态（值语义）
func TestTurbineDoesNotMutateInlet(t *testing.T) {
	e := newTestEngine()
	st4 := turbineInletState(t, e)
	tBefore, pBefore := st4.T, st4.P
	xBefore := st4.X.Clone()

	if _, err := e.Turbine.Calculate(st4, 2.5, 0.85); err != nil {
		t.Fatal(err)
	}
	if st4.T != tBefore || st4.P != pBefore {
		t.Error("入口状态被改动")
	}
	for k, v := range xBefore {
		if st4.X[k] != v {
			t.Errorf("入口组成被改动: %s", k)
		}
	}
}

func TestTurbineExpansionCoolsGas(t *testing.T) {
	e := newTestEngine()
	st4 := turbineInletState(t, e)
	res, err := e.Turbine.Calculate(st4, 2.663, 0.85)
	if err != nil {
		t.Fatal(err)
	}
	if res.Exit.T >= st4.T {
		t.Errorf("膨胀后温度未降低: %v vs %v", res.Exit.T, st4.T)
	}
	if res.Work <= 0 {
		t.Errorf("膨胀功非正: %v", res.Work)
	}
}
