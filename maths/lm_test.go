package maths

import (
	"math"
	"testing"
)

func TestLMLinear(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{x[0] - 3, x[1] + 1}
	}
	res := LevenbergMarquardt(f, []float64{0, 0}, nil)
	if !res.Converged {
		t.Fatalf("未收敛: %s", res.Message)
	}
	if math.Abs(res.X[0]-3) > 1e-5 || math.Abs(res.X[1]+1) > 1e-5 {
		t.Errorf("解偏差: %v", res.X)
	}
}

func TestLMRosenbrock(t *testing.T) {
	// 残差形式的 Rosenbrock，根在 (1, 1)
	f := func(x []float64) []float64 {
		return []float64{10 * (x[1] - x[0]*x[0]), 1 - x[0]}
	}
	res := LevenbergMarquardt(f, []float64{-1.2, 1.0}, &LMOptions{Tol: 1e-8, MaxIter: 300})
	if !res.Converged {
		t.Fatalf("未收敛: %s (cost=%v)", res.Message, res.Cost)
	}
	if math.Abs(res.X[0]-1) > 1e-4 || math.Abs(res.X[1]-1) > 1e-4 {
		t.Errorf("解偏差: %v", res.X)
	}
}

// 从根出发应当立即判定收敛
func TestLMIdempotentAtRoot(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{x[0]*x[0] - 4, x[1] - 1}
	}
	res := LevenbergMarquardt(f, []float64{2, 1}, nil)
	if !res.Converged || res.Iterations != 0 {
		t.Errorf("根处重启: converged=%v iter=%d", res.Converged, res.Iterations)
	}
}

// 无解时报告失败而不是死循环
func TestLMInfeasible(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{x[0]*x[0] + 1, x[1]}
	}
	res := LevenbergMarquardt(f, []float64{1, 1}, &LMOptions{MaxIter: 30})
	if res.Converged {
		t.Error("无根问题不应报告收敛")
	}
	if res.Message == "" {
		t.Error("失败时应带诊断信息")
	}
}
