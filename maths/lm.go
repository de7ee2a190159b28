package maths

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// LMResult 求解结果，带显式成功标志，调用方只看标志不看异常
type LMResult struct {
	X          []float64 // 解（或最后一次尝试点）
	Residual   []float64 // 解处的残差向量
	Cost       float64   // 0.5 * r^T r
	Iterations int
	Converged  bool
	Message    string
}

// LMOptions 求解器参数
type LMOptions struct {
	Tol      float64 // 残差无穷范数收敛阈值
	MaxIter  int
	FDStep   float64 // 数值雅可比相对步长
	Lambda0  float64 // 初始阻尼
	LambdaUp float64
	LambdaDn float64
}

func defaultLMOptions() LMOptions {
	return LMOptions{
		Tol:      1e-6,
		MaxIter:  100,
		FDStep:   1e-6,
		Lambda0:  1e-3,
		LambdaUp: 10.0,
		LambdaDn: 3.0,
	}
}

func normInf(r []float64) float64 {
	var m float64
	for _, v := range r {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func cost(r []float64) float64 {
	var c float64
	for _, v := range r {
		c += v * v
	}
	return 0.5 * c
}

// jacobian 前向差分数值雅可比。
// 每个试探点的求值相互独立（管线无共享状态），各列并行计算。
func jacobian(f func([]float64) []float64, x, r0 []float64, step float64) *mat.Dense {
	n := len(x)
	m := len(r0)
	J := mat.NewDense(m, n, nil)
	var wg sync.WaitGroup
	for j := 0; j < n; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			h := step * math.Max(math.Abs(x[j]), 1.0)
			xp := make([]float64, n)
			copy(xp, x)
			xp[j] += h
			rp := f(xp)
			for i := 0; i < m; i++ {
				J.Set(i, j, (rp[i]-r0[i])/h)
			}
		}(j)
	}
	wg.Wait()
	return J
}

// LevenbergMarquardt 求使残差向量为零的 x。
// 正规方程 (J^T J + λ·diag(J^T J)) δ = -J^T r，λ 随下降/上升自适应。
func LevenbergMarquardt(f func([]float64) []float64, x0 []float64, opts *LMOptions) LMResult {
	o := defaultLMOptions()
	if opts != nil {
		if opts.Tol > 0 {
			o.Tol = opts.Tol
		}
		if opts.MaxIter > 0 {
			o.MaxIter = opts.MaxIter
		}
		if opts.FDStep > 0 {
			o.FDStep = opts.FDStep
		}
		if opts.Lambda0 > 0 {
			o.Lambda0 = opts.Lambda0
		}
	}

	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)
	r := f(x)
	m := len(r)
	c := cost(r)
	lambda := o.Lambda0

	for iter := 1; iter <= o.MaxIter; iter++ {
		if normInf(r) < o.Tol {
			return LMResult{X: x, Residual: r, Cost: c, Iterations: iter - 1, Converged: true,
				Message: fmt.Sprintf("残差 %.3e 低于阈值 %.3e", normInf(r), o.Tol)}
		}

		J := jacobian(f, x, r, o.FDStep)
		var jtj mat.Dense
		jtj.Mul(J.T(), J)
		rv := mat.NewVecDense(m, append([]float64(nil), r...))
		var jtr mat.VecDense
		jtr.MulVec(J.T(), rv)

		accepted := false
		for k := 0; k < 10; k++ {
			// A = J^T J + λ·diag(J^T J)
			A := mat.NewDense(n, n, nil)
			A.Copy(&jtj)
			for i := 0; i < n; i++ {
				d := jtj.At(i, i)
				if d == 0 {
					d = 1e-12
				}
				A.Set(i, i, d*(1+lambda))
			}
			var delta mat.VecDense
			if err := delta.SolveVec(A, &jtr); err != nil {
				lambda *= o.LambdaUp
				continue
			}
			xn := make([]float64, n)
			for i := 0; i < n; i++ {
				xn[i] = x[i] - delta.AtVec(i)
			}
			rn := f(xn)
			cn := cost(rn)
			if cn < c {
				x, r, c = xn, rn, cn
				lambda = math.Max(lambda/o.LambdaDn, 1e-12)
				accepted = true
				break
			}
			lambda *= o.LambdaUp
		}
		if !accepted {
			return LMResult{X: x, Residual: r, Cost: c, Iterations: iter, Converged: normInf(r) < o.Tol,
				Message: "阻尼增大后仍无法下降，搜索停滞"}
		}
	}
	conv := normInf(r) < o.Tol
	msg := "迭代次数耗尽"
	if conv {
		msg = "末次迭代后残差低于阈值"
	}
	return LMResult{X: x, Residual: r, Cost: c, Iterations: o.MaxIter, Converged: conv, Message: msg}
}
