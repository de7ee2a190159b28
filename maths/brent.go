// Package maths 提供循环计算用到的数值求解器：
// 一维有界无导数求根（Brent）和两变量阻尼最小二乘（Levenberg-Marquardt）。
package maths

import (
	"errors"
	"math"
)

var (
	// ErrNoBracket 区间两端函数值同号，无法夹根
	ErrNoBracket = errors.New("maths: 区间端点函数值同号，无法夹根")
	// ErrMaxIterations 迭代次数耗尽
	ErrMaxIterations = errors.New("maths: 迭代次数耗尽")
)

// Brent 在 [a, b] 上求 f 的根，要求 f(a)、f(b) 异号。
// 逆二次插值 + 割线 + 二分的标准组合，无需导数。
func Brent(f func(float64) float64, a, b, xtol float64, maxIter int) (float64, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoBracket
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	var d float64
	mflag := true
	for i := 0; i < maxIter; i++ {
		if fb == 0 || math.Abs(b-a) < xtol {
			return b, nil
		}
		var s float64
		if fa != fc && fb != fc {
			// 逆二次插值
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// 割线
			s = b - fb*(b-a)/(fb-fa)
		}
		lo, hi := (3*a+b)/4, b
		if lo > hi {
			lo, hi = hi, lo
		}
		bisect := false
		switch {
		case s < lo || s > hi:
			bisect = true
		case mflag && math.Abs(s-b) >= math.Abs(b-c)/2:
			bisect = true
		case !mflag && math.Abs(s-b) >= math.Abs(c-d)/2:
			bisect = true
		case mflag && math.Abs(b-c) < xtol:
			bisect = true
		case !mflag && math.Abs(c-d) < xtol:
			bisect = true
		}
		if bisect {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}
		fs := f(s)
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b, ErrMaxIterations
}
