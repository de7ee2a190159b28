package gas

import (
	"math"
	"testing"
)

// 标准状态下的空气物性
func TestAirStandardState(t *testing.T) {
	ps := NewIdealGas()
	st, err := ps.AtTP(Air(), 288.15, 101325)
	if err != nil {
		t.Fatal(err)
	}
	if st.Cp < 995 || st.Cp > 1025 {
		t.Errorf("空气比热异常: Cp=%v", st.Cp)
	}
	if st.Rho < 1.20 || st.Rho > 1.24 {
		t.Errorf("空气密度异常: Rho=%v", st.Rho)
	}
	if st.SoundSpeed < 335 || st.SoundSpeed > 347 {
		t.Errorf("空气声速异常: a=%v", st.SoundSpeed)
	}
	if st.Gamma < 1.39 || st.Gamma > 1.41 {
		t.Errorf("空气比热比异常: gamma=%v", st.Gamma)
	}
}

func TestAtHPRoundTrip(t *testing.T) {
	ps := NewIdealGas()
	st, err := ps.AtTP(Air(), 500, 5e5)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ps.AtHP(Air(), st.H, st.P)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back.T-st.T) > 1e-6*st.T {
		t.Errorf("h->T 回代偏差: %v vs %v", back.T, st.T)
	}
}

func TestAtSPRoundTrip(t *testing.T) {
	ps := NewIdealGas()
	st, err := ps.AtTP(Air(), 500, 5e5)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ps.AtSP(Air(), st.S, st.P)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back.T-st.T) > 1e-6*st.T {
		t.Errorf("s->T 回代偏差: %v vs %v", back.T, st.T)
	}
}

func TestAtSHRoundTrip(t *testing.T) {
	ps := NewIdealGas()
	st, err := ps.AtTP(Air(), 420, 3e5)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ps.AtSH(Air(), st.S, st.H)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back.T-st.T) > 1e-5*st.T {
		t.Errorf("sh->T 回代偏差: %v vs %v", back.T, st.T)
	}
	if math.Abs(back.P-st.P) > 1e-5*st.P {
		t.Errorf("sh->P 回代偏差: %v vs %v", back.P, st.P)
	}
}

func TestNonPositiveStateRejected(t *testing.T) {
	ps := NewIdealGas()
	if _, err := ps.AtTP(Air(), -10, 101325); err == nil {
		t.Error("负温度应该报错")
	}
	if _, err := ps.AtTP(Air(), 288, 0); err == nil {
		t.Error("零压力应该报错")
	}
}

// 贫油燃烧升温
func TestEquilibrateRaisesTemperature(t *testing.T) {
	ps := NewIdealGas()
	// 油气比 0.017 附近的未燃混合物
	x := Composition{"o2": 0.2094, "n2": 0.7877, "c12h26": 0.0029}
	hMolar := mixHMolar(x, 700)
	st, err := ps.EquilibrateHP(x, hMolar, 7e5)
	if err != nil {
		t.Fatal(err)
	}
	if st.T < 900 || st.T > 2500 {
		t.Errorf("燃烧后温度不合理: T=%v", st.T)
	}
	if st.X["c12h26"] != 0 {
		t.Errorf("完全燃烧后不应残留燃油: %v", st.X["c12h26"])
	}
}

// 富油（氧不足）必须显式报错
func TestEquilibrateRichRejected(t *testing.T) {
	ps := NewIdealGas()
	x := Composition{"o2": 0.1, "n2": 0.4, "c12h26": 0.5}
	if _, err := ps.EquilibrateHP(x, mixHMolar(x, 600), 5e5); err == nil {
		t.Error("富油混合物应该返回 StateError")
	}
}
