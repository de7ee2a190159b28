package gas

import "fmt"

// Composition 摩尔分数组成，键为组分名（小写）
type Composition map[string]float64

// Air 标准空气近似（Ar 并入 N2）
func Air() Composition {
	return Composition{"o2": 0.21, "n2": 0.79}
}

// Fuel 纯正十二烷
func Fuel() Composition {
	return Composition{"c12h26": 1.0}
}

// Clone 复制一份，组成在各站之间按值传递
func (x Composition) Clone() Composition {
	out := make(Composition, len(x))
	for k, v := range x {
		out[k] = v
	}
	return out
}

// Normalize 归一化摩尔分数，总和为零视为非法组成
func (x Composition) Normalize() error {
	var sum float64
	for _, v := range x {
		sum += v
	}
	if sum <= 0 {
		return &StateError{Op: "Normalize", Msg: "组成摩尔分数总和非正"}
	}
	for k, v := range x {
		x[k] = v / sum
	}
	return nil
}

// MeanMW 平均摩尔质量，kg/kmol
func (x Composition) MeanMW() (float64, error) {
	var mw float64
	for k, v := range x {
		sp, ok := speciesTable[k]
		if !ok {
			return 0, &StateError{Op: "MeanMW", Msg: fmt.Sprintf("未知组分 %q", k)}
		}
		mw += v * sp.MW
	}
	if mw <= 0 {
		return 0, &StateError{Op: "MeanMW", Msg: "平均摩尔质量非正"}
	}
	return mw, nil
}
