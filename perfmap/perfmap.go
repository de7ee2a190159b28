// Package perfmap 提供压气机/涡轮特性图查询能力。
// 查询是纯函数：(修正转速, 工作线位置) -> (压比, 修正流量, 效率)。
// 真实的插值图表实现该接口即可替换，不动求解器。
package perfmap

// CompressorPoint 压气机图查询结果
type CompressorPoint struct {
	PR  float64 // 压比
	Wc  float64 // 修正流量，kg/s
	Eff float64 // 等熵效率
}

// TurbinePoint 涡轮图查询结果
type TurbinePoint struct {
	PR  float64
	Eff float64
}

// Map 特性图查询接口
type Map interface {
	Compressor(ncRpm, rline float64) CompressorPoint
	Turbine(ncRpm, rline float64) TurbinePoint
}

// Placeholder 占位相关式。形状上对付求解器结构调试够用，
// 定量上必须换成真实图表插值。
// TODO: 接入 J85 压气机/涡轮图表数据（二维插值）
type Placeholder struct {
	RefSpeed float64 // 图表基准转速，rpm
}

// NewPlaceholder 基准转速 16540 rpm（设计点附近）
func NewPlaceholder() *Placeholder {
	return &Placeholder{RefSpeed: 16540.0}
}

func (m *Placeholder) Compressor(ncRpm, rline float64) CompressorPoint {
	ncn := ncRpm / m.RefSpeed

	pr := (3.0 + 4.0*ncn) * rline
	// rline=1、ncn=1 时为 19.96 kg/s（44 lbm/s）
	wc := (6.80 + 13.16*ncn) * (2.0 - rline)
	eff := 0.87 - (1.0-ncn)*(1.0-ncn) - (1.0-rline)*(1.0-rline)

	if pr < 1.0 {
		pr = 1.0
	}
	if wc < 0.5 {
		wc = 0.5
	}
	if eff < 0.5 {
		eff = 0.5
	}
	return CompressorPoint{PR: pr, Wc: wc, Eff: eff}
}

func (m *Placeholder) Turbine(ncRpm, rline float64) TurbinePoint {
	ncn := ncRpm / m.RefSpeed

	pr := (1.5 + 1.163*ncn) * (0.8 + rline*0.2)
	eff := 0.85 - (1.0-ncn)*(1.0-ncn)
	if pr < 1.01 {
		pr = 1.01
	}
	if eff < 0.5 {
		eff = 0.5
	}
	return TurbinePoint{PR: pr, Eff: eff}
}
