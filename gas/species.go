package gas

import "math"

// 组分热力学数据
// 采用 NASA 七系数多项式（分低温/高温两段），
// cp/R = a1 + a2*T + a3*T^2 + a4*T^3 + a5*T^4
// h/RT  = a1 + a2/2*T + a3/3*T^2 + a4/4*T^3 + a5/5*T^4 + a6/T
// s0/R  = a1*lnT + a2*T + a3/2*T^2 + a4/3*T^3 + a5/4*T^4 + a7

const (
	// 通用气体常数，J/(kmol·K)
	RUniversal = 8314.462618
	// 参考压力（熵基准），Pa
	PRef = 101325.0
	// 燃油喷入基准状态
	TFuelRef = 298.15
	PFuelRef = 101325.0
)

// 温度适用范围，多项式外推前先截断
const (
	TSpeciesMin = 200.0
	TSpeciesMax = 5000.0
)

type Species struct {
	Name string
	MW   float64 // 摩尔质量，kg/kmol

	TMid float64    // 低温段/高温段分界
	Low  [7]float64 // 低温段系数
	High [7]float64 // 高温段系数
}

// 组分表（O2/N2 来自空气，CO2/H2O 为燃烧产物，C12H26 近似 Jet-A 燃油）
var speciesTable = map[string]*Species{
	"o2": {
		Name: "o2",
		MW:   31.9988,
		TMid: 1000.0,
		Low: [7]float64{
			3.78245636e+00, -2.99673416e-03, 9.84730201e-06, -9.68129509e-09,
			3.24372837e-12, -1.06394356e+03, 3.65767573e+00,
		},
		High: [7]float64{
			3.28253784e+00, 1.48308754e-03, -7.57966669e-07, 2.09470555e-10,
			-2.16717794e-14, -1.08845772e+03, 5.45323129e+00,
		},
	},
	"n2": {
		Name: "n2",
		MW:   28.0134,
		TMid: 1000.0,
		Low: [7]float64{
			3.29867700e+00, 1.40824040e-03, -3.96322200e-06, 5.64151500e-09,
			-2.44485400e-12, -1.02089990e+03, 3.95037200e+00,
		},
		High: [7]float64{
			2.92664000e+00, 1.48797680e-03, -5.68476000e-07, 1.00970380e-10,
			-6.75335100e-15, -9.22797700e+02, 5.98052800e+00,
		},
	},
	"co2": {
		Name: "co2",
		MW:   44.0095,
		TMid: 1000.0,
		Low: [7]float64{
			2.35677352e+00, 8.98459677e-03, -7.12356269e-06, 2.45919022e-09,
			-1.43699548e-13, -4.83719697e+04, 9.90105222e+00,
		},
		High: [7]float64{
			3.85746029e+00, 4.41437026e-03, -2.21481404e-06, 5.23490188e-10,
			-4.72084164e-14, -4.87591660e+04, 2.27163806e+00,
		},
	},
	"h2o": {
		Name: "h2o",
		MW:   18.01528,
		TMid: 1000.0,
		Low: [7]float64{
			4.19864056e+00, -2.03643410e-03, 6.52040211e-06, -5.48797062e-09,
			1.77197817e-12, -3.02937267e+04, -8.49032208e-01,
		},
		High: [7]float64{
			3.03399249e+00, 2.17691804e-03, -1.64072518e-07, -9.70419870e-11,
			1.68200992e-14, -3.00042971e+04, 4.96677010e+00,
		},
	},
	// 正十二烷，代替 Jet-A
	"c12h26": {
		Name: "c12h26",
		MW:   170.3348,
		TMid: 1000.0,
		Low: [7]float64{
			-2.62181594e+00, 1.47237711e-01, -9.43970271e-05, 3.07441268e-08,
			-4.03602230e-12, -4.00654253e+04, 5.00994626e+01,
		},
		High: [7]float64{
			3.85095037e+01, 5.63550048e-02, -1.91493200e-05, 2.96024862e-09,
			-1.71244150e-13, -5.48843465e+04, -1.72670922e+02,
		},
	},
}

func (sp *Species) coeff(T float64) *[7]float64 {
	if T < sp.TMid {
		return &sp.Low
	}
	return &sp.High
}

// CpMolar 摩尔定压比热，J/(kmol·K)
func (sp *Species) CpMolar(T float64) float64 {
	a := sp.coeff(T)
	return RUniversal * (a[0] + a[1]*T + a[2]*T*T + a[3]*T*T*T + a[4]*T*T*T*T)
}

// HMolar 摩尔焓（含生成焓），J/kmol
func (sp *Species) HMolar(T float64) float64 {
	a := sp.coeff(T)
	return RUniversal * T * (a[0] + a[1]/2*T + a[2]/3*T*T + a[3]/4*T*T*T + a[4]/5*T*T*T*T + a[5]/T)
}

// S0Molar 标准态摩尔熵（1 atm），J/(kmol·K)
func (sp *Species) S0Molar(T float64) float64 {
	a := sp.coeff(T)
	return RUniversal * (a[0]*math.Log(T) + a[1]*T + a[2]/2*T*T + a[3]/3*T*T*T + a[4]/4*T*T*T*T + a[6])
}
