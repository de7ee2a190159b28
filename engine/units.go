package engine

// 单位换算常数。内部计算一律 SI（K, Pa, J/kg, N, kg/s），
// 英制（°R, psia, BTU/lbm, lbf, lbm/s）只出现在系统外边界。

const (
	PsiToPa         = 6894.76
	RankineToKelvin = 1.0 / 1.8
	KelvinToRankine = 1.8
	LbfToN          = 4.44822
	LbmToKg         = 0.453592
	BtuPerLbmToJKg  = 2326.0
	JPerKgToBtuLbm  = 1.0 / BtuPerLbmToJKg

	// 标准天基准（修正流量/转速用）
	PStdPa = 101325.0
	TStdK  = 288.15
)
