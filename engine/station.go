package engine

import (
	"wp/gas"
	"wp/model"
)

// 气路截面编号：0 环境，2 进气道出口，3 压气机出口，
// 4 涡轮入口，5 涡轮出口，8 喷管喉道
const (
	St0 = 0
	St2 = 2
	St3 = 3
	St4 = 4
	St5 = 5
	St8 = 8
)

var stationOrder = []int{St0, St2, St3, St4, St5, St8}

var stationNames = map[int]string{
	St0: "Station 0: Ambient",
	St2: "Station 2: Inlet Face",
	St3: "Station 3: Compressor Exit",
	St4: "Station 4: Turbine Inlet",
	St5: "Station 5: Turbine Exit",
	St8: "Station 8: Nozzle Throat",
}

// GasState 某一截面的气体状态加质量流量，按值传递，创建后不改
type GasState struct {
	Gas gas.State
	W   float64 // 质量流量，kg/s
}

// 英制读数，只用于外边界展示

func (s GasState) TR() float64      { return s.Gas.T * KelvinToRankine }
func (s GasState) PPsia() float64   { return s.Gas.P / PsiToPa }
func (s GasState) HBtuLbm() float64 { return s.Gas.H * JPerKgToBtuLbm }
func (s GasState) WPps() float64    { return s.W / LbmToKg }

// StationChain 一次管线求值产生的截面序列，读完即弃
type StationChain map[int]GasState

// Snapshot 按站序导出报告用数据
func (c StationChain) Snapshot() []model.Station {
	out := make([]model.Station, 0, len(c))
	for _, id := range stationOrder {
		st, ok := c[id]
		if !ok {
			continue
		}
		out = append(out, model.Station{
			ID:      id,
			Name:    stationNames[id],
			TR:      st.TR(),
			PPsia:   st.PPsia(),
			HBtuLbm: st.HBtuLbm(),
			SJkgK:   st.Gas.S,
			WPps:    st.WPps(),
		})
	}
	return out
}
