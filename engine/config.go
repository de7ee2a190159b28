package engine

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var engCfg Config

// Config 求解器整定参数。这些都不是物理常数：
// 括号范围、种子值和残差缩放只影响收敛性，可按需调整。
type Config struct {
	// 燃烧室油气比反解
	FarMin      float64 // 括号下界
	FarMax      float64 // 括号上界
	FarFallback float64 // 反解失败时的回退油气比
	FarTol      float64 // Brent 解算容差
	RootMaxIter int     // 一维求根迭代上限

	// 涡轮出口压力反解
	TurbineSeedPR float64 // 初始压比假定（种子 = 入口压力 / 该值）
	TurbinePTol   float64 // 压力求根相对容差

	// 脱设计点求解器
	WorkScale     float64 // 功率平衡残差缩放，W
	FlowScale     float64 // 流量连续残差缩放，kg/s
	SolverTol     float64 // 缩放后残差收敛阈值
	SolverMaxIter int
}

func init() {
	file, err := ini.Load("conf/engine.ini")
	if err != nil {
		// 没有配置文件就全部走默认值
		log.Info("未找到 conf/engine.ini，求解器参数使用默认值")
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	sec := file.Section("solver")
	engCfg = Config{
		FarMin:      sec.Key("FarMin").MustFloat64(0.001),
		FarMax:      sec.Key("FarMax").MustFloat64(0.05),
		FarFallback: sec.Key("FarFallback").MustFloat64(0.017),
		FarTol:      sec.Key("FarTol").MustFloat64(1e-6),
		RootMaxIter: sec.Key("RootMaxIter").MustInt(100),

		TurbineSeedPR: sec.Key("TurbineSeedPR").MustFloat64(3.0),
		TurbinePTol:   sec.Key("TurbinePTol").MustFloat64(1e-6),

		WorkScale:     sec.Key("WorkScale").MustFloat64(1e5),
		FlowScale:     sec.Key("FlowScale").MustFloat64(50.0),
		SolverTol:     sec.Key("SolverTol").MustFloat64(1e-5),
		SolverMaxIter: sec.Key("SolverMaxIter").MustInt(60),
	}
}

// DefaultConfig 返回 ini 加载（或默认）的整定参数副本
func DefaultConfig() Config {
	return engCfg
}
