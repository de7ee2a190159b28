package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 环境条件（外边界英制）
type Ambient struct {
	TAmbR    float64 `json:"t_amb_r"`    // 环境静温，°R
	PAmbPsia float64 `json:"p_amb_psia"` // 环境静压，psia
	Mach     float64 `json:"mach"`       // 飞行马赫数
}

// 设计点计算请求
type DesignReq struct {
	Ambient
	PRComp   float64 `json:"pr_comp"`   // 压气机压比
	EffComp  float64 `json:"eff_comp"`  // 压气机等熵效率
	WAirPps  float64 `json:"w_air_pps"` // 空气流量，lbm/s
	Tt4R     float64 `json:"tt4_r"`     // 涡轮前目标总温，°R
	BurnerDP float64 `json:"burner_dp"` // 燃烧室压损比
	EffTurb  float64 `json:"eff_turb"`  // 涡轮等熵效率
	Cfg      float64 `json:"cfg"`       // 推力系数
	Cd       float64 `json:"cd"`        // 流量系数
}

// 脱设计点计算请求
type OffDesignReq struct {
	Ambient
	Far        float64 `json:"far"`         // 油门输入：油气比
	BurnerDP   float64 `json:"burner_dp"`
	Cfg        float64 `json:"cfg"`
	Cd         float64 `json:"cd"`
	AThroatM2  float64 `json:"a_throat_m2"` // 设计点反算的喉道面积
	NcGuess    float64 `json:"nc_guess"`    // 轴速初值，rpm
	RlineGuess float64 `json:"rline_guess"` // 工作线初值
}

// 截面快照（英制展示，熵保留 SI）
type Station struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	TR      float64 `json:"t_r"`
	PPsia   float64 `json:"p_psia"`
	HBtuLbm float64 `json:"h_btu_lbm"`
	SJkgK   float64 `json:"s_jkgk"`
	WPps    float64 `json:"w_pps"`
}

// 设计点计算响应
type DesignResp struct {
	Stations  []Station `json:"stations"`
	Far       float64   `json:"far"`
	WFuelPps  float64   `json:"w_fuel_pps"`
	AThroatM2 float64   `json:"a_throat_m2"`
	FnetLbf   float64   `json:"fnet_lbf"`
	FgLbf     float64   `json:"fg_lbf"`
	FdLbf     float64   `json:"fd_lbf"`
	SFC       float64   `json:"sfc"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// 脱设计点计算响应
type OffDesignResp struct {
	Converged  bool      `json:"converged"`
	Message    string    `json:"message"`
	Iterations int       `json:"iterations"`
	NcRpm      float64   `json:"nc_rpm"`
	Rline      float64   `json:"rline"`
	Stations   []Station `json:"stations,omitempty"`
	FnetLbf    float64   `json:"fnet_lbf"`
	SFC        float64   `json:"sfc"`
	WAirPps    float64   `json:"w_air_pps"`
	WFuelPps   float64   `json:"w_fuel_pps"`
	PRComp     float64   `json:"pr_comp"`
	PRTurb     float64   `json:"pr_turb"`
}
