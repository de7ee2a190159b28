package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"wp/engine"
	"wp/model"
	"wp/solver"
)

// Hub 维护一个连接上的请求/响应通道，
// 把报告边界和循环计算核心隔开。
type Hub struct {
	eng  *engine.Engine
	sol  *solver.Solver
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	designDone    chan model.Msg
	offDesignDone chan model.Msg
	// 连接关闭时由 serveWs 关闭，两个处理协程随之退出
	done chan struct{}
}

func NewHub(eng *engine.Engine, sol *solver.Solver) *Hub {
	return &Hub{
		eng:           eng,
		sol:           sol,
		msg:           make(chan model.Msg, 10),
		designDone:    make(chan model.Msg, 10),
		offDesignDone: make(chan model.Msg, 10),
		done:          make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			switch msg.Type {
			case "design_point":
				h.designDone <- model.Msg{Type: "design_result", Content: h.runDesign(msg.Content)}
			case "off_design":
				h.offDesignDone <- model.Msg{Type: "off_design_result", Content: h.runOffDesign(msg.Content)}
			default:
				log.Warn("未知消息类型: ", msg.Type)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case <-h.done:
			return
		case reply := <-h.designDone:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Warn("err: ", err)
			}
		case reply := <-h.offDesignDone:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Warn("err: ", err)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// runDesign 英制请求 -> SI 计算 -> 英制响应
func (h *Hub) runDesign(content string) string {
	var req model.DesignReq
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errJSON(err)
	}
	res, err := h.eng.DesignPoint(engine.DesignInput{
		PAmb:      req.PAmbPsia * engine.PsiToPa,
		TAmb:      req.TAmbR * engine.RankineToKelvin,
		Mach:      req.Mach,
		PRComp:    req.PRComp,
		EffComp:   req.EffComp,
		WAir:      req.WAirPps * engine.LbmToKg,
		Tt4Target: req.Tt4R * engine.RankineToKelvin,
		BurnerDP:  req.BurnerDP,
		EffTurb:   req.EffTurb,
		CfgThrust: req.Cfg,
		Cd:        req.Cd,
	})
	if err != nil {
		return errJSON(err)
	}
	resp := model.DesignResp{
		Stations:  res.Stations.Snapshot(),
		Far:       res.Far,
		WFuelPps:  res.WFuel / engine.LbmToKg,
		AThroatM2: res.AThroat,
		FnetLbf:   res.Fnet / engine.LbfToN,
		FgLbf:     res.Fg / engine.LbfToN,
		FdLbf:     res.Fd / engine.LbfToN,
		SFC:       res.SFC,
		Warnings:  res.Warnings,
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func (h *Hub) runOffDesign(content string) string {
	var req model.OffDesignReq
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errJSON(err)
	}
	res := h.sol.Solve(solver.Conditions{
		PAmb:      req.PAmbPsia * engine.PsiToPa,
		TAmb:      req.TAmbR * engine.RankineToKelvin,
		Mach:      req.Mach,
		Far:       req.Far,
		BurnerDP:  req.BurnerDP,
		CfgThrust: req.Cfg,
		Cd:        req.Cd,
		AThroat:   req.AThroatM2,
	}, req.NcGuess, req.RlineGuess)
	resp := model.OffDesignResp{
		Converged:  res.Converged,
		Message:    res.Message,
		Iterations: res.Iterations,
		NcRpm:      res.Nc,
		Rline:      res.Rline,
		FnetLbf:    res.Perf.Fnet / engine.LbfToN,
		SFC:        res.Perf.SFC,
		WAirPps:    res.Perf.WAir / engine.LbmToKg,
		WFuelPps:   res.Perf.WFuel / engine.LbmToKg,
		PRComp:     res.Perf.PRComp,
		PRTurb:     res.Perf.PRTurb,
	}
	if res.Converged {
		resp.Stations = res.Perf.Stations.Snapshot()
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func errJSON(err error) string {
	data, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(data)
}
