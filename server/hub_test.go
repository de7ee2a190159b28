package server

import (
	"encoding/json"
	"testing"
	"time"

	"wp/engine"
	"wp/gas"
	"wp/model"
	"wp/perfmap"
	"wp/solver"
)

func newTestHub() *Hub {
	cfg := engine.DefaultConfig()
	eng := engine.New(gas.NewIdealGas(), cfg)
	sol := solver.New(eng, perfmap.NewPlaceholder(), cfg)
	return NewHub(eng, sol)
}

func TestRunDesign(t *testing.T) {
	h := newTestHub()
	req, _ := json.Marshal(model.DesignReq{
		Ambient:  model.Ambient{TAmbR: 518.67, PAmbPsia: 14.696, Mach: 0},
		PRComp:   7.0,
		EffComp:  0.87,
		WAirPps:  44.0,
		Tt4R:     2100.0,
		BurnerDP: 0.05,
		EffTurb:  0.85,
		Cfg:      0.98,
		Cd:       0.99,
	})
	var resp model.DesignResp
	if err := json.Unmarshal([]byte(h.runDesign(string(req))), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.FnetLbf <= 0 {
		t.Errorf("净推力非正: %v", resp.FnetLbf)
	}
	if resp.AThroatM2 <= 0 {
		t.Errorf("喉道面积非正: %v", resp.AThroatM2)
	}
	if len(resp.Stations) != 6 {
		t.Errorf("截面数: %d", len(resp.Stations))
	}
}

// done 关闭后两个处理协程必须退出，不能留在轮询循环里
func TestHubGoroutinesExitOnDone(t *testing.T) {
	h := newTestHub()
	reqExited := make(chan struct{})
	respExited := make(chan struct{})
	go func() {
		h.handleRequest()
		close(reqExited)
	}()
	go func() {
		h.handleResponse()
		close(respExited)
	}()

	close(h.done)
	for _, exited := range []chan struct{}{reqExited, respExited} {
		select {
		case <-exited:
		case <-time.After(time.Second):
			t.Fatal("处理协程在 done 关闭后未退出")
		}
	}
}

func TestRunDesignBadContent(t *testing.T) {
	h := newTestHub()
	var resp map[string]string
	if err := json.Unmarshal([]byte(h.runDesign("{not json")), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] == "" {
		t.Error("坏请求应返回错误信息")
	}
}
