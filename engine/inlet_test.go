package engine

import (
	"testing"

	"wp/gas"
)

func newTestEngine() *Engine {
	return New(gas.NewIdealGas(), DefaultConfig())
}

// 马赫数为零时冲压恢复必须原样返回静态值
func TestRamRecoveryStaticIdentity(t *testing.T) {
	e := newTestEngine()
	pt, tt, err := e.Inlet.RamRecovery(e.Air(), 101325, 288.15, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pt != 101325 || tt != 288.15 {
		t.Errorf("静态恒等性被破坏: pt=%v tt=%v", pt, tt)
	}
}

func TestRamRecoveryRaisesTotals(t *testing.T) {
	e := newTestEngine()
	pt, tt, err := e.Inlet.RamRecovery(e.Air(), 101325, 288.15, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if pt <= 101325 {
		t.Errorf("总压应高于静压: pt=%v", pt)
	}
	// Tt/T = 1 + (γ-1)/2·M² ≈ 1.128
	if tt < 315 || tt > 335 {
		t.Errorf("总温不合理: tt=%v", tt)
	}
}
