package engine

import "testing"

// 压比大于 1、效率在 (0,1] 时出口温度升高且压缩功为正
func TestCompressRaisesTemperature(t *testing.T) {
	e := newTestEngine()
	ptOut, ttOut, work, err := e.Compressor.Compress(e.Air(), 288.15, 101325, 7.0, 0.87)
	if err != nil {
		t.Fatal(err)
	}
	if ptOut != 101325*7.0 {
		t.Errorf("出口压力: %v", ptOut)
	}
	if ttOut <= 288.15 {
		t.Errorf("出口温度未升高: %v", ttOut)
	}
	if work <= 0 {
		t.Errorf("压缩功非正: %v", work)
	}
	// PR=7、eff=0.87 的量级核对
	if ttOut < 500 || ttOut > 560 {
		t.Errorf("出口温度量级异常: %v", ttOut)
	}
	if work < 2.0e5 || work > 2.9e5 {
		t.Errorf("压缩功量级异常: %v", work)
	}
}

func TestCompressLowPressureRatio(t *testing.T) {
	e := newTestEngine()
	_, ttOut, work, err := e.Compressor.Compress(e.Air(), 288.15, 101325, 1.2, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	if ttOut <= 288.15 || work <= 0 {
		t.Errorf("低压比结果异常: tt=%v work=%v", ttOut, work)
	}
}
