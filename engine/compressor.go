package engine

import "wp/gas"

// Compressor 压气机：截面 2 -> 3，给定压比与等熵效率
type Compressor struct {
	ps gas.Props
}

func NewCompressor(ps gas.Props) *Compressor {
	return &Compressor{ps: ps}
}

// Compress 返回出口总压、总温和单位质量压缩功（J/kg 空气）。
// 压比应大于 1、效率在 (0,1]，这里不强制检查：
// 越界值给出数值上成立但无物理意义的结果，由调用一侧约束。
func (c *Compressor) Compress(x gas.Composition, ttIn, ptIn, pr, eff float64) (ptOut, ttOut, work float64, err error) {
	in, err := c.ps.AtTP(x, ttIn, ptIn)
	if err != nil {
		return 0, 0, 0, err
	}
	ptOut = ptIn * pr

	// 理想（等熵）出口焓
	ideal, err := c.ps.AtSP(x, in.S, ptOut)
	if err != nil {
		return 0, 0, 0, err
	}
	// 实际压缩功 = 理想焓升 / 效率
	work = (ideal.H - in.H) / eff
	out, err := c.ps.AtHP(x, in.H+work, ptOut)
	if err != nil {
		return 0, 0, 0, err
	}
	return ptOut, out.T, work, nil
}
