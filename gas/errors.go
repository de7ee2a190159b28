package gas

import "fmt"

// StateError 物性引擎无法表示请求状态时返回
type StateError struct {
	Op  string  // 发生错误的操作
	Msg string  // 错误说明
	T   float64 // 相关温度（可为零）
	P   float64 // 相关压力（可为零）
}

func (e *StateError) Error() string {
	if e.T != 0 || e.P != 0 {
		return fmt.Sprintf("gas.%s: %s (T=%.2f K, P=%.2f Pa)", e.Op, e.Msg, e.T, e.P)
	}
	return fmt.Sprintf("gas.%s: %s", e.Op, e.Msg)
}
