package entities

// SequenceRandom 按固定序列返回随机数，序列用完后循环
// 用于让随机行为在测试和回放中可复现
type SequenceRandom struct {
	Values []float64
	next   int
}

// NewSequenceRandom 创建固定序列随机源
func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{Values: values}
}

// Float64 返回序列中的下一个值，空序列返回 0
func (s *SequenceRandom) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Calls 返回已消耗的随机数个数
func (s *SequenceRandom) Calls() int {
	return s.next
}
