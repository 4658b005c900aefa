package service

import (
	"fmt"
	"math"
)

// Statistics — сводные показатели по набору цен
// для пустого набора Average, Min и Max равны NaN
type Statistics struct {
	Count   int
	Sum     float64
	Average float64
	Min     float64
	Max     float64
}

// Summarize считает count, sum, average, min и max за один проход
func Summarize(values []float64) Statistics {
	if len(values) == 0 {
		return Statistics{Average: math.NaN(), Min: math.NaN(), Max: math.NaN()}
	}

	st := Statistics{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		st.Count++
		st.Sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	st.Average = st.Sum / float64(st.Count)

	return st
}

// Empty сообщает, что статистика посчитана по пустому набору
func (s Statistics) Empty() bool {
	return s.Count == 0
}

func (s Statistics) String() string {
	return fmt.Sprintf("count = %d, average = %f, max = %f, min = %f, sum = %f",
		s.Count, s.Average, s.Max, s.Min, s.Sum)
}
