package fling

import "math"

// Clamp 将 v 限制在 [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MapRange 将 v 从 [inMin, inMax] 线性映射到 [outMin, outMax]（不截断）
// 输入区间为空时返回 outMin
func MapRange(inMin, inMax, outMin, outMax, v float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// WeightMapper 距离到输出值的反向映射
// 距离 0 → MaxWeight，距离 >= MaxDist → MinWeight
type WeightMapper struct {
	MaxDist   float64
	MinWeight float64
	MaxWeight float64
}

// DefaultWeightMapper 默认字重映射（影响半径 200，字重 400~800）
func DefaultWeightMapper() WeightMapper {
	return WeightMapper{
		MaxDist:   200,
		MinWeight: 400,
		MaxWeight: 800,
	}
}

// ForDistance 按距离计算输出值
func (m WeightMapper) ForDistance(dist float64) float64 {
	w := MapRange(0, m.MaxDist, m.MaxWeight, m.MinWeight, dist)
	return Clamp(w, m.MinWeight, m.MaxWeight)
}

// Weight 按目标点与观察点之间的距离计算输出值
func (m WeightMapper) Weight(tx, ty, px, py float64) float64 {
	return m.ForDistance(math.Hypot(px-tx, py-ty))
}
