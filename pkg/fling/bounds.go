package fling

// Bounds 可移动区域（平移量的上下限）
// 区域不一定包含原点，Min 可以大于 0，Max 可以小于 0
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsProvider 外部布局约束，按需重新查询（例如窗口尺寸变化后）
type BoundsProvider interface {
	Bounds() Bounds
}

// BoundsFunc 函数适配器
type BoundsFunc func() Bounds

// Bounds 实现 BoundsProvider
func (f BoundsFunc) Bounds() Bounds {
	return f()
}

// AtEdge 位置是否处于（或越过）任一边界
func (b Bounds) AtEdge(x, y float64) bool {
	return x <= b.MinX || x >= b.MaxX || y <= b.MinY || y >= b.MaxY
}

// Contains 位置是否位于区域内（含边界）
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Clamp 将位置限制在区域内
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return Clamp(x, b.MinX, b.MaxX), Clamp(y, b.MinY, b.MaxY)
}

// ResistEdge 拖拽时的边缘阻力
//
// 越过边界的部分只保留 (1 - resistance)。resistance 为 0 时不受限制，
// 为 1 时完全不能越界。
func ResistEdge(v, min, max, resistance float64) float64 {
	keep := 1 - Clamp(resistance, 0, 1)
	switch {
	case v < min:
		return min - (min-v)*keep
	case v > max:
		return max + (v-max)*keep
	}
	return v
}
