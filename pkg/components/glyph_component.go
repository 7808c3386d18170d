package components

// GlyphComponent 标题中的单个字符
// Weight 随指针距离变化（400 ~ 800），绘制时映射为笔画粗细
type GlyphComponent struct {
	Char   rune
	Weight float64
	Tween  FloatTween
}
