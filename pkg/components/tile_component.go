package components

// NudgeStage 悬停推动的阶段
type NudgeStage int

const (
	// NudgeIdle 静止
	NudgeIdle NudgeStage = iota
	// NudgeCoast 惯性滑行阶段
	NudgeCoast
	// NudgeOut 推出阶段
	NudgeOut
	// NudgeBack 回弹阶段
	NudgeBack
)

// TileComponent 工具网格中的方块
//
// 指针进入时根据指针速度滑行（或推出）一段位移再回弹，同时轻微摇摆和放大。
// OffsetX/OffsetY/Rotation/Scale 只影响绘制，不改变 PositionComponent。
type TileComponent struct {
	Hovered bool

	Stage            NudgeStage
	OffsetX, OffsetY float64
	StartX, StartY   float64
	PushX, PushY     float64
	VelX, VelY       float64 // 滑行初速度
	StageElapsed     float64
	StageDuration    float64 // 滑行阶段时长（秒）

	// 摇摆：0.35 秒到达目标角度，再 0.35 秒返回（yoyo）
	Rotation      float64 // 弧度
	Scale         float64
	WiggleAngle   float64
	WiggleElapsed float64
	WiggleActive  bool
}
