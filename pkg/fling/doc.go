// Package fling 实现拖拽释放后的惯性滑动模拟
//
// 包含三部分：
//   - 速度估计：根据拖拽过程中最近一段时间的采样估计释放速度
//   - 惯性模拟：带摩擦和边界反弹的固定步长积分，静止后请求一次落位动画
//   - 距离映射：将指针距离线性映射到有界输出（用于字重等属性）
//   - 悬停推动：指针进入方块时的惯性滑行或固定推动位移
//
// 本包不依赖任何渲染库。渲染通过 Target 接口注入；帧调度通过 Scheduler 接口注入，
// FrameScheduler 是由主循环逐帧驱动的实现，ebiten 场景和终端程序共用。
package fling
