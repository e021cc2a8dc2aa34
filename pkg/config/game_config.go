package config

import "time"

// 模拟节奏
// 时间单位为毫秒，与调度器的虚拟时钟一致
const (
	// TickInterval 两次模拟步进之间的间隔
	TickInterval = 20.0

	// RoundEndDelay 回合结束到提交最高分之间的延迟
	RoundEndDelay = 2000.0
)

// 气球
const (
	BalloonMinRadius   = 10.0
	BalloonRadiusRange = 30.0 // 半径取值 [10, 40)
)

// 粒子
const (
	ParticleBurstCount  = 20   // 每次爆破生成的粒子数
	ParticleShrinkStep  = 0.05 // 每个 tick 半径减少量
	ParticleMinSpeed    = 1.0
	ParticleSpeedRange  = 5.0 // 速度取值 [1, 6)
	ParticleRadiusRange = 3.0 // 初始半径取值 [0, 3)
)

// 屏幕抖动
const (
	ShakeCount    = 10   // 抖动次数
	ShakeDistance = 10.0 // 单次最大偏移（像素）
	ShakeInterval = 50.0 // 相邻两次抖动的间隔（毫秒）
)

// HUD 文字位置
const (
	HUDLivesX = 20.0
	HUDLivesY = 30.0
	HUDScoreX = 20.0
	HUDScoreY = 60.0

	HUDFontSize = 20.0
)

// 游戏结束横幅（相对游戏区域中心）
const (
	GameOverTitleOffsetY = -50.0
	GameOverTitleSize    = 48.0
	GameOverScoreSize    = 24.0
)

// 窗口
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
	GameTitle        = "Balloon Pop"
)

// 终端前端使用的固定逻辑分辨率
const (
	TerminalLogicalWidth  = 800.0
	TerminalLogicalHeight = 600.0
	TerminalTargetFPS     = 60
	TerminalFrameTime     = time.Second / TerminalTargetFPS
)

// 存档
const (
	// SaveAppName gdata 存储目录名
	SaveAppName = "balloonpop"
)

// 音频
const (
	// AudioSampleRate 合成音效使用的采样率
	AudioSampleRate = 44100
)

// 菜单布局（逻辑坐标）
const (
	MenuTitleY       = 150.0
	MenuOptionStartY = 260.0
	MenuOptionGapY   = 60.0
	MenuOptionWidth  = 320.0
	MenuOptionHeight = 44.0
	MenuHintY        = 500.0
)
