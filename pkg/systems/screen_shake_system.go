package systems

import (
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/entities"
	"github.com/gonewx/balloonpop/pkg/game"
)

// ScreenShakeSystem 回合结束时的屏幕抖动
//
// 抖动由调度器驱动：第 i 次抖动在 i*ShakeInterval 毫秒时设置一个随机偏移，
// ShakeCount*ShakeInterval 毫秒时复位到 (0, 0)。
type ScreenShakeSystem struct {
	round     *game.Round
	scheduler *game.Scheduler
	rng       entities.RandomSource
	pending   []*game.TaskHandle
}

// NewScreenShakeSystem 创建屏幕抖动系统
func NewScreenShakeSystem(round *game.Round, scheduler *game.Scheduler, rng entities.RandomSource) *ScreenShakeSystem {
	return &ScreenShakeSystem{
		round:     round,
		scheduler: scheduler,
		rng:       rng,
	}
}

// Start 调度一轮抖动，已在进行的抖动会先被取消
func (s *ScreenShakeSystem) Start() {
	s.Stop()

	for i := 0; i < config.ShakeCount; i++ {
		handle := s.scheduler.After(float64(i)*config.ShakeInterval, func() {
			s.round.ShakeX = s.rng.Float64()*config.ShakeDistance*2 - config.ShakeDistance
			s.round.ShakeY = s.rng.Float64()*config.ShakeDistance*2 - config.ShakeDistance
		})
		s.pending = append(s.pending, handle)
	}

	handle := s.scheduler.After(config.ShakeCount*config.ShakeInterval, func() {
		s.round.ShakeX = 0
		s.round.ShakeY = 0
	})
	s.pending = append(s.pending, handle)
}

// Stop 取消尚未执行的抖动帧并立即复位偏移
func (s *ScreenShakeSystem) Stop() {
	for _, handle := range s.pending {
		handle.Cancel()
	}
	s.pending = s.pending[:0]
	s.round.ShakeX = 0
	s.round.ShakeY = 0
}

// IsShaking 返回是否还有未执行的抖动帧
func (s *ScreenShakeSystem) IsShaking() bool {
	for _, handle := range s.pending {
		if !handle.Cancelled() && !handle.Done() {
			return true
		}
	}
	return false
}
