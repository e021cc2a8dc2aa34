package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/render"
)

// 文字颜色
var (
	HUDTextColor      = color.RGBA{A: 0xFF}
	GameOverTextColor = color.RGBA{R: 0xFF, A: 0xFF}
)

// RenderSystem 把回合状态转换为绘制命令
//
// 每帧顺序：清屏、气球、粒子、HUD（生命、得分），
// 回合结束后追加居中的游戏结束横幅。屏幕抖动偏移作用于全部命令。
type RenderSystem struct {
	round *game.Round
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(round *game.Round) *RenderSystem {
	return &RenderSystem{round: round}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(r render.Renderer) {
	em := s.round.Entities

	r.SetOffset(0, 0)
	r.Clear()
	r.SetOffset(s.round.ShakeX, s.round.ShakeY)
	defer r.SetOffset(0, 0)

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.BalloonComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		balloon, _ := ecs.GetComponent[*components.BalloonComponent](em, id)
		r.FillCircle(pos.X, pos.Y, balloon.Radius, balloon.Color)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ParticleComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if particle.Radius <= 0 {
			continue
		}
		r.FillCircle(pos.X, pos.Y, particle.Radius, particle.Color)
	}

	hud := render.TextStyle{Size: config.HUDFontSize, Color: HUDTextColor}
	r.Text(config.HUDLivesX, config.HUDLivesY, fmt.Sprintf("Lives: %d", s.round.Lives), hud)
	r.Text(config.HUDScoreX, config.HUDScoreY, fmt.Sprintf("Score: %d", s.round.Score), hud)

	if s.round.GameOver {
		s.drawGameOver(r)
	}
}

// drawGameOver 绘制游戏结束横幅
func (s *RenderSystem) drawGameOver(r render.Renderer) {
	cx := s.round.Width / 2
	cy := s.round.Height / 2

	r.Text(cx, cy+config.GameOverTitleOffsetY, "Game Over!", render.TextStyle{
		Size:  config.GameOverTitleSize,
		Bold:  true,
		Align: render.AlignCenter,
		Color: GameOverTextColor,
	})
	r.Text(cx, cy, fmt.Sprintf("Your Score: %d", s.round.Score), render.TextStyle{
		Size:  config.GameOverScoreSize,
		Align: render.AlignCenter,
		Color: GameOverTextColor,
	})
}
