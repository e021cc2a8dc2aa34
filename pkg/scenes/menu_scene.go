package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/render"
	"github.com/gonewx/balloonpop/pkg/utils"
)

// 菜单配色
var (
	menuTitleColor    = color.RGBA{R: 0x22, G: 0x22, B: 0x66, A: 0xFF}
	menuOptionColor   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	menuSelectedColor = color.RGBA{R: 0xD0, G: 0x20, B: 0x40, A: 0xFF}
	menuHintColor     = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
)

// menuOption 菜单中的一个难度选项
type menuOption struct {
	label  string
	hotkey rune // 首字母快捷键，冲突时为 0
}

// MenuScene 难度选择菜单
//
// 显示每个难度的最高分。数字键 1..n 或难度首字母直接开始，
// 也可以点击选项；回合结束并提交最高分后自动回到本场景。
type MenuScene struct {
	services  *Services
	gameScene *GameScene
	options   []menuOption
	selected  int

	width  float64
	height float64

	lastResult *RoundResult
}

// NewMenuScene 创建菜单场景及其对应的对局场景
//
// 参数：
//   - services: 共享依赖
//
// 返回：
//   - *MenuScene: 菜单场景，回合结束后对局场景会切回该菜单
func NewMenuScene(services *Services) *MenuScene {
	services.withDefaults()

	m := &MenuScene{
		services:  services,
		gameScene: NewGameScene(services),
		width:     config.GameWindowWidth,
		height:    config.GameWindowHeight,
	}
	m.options = buildMenuOptions(services.Difficulties.Labels())

	if services.Settings != nil {
		last := services.Settings.GetSettings().LastDifficulty
		for i, opt := range m.options {
			if opt.label == last {
				m.selected = i
			}
		}
	}

	m.gameScene.OnRoundOver = func(result RoundResult) {
		m.lastResult = &result
		services.SceneManager.SwitchTo(m)
	}

	return m
}

// buildMenuOptions 为每个难度分配首字母快捷键，首字母重复或为数字时不分配
func buildMenuOptions(labels []string) []menuOption {
	counts := make(map[rune]int)
	for _, label := range labels {
		if label != "" {
			counts[firstRune(label)]++
		}
	}

	options := make([]menuOption, 0, len(labels))
	for _, label := range labels {
		opt := menuOption{label: label}
		if r := firstRune(label); counts[r] == 1 && (r < '0' || r > '9') {
			opt.hotkey = r
		}
		options = append(options, opt)
	}
	return options
}

func firstRune(s string) rune {
	for _, r := range strings.ToLower(s) {
		return r
	}
	return 0
}

// GameScene 返回菜单所启动的对局场景
func (m *MenuScene) GameScene() *GameScene {
	return m.gameScene
}

// StartRound 以指定难度开始回合并切换到对局场景
func (m *MenuScene) StartRound(difficulty string) error {
	width, height := m.gameScene.ViewSize()
	if err := m.gameScene.Start(difficulty, width, height); err != nil {
		return err
	}

	if settings := m.services.Settings; settings != nil {
		settings.SetLastDifficulty(difficulty)
		if err := settings.Save(); err != nil {
			log.Printf("[MenuScene] Warning: Failed to save settings: %v", err)
		}
	}

	m.services.SceneManager.SwitchTo(m.gameScene)
	return nil
}

// Update 菜单没有随时间变化的状态
func (m *MenuScene) Update(deltaTime float64) {}

// HandleKey 处理难度快捷键、方向选择和退出
func (m *MenuScene) HandleKey(key rune) {
	switch {
	case key >= '1' && key <= '9':
		index := int(key - '1')
		if index < len(m.options) {
			m.choose(index)
		}
		return
	case key == config.KeyEnter || key == ' ':
		m.choose(m.selected)
		return
	case key == 'j' || key == 's':
		m.selected = (m.selected + 1) % len(m.options)
		return
	case key == 'k' || key == 'w':
		m.selected = (m.selected + len(m.options) - 1) % len(m.options)
		return
	case key == config.KeyEscape || key == 'q':
		if m.services.OnQuit != nil {
			m.services.OnQuit()
		}
		return
	}

	for i, opt := range m.options {
		if opt.hotkey != 0 && opt.hotkey == key {
			m.choose(i)
			return
		}
	}
}

// HandleClick 点击难度选项开始回合
func (m *MenuScene) HandleClick(x, y float64) {
	for i := range m.options {
		ox, oy, w, h := m.optionBounds(i)
		if utils.PointInRect(x, y, ox, oy, w, h) {
			m.choose(i)
			return
		}
	}
}

func (m *MenuScene) choose(index int) {
	m.selected = index
	label := m.options[index].label
	if err := m.StartRound(label); err != nil {
		log.Printf("[MenuScene] Failed to start %s: %v", label, err)
	}
}

// optionBounds 返回第 i 个选项的点击区域
func (m *MenuScene) optionBounds(i int) (x, y, width, height float64) {
	centerY := config.MenuOptionStartY + float64(i)*config.MenuOptionGapY
	return m.width/2 - config.MenuOptionWidth/2,
		centerY - config.MenuOptionHeight/2,
		config.MenuOptionWidth,
		config.MenuOptionHeight
}

// Resize 菜单和下一回合都使用新的视口尺寸
func (m *MenuScene) Resize(width, height float64) {
	m.width = width
	m.height = height
	m.gameScene.Resize(width, height)
}

// Draw 绘制标题、难度选项、最高分和提示
func (m *MenuScene) Draw(r render.Renderer) {
	r.SetOffset(0, 0)
	r.Clear()

	cx := m.width / 2
	r.Text(cx, config.MenuTitleY, config.GameTitle, render.TextStyle{
		Size: 48, Bold: true, Align: render.AlignCenter, Color: menuTitleColor,
	})

	scores := m.services.HighScores.All()
	for i, opt := range m.options {
		_, oy, _, h := m.optionBounds(i)
		baseline := oy + h*0.7

		c := menuOptionColor
		if i == m.selected {
			c = menuSelectedColor
			r.FillCircle(cx-config.MenuOptionWidth/2-12, oy+h/2, 10, c)
		}

		line := fmt.Sprintf("%d. %s   (best: %d)", i+1, displayName(opt.label), scores[opt.label])
		r.Text(cx, baseline, line, render.TextStyle{Size: 24, Align: render.AlignCenter, Color: c})
	}

	if m.lastResult != nil {
		line := fmt.Sprintf("Last round (%s): %d", displayName(m.lastResult.Difficulty), m.lastResult.Score)
		if m.lastResult.NewHighScore {
			line += "  New high score!"
		}
		r.Text(cx, config.MenuHintY-40, line, render.TextStyle{Size: 20, Align: render.AlignCenter, Color: menuSelectedColor})
	}

	hint := "Press 1-3 or E/M/H, or click a difficulty. Q to quit."
	if utils.IsMobile() {
		hint = "Tap a difficulty to start"
	}
	r.Text(cx, config.MenuHintY, hint, render.TextStyle{Size: 18, Align: render.AlignCenter, Color: menuHintColor})
}

// displayName 难度标签首字母大写
func displayName(label string) string {
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// LastResult 返回最近一个回合的结果，没有时返回 nil
func (m *MenuScene) LastResult() *RoundResult {
	return m.lastResult
}
