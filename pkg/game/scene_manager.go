package game

import (
	"log"

	"github.com/gonewx/balloonpop/pkg/render"
)

// SceneManager 管理当前活动场景
// 同一时刻只有一个场景接收更新、绘制和输入
type SceneManager struct {
	currentScene Scene
	width        float64
	height       float64
}

// NewSceneManager 创建没有活动场景的管理器，使用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 如果新场景实现了 Resizable，立即通知它当前视口尺寸
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if resizable, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		resizable.Resize(sm.width, sm.height)
	}
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录视口尺寸并转发给当前场景
func (sm *SceneManager) Resize(width, height float64) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width = width
	sm.height = height
	if resizable, ok := sm.currentScene.(Resizable); ok {
		resizable.Resize(width, height)
	}
}

// Size 返回最近一次记录的视口尺寸
func (sm *SceneManager) Size() (float64, float64) {
	return sm.width, sm.height
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(r render.Renderer) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(r)
	}
}

// HandleClick 把点击转发给当前场景
func (sm *SceneManager) HandleClick(x, y float64) {
	if sm.currentScene != nil {
		sm.currentScene.HandleClick(x, y)
	}
}

// HandleKey 把按键转发给当前场景
func (sm *SceneManager) HandleKey(key rune) {
	if sm.currentScene != nil {
		sm.currentScene.HandleKey(key)
	}
}
