package game

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	highScoreObject   = "highscores"
	highScoreProperty = "table"
)

// highScoreData 持久化格式
type highScoreData struct {
	Scores map[string]int `yaml:"scores"`
}

// HighScoreManager 各难度最高分表
//
// 最高分只在回合结束时比较：新得分严格大于已记录值时才更新。
// 可被多个 SSH 会话共享，所有方法并发安全。
// gdataManager 为 nil 时只在内存中保存，进程退出即丢失。
type HighScoreManager struct {
	mu           sync.Mutex
	gdataManager *gdata.Manager
	scores       map[string]int
}

// NewHighScoreManager 创建最高分管理器，并尝试加载已保存的记录
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（仅内存）
//
// 返回：
//   - *HighScoreManager: 管理器实例，加载失败时为空表
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	m := &HighScoreManager{
		gdataManager: gdataManager,
		scores:       make(map[string]int),
	}

	if err := m.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: Failed to load high scores: %v (starting empty)", err)
	}

	return m
}

// Load 从 gdata 重新加载最高分表
func (m *HighScoreManager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var loaded highScoreData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}

	scores := make(map[string]int, len(loaded.Scores))
	for difficulty, score := range loaded.Scores {
		if score > 0 {
			scores[difficulty] = score
		}
	}
	m.scores = scores

	log.Printf("[HighScoreManager] Loaded %d high scores", len(scores))
	return nil
}

// Get 返回指定难度的最高分，没有记录时返回 0
func (m *HighScoreManager) Get(difficulty string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[difficulty]
}

// All 返回最高分表的副本
func (m *HighScoreManager) All() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[string]int, len(m.scores))
	for difficulty, score := range m.scores {
		result[difficulty] = score
	}
	return result
}

// Commit 提交回合最终得分
//
// 只有 score 严格大于该难度的已有记录时才更新；
// 更新后如有存储则立即保存，保存失败只记录日志。
//
// 参数：
//   - difficulty: 难度标签
//   - score: 回合最终得分
//
// 返回：
//   - bool: 是否刷新了记录
func (m *HighScoreManager) Commit(difficulty string, score int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if score <= m.scores[difficulty] {
		return false
	}
	m.scores[difficulty] = score
	log.Printf("[HighScoreManager] New high score for %s: %d", difficulty, score)

	if err := m.saveLocked(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v", err)
	}
	return true
}

// saveLocked 写入存储，调用方必须持有锁
func (m *HighScoreManager) saveLocked() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(highScoreData{Scores: m.scores})
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}
