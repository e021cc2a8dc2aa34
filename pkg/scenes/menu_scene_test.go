package scenes

import (
	"errors"
	"strings"
	"testing"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/render"
)

func newTestMenu() (*MenuScene, *Services) {
	services := &Services{
		SceneManager: game.NewSceneManager(),
		HighScores:   game.NewHighScoreManager(nil),
		Rand:         neverSpawn{},
	}
	menu := NewMenuScene(services)
	services.SceneManager.SwitchTo(menu)
	return menu, services
}

func TestMenuKeysStartDifficulty(t *testing.T) {
	tests := []struct {
		key  rune
		want string
	}{
		{'1', config.DifficultyEasy},
		{'2', config.DifficultyMedium},
		{'3', config.DifficultyHard},
		{'e', config.DifficultyEasy},
		{'m', config.DifficultyMedium},
		{'h', config.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			menu, services := newTestMenu()
			menu.HandleKey(tt.key)

			if services.SceneManager.GetCurrentScene() != menu.GameScene() {
				t.Fatal("key did not switch to the game scene")
			}
			if got := menu.GameScene().Round().Difficulty; got != tt.want {
				t.Errorf("difficulty = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMenuIgnoresUnknownKeys(t *testing.T) {
	menu, services := newTestMenu()
	menu.HandleKey('x')
	menu.HandleKey('9')

	if services.SceneManager.GetCurrentScene() != menu {
		t.Error("unknown key left the menu")
	}
}

func TestMenuClickStartsDifficulty(t *testing.T) {
	menu, services := newTestMenu()

	// 第二个选项中心
	menu.HandleClick(400, config.MenuOptionStartY+config.MenuOptionGapY)

	if services.SceneManager.GetCurrentScene() != menu.GameScene() {
		t.Fatal("click did not start a round")
	}
	if got := menu.GameScene().Round().Difficulty; got != config.DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", got)
	}
}

func TestMenuClickOutsideOptions(t *testing.T) {
	menu, services := newTestMenu()
	menu.HandleClick(5, 5)
	if services.SceneManager.GetCurrentScene() != menu {
		t.Error("click outside options left the menu")
	}
}

func TestMenuReturnsAfterRoundOver(t *testing.T) {
	menu, services := newTestMenu()
	menu.HandleKey('h')
	gs := menu.GameScene()
	gs.Round().Score = 5
	gs.End()

	gs.Update(1.0)
	if services.SceneManager.GetCurrentScene() != gs {
		t.Fatal("returned to menu before the commit delay")
	}

	gs.Update(1.0)
	if services.SceneManager.GetCurrentScene() != menu {
		t.Fatal("did not return to menu after the commit delay")
	}
	if r := menu.LastResult(); r == nil || r.Score != 5 || !r.NewHighScore {
		t.Errorf("LastResult() = %+v", r)
	}

	rec := render.NewRecorder(800, 600)
	menu.Draw(rec)
	joined := strings.Join(rec.Texts(), "\n")
	if !strings.Contains(joined, "3. Hard   (best: 5)") {
		t.Errorf("menu does not show the hard high score:\n%s", joined)
	}
	if !strings.Contains(joined, "New high score!") {
		t.Errorf("menu does not announce the new high score:\n%s", joined)
	}
}

func TestMenuQuit(t *testing.T) {
	menu, services := newTestMenu()
	quit := false
	services.OnQuit = func() { quit = true }

	menu.HandleKey('q')
	if !quit {
		t.Error("OnQuit not called")
	}
}

func TestMenuSelectionAndEnter(t *testing.T) {
	menu, _ := newTestMenu()
	menu.HandleKey('j')
	menu.HandleKey('j')
	menu.HandleKey('j') // 回绕到第一个
	menu.HandleKey('k') // 回到最后一个
	menu.HandleKey(config.KeyEnter)

	if got := menu.GameScene().Round().Difficulty; got != config.DifficultyHard {
		t.Errorf("difficulty = %q, want hard", got)
	}
}

func TestMenuUsesViewportForRound(t *testing.T) {
	menu, services := newTestMenu()
	services.SceneManager.Resize(1280, 720)

	if err := menu.StartRound(config.DifficultyEasy); err != nil {
		t.Fatalf("StartRound() error: %v", err)
	}
	round := menu.GameScene().Round()
	if round.Width != 1280 || round.Height != 720 {
		t.Errorf("play area = %vx%v, want 1280x720", round.Width, round.Height)
	}
}

func TestMenuStartRoundUnknown(t *testing.T) {
	menu, services := newTestMenu()
	err := menu.StartRound("nightmare")
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("StartRound(nightmare) error = %v", err)
	}
	if services.SceneManager.GetCurrentScene() != menu {
		t.Error("failed start left the menu")
	}
}

func TestMenuRemembersLastDifficulty(t *testing.T) {
	settings, _ := game.NewSettingsManager(nil)
	services := &Services{
		SceneManager: game.NewSceneManager(),
		Settings:     settings,
		Rand:         neverSpawn{},
	}
	menu := NewMenuScene(services)
	menu.HandleKey('3')

	if got := settings.GetSettings().LastDifficulty; got != config.DifficultyHard {
		t.Errorf("LastDifficulty = %q, want hard", got)
	}

	again := NewMenuScene(services)
	if again.options[again.selected].label != config.DifficultyHard {
		t.Errorf("selected = %q, want hard", again.options[again.selected].label)
	}
}

func TestBuildMenuOptionsHotkeys(t *testing.T) {
	options := buildMenuOptions([]string{"easy", "medium", "hard", "hyper", "9lives"})

	want := map[string]rune{"easy": 'e', "medium": 'm', "hard": 0, "hyper": 0, "9lives": 0}
	for _, opt := range options {
		if opt.hotkey != want[opt.label] {
			t.Errorf("%s hotkey = %q, want %q", opt.label, opt.hotkey, want[opt.label])
		}
	}
}
