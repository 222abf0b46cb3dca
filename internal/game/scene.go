package game

import (
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Transition is a scene's request to the SceneManager. A scene returns at
// most one per frame; TransitionNone means keep running.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionToMenu
	TransitionToArena
	TransitionQuit
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionToMenu:
		return "to_menu"
	case TransitionToArena:
		return "to_arena"
	case TransitionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Scene is a top-level mode of the application.
type Scene interface {
	// HandleCommonInput runs before any scene logic each frame. A non-None
	// result wins over anything the scene would do this frame.
	HandleCommonInput() Transition
	Update(dt float64) Transition
	Draw(screen *ebiten.Image)
}

// escapeToMenu is the default common input: Escape returns to the menu.
// Scenes embed it and may override HandleCommonInput.
type escapeToMenu struct {
	input Input
}

func (e escapeToMenu) HandleCommonInput() Transition {
	if e.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return TransitionToMenu
	}
	return TransitionNone
}

// SceneConfig carries the settings shared by every scene.
type SceneConfig struct {
	Bounds    Bounds
	QuitDelay time.Duration
	Seed      int64
	// VerboseLog also records culls and wall bounces in the match log.
	VerboseLog bool
	Logger     *zap.Logger
	// Clipboard receives match reports. Defaults to the system clipboard.
	Clipboard func(string) error
}

// sceneEnv is what a scene borrows from the manager for its lifetime.
type sceneEnv struct {
	audio     Audio
	input     Input
	bounds    Bounds
	logger    *zap.Logger
	rng       *rand.Rand
	verbose   bool
	clipboard func(string) error
}

// SceneManager owns the active scene and the services shared across scenes.
type SceneManager struct {
	current   Scene
	env       *sceneEnv
	quitDelay time.Duration
	sleep     func(time.Duration)
}

// NewSceneManager starts in the menu.
func NewSceneManager(au Audio, in Input, cfg SceneConfig) *SceneManager {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	copyFn := cfg.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	m := &SceneManager{
		env: &sceneEnv{
			audio:     au,
			input:     in,
			bounds:    cfg.Bounds,
			logger:    logger,
			rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- track shuffle only
			verbose:   cfg.VerboseLog,
			clipboard: copyFn,
		},
		quitDelay: cfg.QuitDelay,
		sleep:     time.Sleep,
	}
	m.current = newMenu(m.env)
	return m
}

// Scene returns the active scene.
func (m *SceneManager) Scene() Scene { return m.current }

// Update runs one frame of the active scene and applies its transition.
// It returns true once the application should exit.
func (m *SceneManager) Update(dt float64) bool {
	return m.Apply(m.current.Update(dt))
}

// Draw renders the active scene.
func (m *SceneManager) Draw(screen *ebiten.Image) {
	m.current.Draw(screen)
}

// Apply performs a transition. Background audio stops and the next scene is
// built fresh; nothing carries over from the previous visit. Quit waits
// QuitDelay so closing sounds can finish, then returns true.
func (m *SceneManager) Apply(t Transition) bool {
	if t == TransitionNone {
		return false
	}
	m.env.audio.StopTheme()
	m.env.logger.Info("scene transition", zap.Stringer("transition", t))

	switch t {
	case TransitionQuit:
		if m.quitDelay > 0 {
			m.sleep(m.quitDelay)
		}
		return true
	case TransitionToMenu:
		m.current = newMenu(m.env)
	case TransitionToArena:
		m.current = newArena(m.env)
	}
	return false
}
