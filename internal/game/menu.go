package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/square-duel/internal/audio"
)

// Menu is the title scene with Play and Quit buttons.
type Menu struct {
	env     *sceneEnv
	buttons []*Button
}

// newMenu builds a fresh menu and starts the menu theme on loop.
func newMenu(env *sceneEnv) *Menu {
	env.audio.LoopTheme(audio.ThemeMenu)
	return &Menu{
		env: env,
		buttons: []*Button{
			{Label: "Play", Action: ActionPlay, Frac: Rect{X: 0.35, Y: 0.45, W: 0.3, H: 0.12}},
			{Label: "Quit", Action: ActionQuit, Frac: Rect{X: 0.35, Y: 0.62, W: 0.3, H: 0.12}},
		},
	}
}

// Buttons returns the menu's buttons, top to bottom.
func (m *Menu) Buttons() []*Button { return m.buttons }

// HandleCommonInput overrides the default: Escape on the menu quits.
func (m *Menu) HandleCommonInput() Transition {
	if m.env.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return TransitionQuit
	}
	return TransitionNone
}

func (m *Menu) Update(_ float64) Transition {
	if t := m.HandleCommonInput(); t != TransitionNone {
		return t
	}
	if m.env.input.IsKeyJustPressed(ebiten.KeyEnter) {
		return m.activate(ActionPlay)
	}
	for _, b := range m.buttons {
		if act := b.Update(m.env.input, m.env.bounds); act != ActionNone {
			return m.activate(act)
		}
	}
	return TransitionNone
}

func (m *Menu) activate(act ButtonAction) Transition {
	m.env.audio.PlayEffect(audio.EffectButtonClick)
	switch act {
	case ActionPlay:
		return TransitionToArena
	case ActionQuit:
		return TransitionQuit
	default:
		return TransitionNone
	}
}

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(arenaBackground)
	w, h := m.env.bounds.W, m.env.bounds.H
	drawCenteredText(screen, "SQUARE DUEL", w/2, h*0.25, w*0.6, h*0.15, hudText)
	for _, b := range m.buttons {
		b.Draw(screen, m.env.bounds)
	}
	drawCenteredText(screen, "red: WASD + E    blue: arrows + right ctrl", w/2, h*0.88, w*0.6, h*0.04, hudText)
}
