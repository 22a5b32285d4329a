package goblin

import (
	"fmt"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// Background characters.
const (
	GroundChar = '▀'
	TrunkChar  = '║'
	LeafChar   = '♣'
	HutChar    = '▓'
	FogChar    = '░'
)

// drawForest paints the background for a level; level 0 is the menu.
func drawForest(dst *core.Screen, level int) {
	w, h := dst.Width(), dst.Height()
	switch level {
	case 2:
		drawVillage(dst, w, h)
	case 3:
		drawMysteriousForest(dst, w, h)
	default:
		drawCaveForest(dst, w, h)
	}
}

func drawCaveForest(dst *core.Screen, w, h int) {
	// cave mouth on the left
	for y := 0; y < h/2; y++ {
		dst.DrawTextColor(0, y, "▓▓", core.ColorBrown)
	}
	for x := 6; x < w; x += 11 {
		dst.DrawTextColor(x-1, 2, "♣♣♣", core.ColorDarkGreen)
		dst.DrawTextColor(x-2, 3, "♣♣♣♣♣", core.ColorGreen)
		for y := 4; y < h-2; y++ {
			dst.SetColor(x, y, TrunkChar, core.ColorBrown)
		}
	}
}

func drawVillage(dst *core.Screen, w, h int) {
	dst.DrawTextColor(w-8, 1, "( )", core.ColorYellow)
	base := h - 3
	for x := 4; x+7 < w; x += 16 {
		dst.DrawSprite(x, base-4, []string{
			"  /\\  ",
			" /  \\ ",
			"/____\\",
			"|▓  ▓|",
		}, core.ColorBrown)
		dst.SetColor(x+3, base-1, HutChar, core.ColorOrange)
	}
}

func drawMysteriousForest(dst *core.Screen, w, h int) {
	for x := 3; x < w; x += 9 {
		dst.DrawTextColor(x-1, 2, "♠♣♠", core.ColorMagenta)
		for y := 3; y < h-2; y++ {
			r := TrunkChar
			if (x+y)%4 == 0 {
				r = '╬'
			}
			dst.SetColor(x, y, r, core.ColorDarkGray)
		}
	}
	for x := 0; x < w; x += 2 {
		dst.SetColor(x, h-4, FogChar, core.ColorBrightMagenta)
	}
}

// drawGround draws the ground line at row y.
func drawGround(dst *core.Screen, y int) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, y, GroundChar, core.ColorDarkGreen)
	}
}

// drawDialogueBox draws a wrapped line in a box along the bottom of the screen.
func drawDialogueBox(dst *core.Screen, line string) {
	w, h := dst.Width(), dst.Height()
	boxH := 5
	box := core.NewRect(1, h-boxH-1, w-2, boxH)
	dst.DrawRectColor(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, core.ColorBrown)
	lines := core.WrapText(line, box.W-4)
	for i, l := range lines {
		if i >= boxH-3 {
			break
		}
		dst.DrawTextColor(box.X+2, box.Y+1+i, l, core.ColorWhite)
	}
	hint := " SPACE "
	dst.DrawTextColor(box.Right()-len(hint)-1, box.Bottom()-1, hint, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string, c core.Color) {
	w, h := dst.Width(), dst.Height()
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)
	dst.DrawRectColor(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, c)
	for i, l := range lines {
		dst.DrawTextCenteredColor(box.Y+1+i, l, c)
	}
}

// drawHUD draws the level and score line.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Level %d ", g.level), core.ColorBrightYellow)
	score := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawTextColor(dst.Width()-len(score)-2, 0, score, core.ColorBrightWhite)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMainMenu:
		g.menu.Render(dst)
		return
	case StateCredits:
		renderCredits(dst, g.story)
		return
	case StateGameOver:
		lines := g.story.Dialogue[DefeatKey]
		if len(lines) == 0 {
			lines = []string{"You've been defeated!"}
		}
		drawCenteredMessage(dst, lines, core.ColorBrightRed)
		dst.DrawTextCenteredColor(dst.Height()-2, fmt.Sprintf("Score: %d", g.score), core.ColorGray)
		return
	case StateGameCompleted:
		if !g.dialogue.Active() {
			drawCenteredMessage(dst, []string{
				"Thank you for playing!",
				fmt.Sprintf("Final score: %d", g.score),
				"Press SPACE to return to the main menu.",
			}, core.ColorBrightYellow)
			return
		}
	}

	overlay := g.state == StateLevelDialogue && g.level == 1 && g.dialogue.Index() < g.cfg.Dialogue.OverlayUntil
	if overlay {
		dst.DrawRectColor(core.NewRect(0, 0, dst.Width(), dst.Height()), FogChar, core.ColorDarkGray)
	} else {
		drawForest(dst, g.level)
		drawGround(dst, g.floor)
	}

	if !overlay {
		if g.state == StateGameplay {
			for _, e := range g.enemies.Enemies(g.level) {
				r := e.Rect()
				dst.DrawSprite(r.X, r.Y, e.Sprite(), enemyColor(e.Kind))
			}
		}
		r := g.char.Rect()
		dst.DrawSprite(r.X, r.Y, g.char.Sprite(), core.ColorBrightGreen)
	}

	g.drawHUD(dst)

	if g.state == StateTutorial {
		dst.DrawTextCenteredColor(2, g.tutorial.Text(), core.ColorBrightCyan)
	}
	if g.state == StateGameCompleted {
		dst.DrawTextCenteredColor(3, "Thank you for playing!", core.ColorBrightYellow)
	}
	if g.dialogue.Active() {
		drawDialogueBox(dst, g.dialogue.Current())
	}
	if g.paused {
		drawCenteredMessage(dst, []string{"PAUSED", "Press P to resume"}, core.ColorWhite)
	}
}

func enemyColor(kind string) core.Color {
	switch kind {
	case "slime":
		return core.ColorBrightCyan
	case "ogre":
		return core.ColorRed
	default:
		return core.ColorGreen
	}
}
