package goblin

import "github.com/vovakirdan/goblin-arcade/internal/core"

// MenuButton is a main menu entry.
type MenuButton int

const (
	ButtonStart MenuButton = iota
	ButtonCredits
	ButtonQuit
)

var buttonLabels = []string{"Start Game", "Credits", "Quit"}

// Label returns the button text.
func (b MenuButton) Label() string {
	if b < 0 || int(b) >= len(buttonLabels) {
		return ""
	}
	return buttonLabels[b]
}

// Menu is the main menu cursor.
type Menu struct {
	cursor MenuButton
}

// Move shifts the cursor by delta, wrapping around.
func (m *Menu) Move(delta int) {
	n := len(buttonLabels)
	m.cursor = MenuButton(((int(m.cursor)+delta)%n + n) % n)
}

// Selected returns the highlighted button.
func (m *Menu) Selected() MenuButton { return m.cursor }

// Reset highlights the first button.
func (m *Menu) Reset() { m.cursor = ButtonStart }

// Render draws the title, subtitle and buttons.
func (m *Menu) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	drawForest(dst, 0)

	top := core.Max(1, h/2-6)
	titleBox := core.NewRect(w/2-12, top, 24, 3)
	dst.DrawRectColor(titleBox, ' ', core.ColorDefault)
	dst.DrawBoxColor(titleBox, core.ColorBrown)
	dst.DrawTextCenteredColor(top+1, "Goblin Runner", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(top+3, "Demo", core.ColorGray)

	for i, label := range buttonLabels {
		y := top + 5 + i*2
		c := core.ColorBrown
		text := "  " + label + "  "
		if MenuButton(i) == m.cursor {
			c = core.ColorBrightRed
			text = "> " + label + " <"
		}
		dst.DrawTextCenteredColor(y, text, c)
	}
	dst.DrawTextCenteredColor(h-1, "↑/↓ select  ENTER/SPACE confirm", core.ColorGray)
}

// renderCredits draws the two-column credits table and the Back button.
func renderCredits(dst *core.Screen, story Story) {
	w, h := dst.Width(), dst.Height()
	dst.DrawRectColor(core.NewRect(0, 0, w, h), ' ', core.ColorDefault)
	dst.DrawTextCenteredColor(1, "Credits", core.ColorBrightYellow)

	roleW := 0
	for _, c := range story.Credits {
		roleW = core.Max(roleW, len([]rune(c.Role)))
	}
	left := core.Max(1, w/2-roleW-2)
	y := 3
	for _, c := range story.Credits {
		dst.DrawTextColor(left, y, c.Role, core.ColorBrown)
		for _, name := range c.NameList() {
			if y >= h-4 {
				break
			}
			dst.DrawTextColor(left+roleW+3, y, name, core.ColorWhite)
			y++
		}
		y++
	}

	dst.DrawTextCenteredColor(h-4, story.Footer, core.ColorGray)
	dst.DrawTextCenteredColor(h-2, "> Back <", core.ColorBrightRed)
}
