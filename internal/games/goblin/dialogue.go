package goblin

// Dialogue steps through the lines of one story key at a time.
type Dialogue struct {
	lines  map[int][]string
	key    int
	cur    []string
	index  int
	active bool

	// LastCompleted is the key of the dialogue that most recently finished,
	// or 0. Callers clear it once handled.
	LastCompleted int
}

// NewDialogue creates a dialogue over the story lines.
func NewDialogue(lines map[int][]string) *Dialogue {
	if lines == nil {
		lines = make(map[int][]string)
	}
	return &Dialogue{lines: lines}
}

// SetDialogue selects the lines for key. Unknown keys load no lines.
func (d *Dialogue) SetDialogue(key int) {
	d.key = key
	d.cur = d.lines[key]
	d.index = 0
}

// Start activates the selected dialogue from its first line.
func (d *Dialogue) Start() {
	d.index = 0
	d.active = len(d.cur) > 0
	if !d.active {
		d.LastCompleted = d.key
	}
}

// Advance moves to the next line. It returns false once the dialogue is
// finished, deactivating it and recording LastCompleted.
func (d *Dialogue) Advance() bool {
	if !d.active {
		return false
	}
	d.index++
	if d.index < len(d.cur) {
		return true
	}
	d.active = false
	d.index = 0
	d.LastCompleted = d.key
	return false
}

// Clear drops the selected dialogue.
func (d *Dialogue) Clear() {
	d.key = 0
	d.cur = nil
	d.index = 0
	d.active = false
	d.LastCompleted = 0
}

// Active reports whether lines are being shown.
func (d *Dialogue) Active() bool { return d.active }

// Key returns the selected dialogue key.
func (d *Dialogue) Key() int { return d.key }

// Index returns the current line index.
func (d *Dialogue) Index() int { return d.index }

// Len returns the number of lines of the selected dialogue.
func (d *Dialogue) Len() int { return len(d.cur) }

// Current returns the line being shown, or "" when inactive.
func (d *Dialogue) Current() string {
	if !d.active || d.index >= len(d.cur) {
		return ""
	}
	return d.cur[d.index]
}
