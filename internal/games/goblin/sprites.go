package goblin

// Sprites are drawn facing right; left-facing sets are mirrored at init.
// Spaces are transparent.

// Shinji, 5x3.
var characterRight = map[string][][]string{
	"idle": {
		{" (°> ", "/|█|\\", " / \\ "},
		{" (°> ", "/|█|\\", " / \\ "},
		{" (-> ", "/|█|\\", " / \\ "},
		{" (°> ", "/|█|\\", " / \\ "},
	},
	"walk": {
		{" (°> ", "/|█|-", " / \\ "},
		{" (°> ", "-|█|\\", " |\\  "},
		{" (°> ", "/|█|-", "  |  "},
		{" (°> ", "-|█|\\", " /|  "},
	},
	"jump": {
		{"\\(°>/", " |█| ", " / \\ "},
		{" (°> ", "/|█|\\", " ^ ^ "},
	},
}

var enemyRight = map[string][][]string{
	"slime": {
		{" .. ", "(°°)"},
		{" '' ", "(°°)"},
	},
	"goblin": {
		{" {ö> ", "/|▒|>", " / \\ "},
		{" {ö> ", "<|▒|\\", " |\\  "},
	},
	"ogre": {
		{" ▄██▄ ", "(ò_ó)>", "/|██|\\", " /  \\ "},
		{" ▄██▄ ", "<(ò_ó)", "\\|██|/", " |  | "},
	},
}

var mirrorPairs = map[rune]rune{
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
	'{': '}', '}': '{',
	'[': ']', ']': '[',
}

// mirror flips a sprite horizontally.
func mirror(frame []string) []string {
	out := make([]string, len(frame))
	for i, line := range frame {
		runes := []rune(line)
		for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
			runes[l], runes[r] = runes[r], runes[l]
		}
		for j, c := range runes {
			if m, ok := mirrorPairs[c]; ok {
				runes[j] = m
			}
		}
		out[i] = string(runes)
	}
	return out
}

func mirrorSet(frames [][]string) [][]string {
	out := make([][]string, len(frames))
	for i, f := range frames {
		out[i] = mirror(f)
	}
	return out
}

// characterSprites maps animation names (idle_left, right, jump_right...) to frames.
var characterSprites = buildCharacterSprites()

func buildCharacterSprites() map[string][][]string {
	sets := make(map[string][][]string)
	for name, frames := range characterRight {
		left, right := name+"_left", name+"_right"
		switch name {
		case "walk":
			left, right = "left", "right"
		}
		sets[right] = frames
		sets[left] = mirrorSet(frames)
	}
	return sets
}

// enemySprites maps kind -> direction ("left"/"right") -> frames.
var enemySprites = buildEnemySprites()

func buildEnemySprites() map[string]map[string][][]string {
	sets := make(map[string]map[string][][]string)
	for kind, frames := range enemyRight {
		sets[kind] = map[string][][]string{
			"right": frames,
			"left":  mirrorSet(frames),
		}
	}
	return sets
}
