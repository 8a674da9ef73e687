package services

import (
	"strings"
	"unicode/utf16"
)

const defaultSkillIcon = "🔧"

var skillIcons = map[string]string{
	// Frontend
	"react":       "⚛️",
	"reactjs":     "⚛️",
	"vue":         "💚",
	"vuejs":       "💚",
	"angular":     "🅰️",
	"javascript":  "🟨",
	"js":          "🟨",
	"typescript":  "🔷",
	"ts":          "🔷",
	"html":        "🌐",
	"html5":       "🌐",
	"css":         "🎨",
	"css3":        "🎨",
	"tailwind":    "🌊",
	"tailwindcss": "🌊",
	"bootstrap":   "🅱️",
	"sass":        "💗",
	"scss":        "💗",
	"nextjs":      "▲",
	"next.js":     "▲",

	// Backend
	"python":  "🐍",
	"java":    "☕",
	"nodejs":  "🟢",
	"node.js": "🟢",
	"node":    "🟢",
	"php":     "🐘",
	"ruby":    "💎",
	"go":      "🔵",
	"golang":  "🔵",
	"c#":      "🔷",
	"csharp":  "🔷",
	"c++":     "⚙️",
	"rust":    "🦀",

	// Frameworks
	"django":    "🎸",
	"flask":     "🧪",
	"fastapi":   "⚡",
	"express":   "🚂",
	"expressjs": "🚂",
	"spring":    "🍃",
	"laravel":   "🔺",
	"rails":     "🛤️",

	// Databases
	"sql":        "🗄️",
	"mysql":      "🐬",
	"postgresql": "🐘",
	"postgres":   "🐘",
	"mongodb":    "🍃",
	"mongo":      "🍃",
	"redis":      "🔴",
	"sqlite":     "💾",

	// DevOps and tools
	"docker":     "🐳",
	"kubernetes": "☸️",
	"k8s":        "☸️",
	"git":        "📦",
	"github":     "🐙",
	"gitlab":     "🦊",
	"aws":        "☁️",
	"azure":      "☁️",
	"gcp":        "☁️",
	"linux":      "🐧",
	"jenkins":    "👨‍🔧",
	"ci/cd":      "🔄",

	// Mobile
	"android":      "🤖",
	"ios":          "🍎",
	"flutter":      "🦋",
	"react native": "📱",
	"swift":        "🦅",
	"kotlin":       "🟣",

	// Other
	"api":         "🔌",
	"rest":        "🔌",
	"graphql":     "📊",
	"testing":     "🧪",
	"agile":       "🔄",
	"scrum":       "🏉",
	"figma":       "🎨",
	"photoshop":   "🖼️",
	"illustrator": "✏️",
	"ui/ux":       "🎨",
	"design":      "🎨",
}

var badgePalette = []string{
	"bg-blue-100 text-blue-700 border-blue-200",
	"bg-purple-100 text-purple-700 border-purple-200",
	"bg-green-100 text-green-700 border-green-200",
	"bg-orange-100 text-orange-700 border-orange-200",
	"bg-pink-100 text-pink-700 border-pink-200",
	"bg-indigo-100 text-indigo-700 border-indigo-200",
}

type SkillBadge struct {
	Skill      string
	Icon       string
	ColorIndex int
	ColorClass string
}

// ResolveSkillBadge picks the icon by case-insensitive, trimmed exact match
// and the color by the raw string's length. Skills of equal length always
// share a color.
func ResolveSkillBadge(skill string) SkillBadge {
	icon, ok := skillIcons[strings.ToLower(strings.TrimSpace(skill))]
	if !ok {
		icon = defaultSkillIcon
	}

	index := displayLength(skill) % len(badgePalette)
	return SkillBadge{
		Skill:      skill,
		Icon:       icon,
		ColorIndex: index,
		ColorClass: badgePalette[index],
	}
}

// displayLength counts UTF-16 code units, the unit of JavaScript's
// String.length.
func displayLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
