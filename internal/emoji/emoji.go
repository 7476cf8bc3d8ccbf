// Package emoji maps commit types to the gitmoji shown next to them.
package emoji

import "strings"

var emojiMap = map[string]string{
	"feat":     "✨",
	"fix":      "🐛",
	"docs":     "📝",
	"style":    "💄",
	"refactor": "♻️",
	"perf":     "⚡",
	"test":     "✅",
	"chore":    "🔧",
	"build":    "🏗️",
	"ci":       "🤖",
	"revert":   "🔙",
	"security": "🔒",
	"deps":     "🔗",
	"wip":      "🚧",
	"release":  "🚀",
	"a11y":     "♿",
	"i18n":     "🌐",
	"infra":    "🧱",
	"logging":  "🔊",
}

// ForType returns the emoji for commitType, or "" when it has none.
func ForType(commitType string) string {
	return emojiMap[strings.ToLower(commitType)]
}

// Decorate prefixes commitType with its emoji when it has one.
func Decorate(commitType string) string {
	if e := ForType(commitType); e != "" {
		return e + " " + commitType
	}
	return commitType
}
