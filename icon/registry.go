package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

// Registered symbols.
const (
	Fail Icon = iota + 1
	Success
	Progress
	Search
	Link
	Image
	Video
	Gif
	Unknown
	Cached
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×﹏×)",
		squares: "◼",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "◼",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "…",
		kaomoji: "┐(ﾟ～ﾟ)┌",
		squares: "◫",
	},
	Search: {
		emoji:   "🔎",
		nerd:    "",
		plain:   "?",
		kaomoji: "｡◕‿◕｡",
		squares: "◩",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(°▽°)",
		squares: "◪",
	},
	Image: {
		emoji:   "🌌",
		nerd:    "",
		plain:   "img",
		kaomoji: "(☆▽☆)",
		squares: "▢",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "vid",
		kaomoji: "(▶‿▶)",
		squares: "▶",
	},
	Gif: {
		emoji:   "🌀",
		nerd:    "",
		plain:   "gif",
		kaomoji: "(@_@)",
		squares: "◎",
	},
	Unknown: {
		emoji:   "❔",
		nerd:    "",
		plain:   "---",
		kaomoji: "(・_・?)",
		squares: "◻",
	},
	Cached: {
		emoji:   "💾",
		nerd:    "",
		plain:   "c",
		kaomoji: "(￣ー￣)",
		squares: "▤",
	},
}
