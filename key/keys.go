// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// NASA API - these keys manage authentication and the JSON endpoint.
const (
	APIKey      = "api.key"
	APIKeyFile  = "api.key_file"
	APIEndpoint = "api.endpoint"
	APIThumbs   = "api.thumbs"
)

// Archive listing - these keys govern how many records are fetched and how they are ordered.
const (
	ArchiveCount   = "archive.count"
	ArchiveSort    = "archive.sort"
	ArchiveBaseURL = "archive.base_url"
	ArchiveKeyless = "archive.keyless"
)

// Images - these keys control resolution preference and the external viewer.
const (
	ImagesPreferHD = "images.prefer_hd"
	ImagesViewer   = "images.viewer"
)

// Cache retention - these keys bound the age and total size of downloaded images.
const (
	CacheTTLHours = "cache.ttl_hours"
	CacheMaxSize  = "cache.max_size_mb"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
	TUISplashSeconds      = "tui.splash_seconds"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
