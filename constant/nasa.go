package constant

// NASA endpoints.
const (
	// APIEndpoint serves APOD records as JSON.
	APIEndpoint = "https://api.nasa.gov/planetary/apod"

	// ArchiveBaseURL is the root of the static HTML archive.
	ArchiveBaseURL = "https://apod.nasa.gov/apod/"

	// DemoKey is the public rate-limited key. It is never accepted as a configured key.
	DemoKey = "DEMO_KEY"

	// KeyFile is the system-wide location of the API key.
	KeyFile = "/etc/apod_api_key"

	// FirstDate is the date of the first published picture.
	FirstDate = "1995-06-16"

	// DateLayout is the date format used by the API and cache file names.
	DateLayout = "2006-01-02"
)
