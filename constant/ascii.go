package constant

import _ "embed"

// AsciiArtLogo is the application's ASCII art banner, loaded at compile time.
//
//go:embed ascii.txt
var AsciiArtLogo string

// DefaultImage is shown when neither the network nor the cache can provide a picture.
//
//go:embed default.gif
var DefaultImage []byte
