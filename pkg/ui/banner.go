package ui

import "fmt"

// Version information - overridable at build time via ldflags:
// go build -ldflags "-X github.com/nessdoc/nessdoc/pkg/ui.Version=1.0.0"
var (
	Version   = "0.3.0"
	BuildDate = "dev"
	Commit    = "dev"
)

// Banner returns the short program banner for the version subcommand
// and the top of usage output.
func Banner(color bool) string {
	title := fmt.Sprintf("nessdoc %s", Version)
	if !color {
		return title
	}
	return TitleStyle.Render(title)
}
