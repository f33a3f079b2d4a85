package game

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed messages.toml
var defaultMessages []byte

// Catalog holds every user-facing string the dispatcher can emit. The
// embedded defaults ship with the binary; operators can override individual
// messages from a TOML file without rebuilding.
type Catalog struct {
	Help       HelpMessages       `toml:"help"`
	Unknown    UnknownMessages    `toml:"unknown"`
	Cancel     CancelMessages     `toml:"cancel"`
	Info       InfoMessages       `toml:"info"`
	Stats      StatsMessages      `toml:"stats"`
	Job        JobMessages        `toml:"job"`
	Allocate   AllocateMessages   `toml:"allocate"`
	Adventure  AdventureMessages  `toml:"adventure"`
	Enhance    EnhanceMessages    `toml:"enhance"`
	Attendance AttendanceMessages `toml:"attendance"`
}

type HelpMessages struct {
	Text string `toml:"text"`
}

type UnknownMessages struct {
	Text       string `toml:"text"`
	Suggestion string `toml:"suggestion"`
}

type CancelMessages struct {
	Done    string `toml:"done"`
	Nothing string `toml:"nothing"`
}

type InfoMessages struct {
	Sheet string `toml:"sheet"`
	NoJob string `toml:"no_job"`
}

type StatsMessages struct {
	Sheet string `toml:"sheet"`
}

type JobMessages struct {
	Prompt   string `toml:"prompt"`
	Reprompt string `toml:"reprompt"`
	Assigned string `toml:"assigned"`
	Locked   string `toml:"locked"`
}

type AllocateMessages struct {
	Closed   string `toml:"closed"`
	Prompt   string `toml:"prompt"`
	Reprompt string `toml:"reprompt"`
	Applied  string `toml:"applied"`
	Denied   string `toml:"denied"`
}

type AdventureMessages struct {
	Prompt   string `toml:"prompt"`
	Reprompt string `toml:"reprompt"`
	Denied   string `toml:"denied"`
	Result   string `toml:"result"`
	LevelUp  string `toml:"level_up"`
}

type EnhanceMessages struct {
	Denied  string `toml:"denied"`
	Success string `toml:"success"`
	Failure string `toml:"failure"`
}

type AttendanceMessages struct {
	Done   string `toml:"done"`
	Repeat string `toml:"repeat"`
}

// LoadCatalog parses the embedded defaults and, when path is non-empty,
// layers the file's messages on top. Keys absent from the override file keep
// their default text.
func LoadCatalog(path string) (*Catalog, error) {
	var catalog Catalog
	if err := toml.Unmarshal(defaultMessages, &catalog); err != nil {
		return nil, fmt.Errorf("parse embedded messages: %w", err)
	}
	if path == "" {
		return &catalog, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message override %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse message override %s: %w", path, err)
	}
	return &catalog, nil
}

// render substitutes {name} placeholders. Unknown placeholders are left
// verbatim so a catalog typo is visible instead of silently dropped.
func render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
