// Package helpmsg provides help texts of the CLI commands.
package helpmsg

import (
	"embed"
	"fmt"
	"strings"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
)

//go:embed msg/*
var msgs embed.FS

// Read returns the help message, the key is a path in the "msg" directory without the ".txt" extension.
// "<ENV_PREFIX>" placeholder is replaced by the ENV variables prefix.
func Read(key string) string {
	content, err := msgs.ReadFile("msg/" + key + ".txt")
	if err != nil {
		panic(fmt.Errorf(`help message "%s" not found: %w`, key, err))
	}
	return strings.ReplaceAll(strings.TrimRight(string(content), "\n"), "<ENV_PREFIX>", env.Prefix)
}
