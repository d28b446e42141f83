package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/seqbit/cmd/seqbitctl/root"
	"github.com/woozymasta/seqbit/internal/config"
)

func main() {
	cfgFile := configFileFromArgs(os.Args[1:])

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "can't read config:", err)
		os.Exit(1)
	}

	cmd := root.NewRootCmd(cfg)
	cmd.PersistentFlags().String("config", cfgFile, "config file (default is $HOME/.seqbitctl.yaml)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configFileFromArgs pre-scans args for an explicit --config value so the
// config file can be loaded, and its DefaultCapacity baked into flag
// defaults, before cobra's own flag parsing ever runs: by the time
// cmd.Execute() parses flags, the command tree (and every flag default
// registered on it) already exists.
func configFileFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
