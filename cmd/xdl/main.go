// Command xdl checks, formats and converts XDL and JSON files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KimNorgaard/go-xdl/internal/log"
	"github.com/alecthomas/kong"
)

var (
	version  = "dev"
	revision = "none"
)

const configName = ".xdl.json"

// CLI represents command line options and configuration file values
type CLI struct {
	Version  kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
	Config   kong.ConfigFlag  `kong:"short='c',help='Load configuration from a file.'"`
	LogLevel string           `kong:"short='l',default='info',enum='debug,info,warn,error,silent',help='Log level',env='XDL_LOG_LEVEL'"`
	Jobs     int              `kong:"short='j',default='4',help='Number of files processed in parallel',env='XDL_JOBS'"`

	Check   CheckCmd   `kong:"cmd,help='Report files that do not decode.'"`
	Fmt     FmtCmd     `kong:"cmd,help='Reformat files as pretty-printed XDL or JSON.'"`
	Convert ConvertCmd `kong:"cmd,help='Convert files between XDL and JSON.'"`
}

// configPaths returns the config files looked up besides --config.
func configPaths(logger *log.Logger) []string {
	var paths []string
	wd, err := os.Getwd()
	if err == nil {
		paths = append(paths, filepath.Join(wd, configName))
	} else {
		logger.Warnf("failed to get working directory. ignoring config file in working directory")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths, filepath.Join(home, configName))
	} else {
		logger.Warnf("failed to get user home directory. ignoring config file in user home directory")
	}
	return paths
}

func newParser(cli *CLI, configPaths ...string) *kong.Kong {
	return kong.Must(cli,
		kong.Name("xdl"),
		kong.Description("Check, format and convert XDL documents"),
		kong.Configuration(kong.JSON, configPaths...),
		kong.Vars{"version": fmt.Sprintf("%s (%s)", version, revision)},
		kong.UsageOnError(),
	)
}

func main() {
	logger := log.NewLogger(os.Stderr, log.Info)

	var cli CLI
	parser := newParser(&cli, configPaths(logger)...)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		logger.Warnf("%v. ignore and use default info level instead", err)
	} else {
		logger = log.NewLogger(os.Stderr, level)
	}
	logger.Debugf("configuration: %+v", cli)

	a := newApp(logger, cli.Jobs, os.Stdout)
	ctx.FatalIfErrorf(ctx.Run(a))
}
