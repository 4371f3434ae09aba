package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables passed to extensions.
const (
	EnvInputDir     = EnvPrefix + "_INPUT_DIR"
	EnvMarkdownFile = EnvPrefix + "_MARKDOWN_FILE"
	EnvCSVFile      = EnvPrefix + "_CSV_FILE"
	EnvLayout       = EnvPrefix + "_LAYOUT"
	EnvLayoutsFile  = EnvPrefix + "_LAYOUTS_FILE"
	EnvVerbose      = EnvPrefix + "_VERBOSE"
)

// extensionEnv returns the configuration as environment variables.
func extensionEnv() []string {
	return []string{
		EnvInputDir + "=" + config.InputDir,
		EnvMarkdownFile + "=" + config.MarkdownFile,
		EnvCSVFile + "=" + config.CSVFile,
		EnvLayout + "=" + config.Layout,
		EnvLayoutsFile + "=" + layoutsPath(),
		EnvVerbose + "=" + strconv.FormatBool(verbose()),
	}
}

// RunExtension attempts to find and execute an external notas-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "notas-" + subcommand
	logger := newLogger()
	defer logger.Sync()

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found", zap.String("name", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
