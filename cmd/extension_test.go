package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, name := range []string{%q, %q, %q} {
		fmt.Printf("%%s=%%s\n", name, os.Getenv(name))
	}
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvInputDir, EnvLayoutsFile, EnvVerbose)

	helloPath := filepath.Join(tempDir, "notas-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write notas-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile notas-hello: %v", err)
	}

	notasPath := filepath.Join(tempDir, "notas")
	build = exec.Command("go", "build", "-o", notasPath, "../notas")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile notas binary: %v", err)
	}

	layouts := filepath.Join(tempDir, "layouts.yaml")
	notasCmd := exec.Command(notasPath, "-v", "-layouts", layouts, "hello", "world")
	notasCmd.Dir = tempDir
	notasCmd.Env = []string{
		"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		EnvInputDir + "=./mine",
	}
	var stdout, stderr bytes.Buffer
	notasCmd.Stdout = &stdout
	notasCmd.Stderr = &stderr
	if err := notasCmd.Run(); err != nil {
		t.Fatalf("notas command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvInputDir + "=./mine",
		EnvLayoutsFile + "=" + layouts,
		EnvVerbose + "=true",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension("nope", nil)
	if found || code != 0 {
		t.Errorf("RunExtension(nope) = %v, %d, want false, 0", found, code)
	}
}
