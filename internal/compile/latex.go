// Package compile invokes the external LaTeX toolchain to turn a spliced
// document into a PDF. It sits outside the core generation path: a compile
// failure never invalidates the generated document text.
package compile

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Timeout bounds a single pdflatex invocation.
const Timeout = 30 * time.Second

// CompilationError represents a pdflatex failure.
type CompilationError struct {
	Message string
	Log     string
	Cause   error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("latex compilation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("latex compilation: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// PDF writes documentText to a .tex file in workDir and compiles it with
// pdflatex. Returns the path of the produced PDF. An empty workDir uses a
// fresh temporary directory.
func PDF(ctx context.Context, documentText string, workDir string) (string, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return "", &CompilationError{
			Message: "pdflatex not found in PATH; install a LaTeX distribution (TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	if workDir == "" {
		dir, err := os.MkdirTemp("", "resume-compile-*")
		if err != nil {
			return "", &CompilationError{Message: "failed to create working directory", Cause: err}
		}
		workDir = dir
	} else if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", &CompilationError{Message: fmt.Sprintf("failed to create working directory %s", workDir), Cause: err}
	}

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(documentText), 0o644); err != nil {
		return "", &CompilationError{Message: "failed to write .tex file", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return "", &CompilationError{
			Message: "pdflatex exited with an error",
			Log:     output.String(),
			Cause:   err,
		}
	}

	pdfPath := strings.TrimSuffix(texPath, ".tex") + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &CompilationError{
			Message: "pdflatex reported success but produced no PDF",
			Log:     output.String(),
			Cause:   err,
		}
	}

	return pdfPath, nil
}
