// Package playground interprets lesson snippets at runtime.
//
// Snippets run inside a yaegi interpreter instead of going through go
// build: no toolchain on the student's machine, no temp dirs, no binary
// artifacts. Safety comes from an import allowlist checked before
// evaluation; the built-in snippets need nothing beyond errors, fmt and
// strings.
package playground

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"soliddojo/internal/logging"
)

// ErrForbiddenImport is returned when a snippet imports outside the allowlist.
var ErrForbiddenImport = errors.New("forbidden import")

// Executor runs lesson snippets in a sandboxed interpreter.
type Executor struct {
	// Whitelist of allowed packages
	allowedImports map[string]bool
}

// NewExecutor creates a snippet executor with the given import allowlist.
func NewExecutor(allowed []string) *Executor {
	m := make(map[string]bool, len(allowed))
	for _, pkg := range allowed {
		m[pkg] = true
	}
	return &Executor{allowedImports: m}
}

// Run interprets a snippet and returns everything its Demo function
// printed. The snippet must define func Demo(); a missing package clause
// is tolerated and wrapped. Cancellation and deadline come from ctx.
func (e *Executor) Run(ctx context.Context, snippet string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := e.validateImports(snippet); err != nil {
		return "", err
	}

	timer := logging.StartTimer(logging.CategoryPlayground, "Run")
	defer timer.Stop()

	var buf bytes.Buffer
	i := interp.New(interp.Options{Stdout: &buf, Stderr: &buf})

	if err := i.Use(stdlib.Symbols); err != nil {
		return "", fmt.Errorf("failed to load stdlib: %w", err)
	}

	if _, err := i.Eval(wrapSnippet(snippet)); err != nil {
		return "", fmt.Errorf("snippet evaluation failed: %w", err)
	}

	demoVal, err := i.Eval("main.Demo")
	if err != nil {
		return "", fmt.Errorf("Demo function not found: %w", err)
	}

	demo, ok := demoVal.Interface().(func())
	if !ok {
		return "", fmt.Errorf("Demo has incorrect signature (expected: func())")
	}

	// Execute with context timeout. The interpreter cannot be stopped
	// mid-flight, so on timeout the goroutine is abandoned along with
	// its buffer.
	errc := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				errc <- fmt.Errorf("snippet panicked: %v", rec)
			}
		}()
		demo()
		errc <- nil
	}()

	select {
	case err := <-errc:
		if err != nil {
			return "", err
		}
		logging.PlaygroundDebug("snippet produced %d bytes", buf.Len())
		return buf.String(), nil
	case <-ctx.Done():
		return "", fmt.Errorf("snippet execution timed out: %w", ctx.Err())
	}
}

// validateImports checks that the snippet only imports allowed packages.
func (e *Executor) validateImports(code string) error {
	var imports []string

	inImportBlock := false
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "import (") {
			inImportBlock = true
			continue
		}
		if inImportBlock && strings.HasPrefix(trimmed, ")") {
			inImportBlock = false
			continue
		}

		if inImportBlock {
			if trimmed == "" {
				continue
			}
			imports = append(imports, strings.Trim(trimmed, `"`))
		} else if strings.HasPrefix(trimmed, "import ") {
			pkg := strings.TrimPrefix(trimmed, "import ")
			imports = append(imports, strings.Trim(pkg, `"`))
		}
	}

	var forbidden []string
	for _, pkg := range imports {
		if !e.allowedImports[pkg] {
			forbidden = append(forbidden, pkg)
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("%w: %v (allowed: %v)", ErrForbiddenImport, forbidden, e.allowed())
	}

	return nil
}

// wrapSnippet wraps the snippet in a main package if needed.
func wrapSnippet(code string) string {
	if strings.Contains(code, "package main") {
		return code
	}
	return "package main\n\n" + code
}

// allowed returns the sorted allowlist for error messages.
func (e *Executor) allowed() []string {
	pkgs := make([]string, 0, len(e.allowedImports))
	for pkg := range e.allowedImports {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}
