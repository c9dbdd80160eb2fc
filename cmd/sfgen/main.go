// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"sfgen/internal/config"
	"sfgen/internal/errors"
	"sfgen/internal/kernel"
	"sfgen/internal/lang"
	"sfgen/internal/printer"
	"sfgen/internal/source"
	"sfgen/internal/tree"
)

var log commonlog.Logger

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sfgen <manifest.toml>")
		os.Exit(1)
	}

	commonlog.Configure(1, nil)
	log = commonlog.GetLogger("sfgen")

	startTime := time.Now()
	manifestPath := os.Args[1]

	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		os.Exit(1)
	}

	reporter := errors.NewReporter(manifest.Output + ".hpp")

	ctx, err := buildContext(manifest)
	if err != nil {
		reportFatal(reporter, err, startTime)
	}

	warnings := collectWarnings(ctx)
	if len(warnings) > 0 {
		fmt.Print(reporter.FormatAll(warnings))
	}

	written, err := emit(ctx, manifest, filepath.Dir(manifestPath))
	if err != nil {
		reportFatal(reporter, err, startTime)
	}

	duration := formatDuration(time.Since(startTime))
	color.Green("Generated %s in %s", strings.Join(written, ", "), duration)
}

func reportFatal(reporter *errors.Reporter, err error, startTime time.Time) {
	if genErr, ok := err.(errors.GenError); ok {
		fmt.Print(reporter.Format(genErr))
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	color.Red("Generation failed after %s", formatDuration(time.Since(startTime)))
	os.Exit(1)
}

// buildContext translates the manifest into a source context: kernel
// namespaces first, then one wrapper function per requested mapping.
func buildContext(manifest *config.Manifest) (*source.Context, error) {
	style := &config.CodeStyle{IndentWidth: manifest.CodeStyle.IndentWidth}
	ctx := source.NewContext(manifest.Namespace, style, manifest.HeaderOnly)

	namespaces := make(map[string]*kernel.KernelNamespace)

	for _, nsDecl := range manifest.KernelNamespaces {
		ns := kernel.NewNamespace(nsDecl.Name)
		for _, kDecl := range nsDecl.Kernels {
			params := make([]kernel.Param, 0, len(kDecl.Params))
			for _, pDecl := range kDecl.Params {
				p, err := kernel.NewParam(pDecl.Name, pDecl.Type)
				if err != nil {
					return nil, fmt.Errorf("parameter %q of kernel %q: %w",
						pDecl.Name, kDecl.Name, err)
				}
				params = append(params, p)
			}
			if _, err := ns.Add(kDecl.Name, params,
				kDecl.Signature, kDecl.Definition, kDecl.Headers...); err != nil {
				return nil, err
			}
			log.Infof("registered kernel %s::%s (%d parameters)",
				nsDecl.Name, kDecl.Name, len(params))
		}
		if err := ctx.AddKernelNamespace(ns); err != nil {
			return nil, err
		}
		namespaces[nsDecl.Name] = ns
	}

	for _, fnDecl := range manifest.Functions {
		handle, err := resolveKernel(namespaces, fnDecl.Kernel)
		if err != nil {
			return nil, err
		}

		returnType := lang.MustParseType("void")
		if fnDecl.ReturnType != "" {
			returnType, err = lang.ParseType(fnDecl.ReturnType)
			if err != nil {
				return nil, fmt.Errorf("return type of function %q: %w", fnDecl.Name, err)
			}
		}

		body := tree.NewSequence(tree.NewKernelCall(handle))
		fn, err := source.NewFunction(source.FunctionSpec{
			Name:       fnDecl.Name,
			ReturnType: returnType,
			Inline:     fnDecl.Inline,
		}, body)
		if err != nil {
			return nil, err
		}
		if err := ctx.AddFunction(fn); err != nil {
			return nil, err
		}
		log.Infof("generated wrapper %s -> %s", fnDecl.Name, handle.QualifiedName())
	}

	return ctx, nil
}

// resolveKernel looks up a "<namespace>::<kernel>" reference.
func resolveKernel(namespaces map[string]*kernel.KernelNamespace, ref string) (*kernel.Handle, error) {
	parts := strings.SplitN(ref, "::", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("kernel reference %q must be qualified as <namespace>::<kernel>", ref)
	}
	ns, ok := namespaces[parts[0]]
	if !ok {
		return nil, fmt.Errorf("unknown kernel namespace %q", parts[0])
	}
	h, ok := ns.Get(parts[1])
	if !ok {
		return nil, fmt.Errorf("unknown kernel %q in namespace %q", parts[1], parts[0])
	}
	return h, nil
}

func collectWarnings(ctx *source.Context) []errors.GenError {
	var warnings []errors.GenError
	for _, fn := range ctx.Functions() {
		warnings = append(warnings, fn.Warnings()...)
	}
	for _, cls := range ctx.Classes() {
		for _, m := range cls.Methods() {
			warnings = append(warnings, m.Warnings()...)
		}
	}
	return warnings
}

func emit(ctx *source.Context, manifest *config.Manifest, dir string) ([]string, error) {
	header, impl := printer.Prepare(ctx, manifest.Output)
	p := printer.NewFilePrinter(ctx.Style())

	var written []string
	for _, f := range []*printer.SourceFile{header, impl} {
		if f == nil {
			continue
		}
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(p.Print(f)), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, f.Name)
	}
	return written, nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
