package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter handles consistent diagnostic formatting for terminal output.
type Reporter struct {
	artifact string // name of the artifact being generated, e.g. "Algorithms.hpp"
}

// NewReporter creates a reporter for one output artifact.
func NewReporter(artifact string) *Reporter {
	return &Reporter{artifact: artifact}
}

// Format renders a diagnostic in the style "error[E0300]: message".
func (r *Reporter) Format(err GenError) string {
	var result strings.Builder

	levelColor := r.levelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	if r.artifact != "" {
		result.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), r.artifact))
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("  %s %s\n", noteColor("note:"), note))
	}

	return result.String()
}

// FormatAll renders a list of diagnostics, errors before warnings.
func (r *Reporter) FormatAll(errs []GenError) string {
	var result strings.Builder
	for _, e := range errs {
		if e.Level == Error {
			result.WriteString(r.Format(e))
		}
	}
	for _, e := range errs {
		if e.Level != Error {
			result.WriteString(r.Format(e))
		}
	}
	return result.String()
}

func (r *Reporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
