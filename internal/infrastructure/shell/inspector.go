// Package shell inspects candidate commands with a shell parser.
package shell

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/neuron-cli/neuron/internal/ports"
)

// Inspector reports structural facts about a command using a POSIX/Bash parser.
type Inspector struct{}

// NewInspector builds an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// ChainsOperations reports whether the command runs more than one operation:
// a pipeline, an && / || list, or several statements. Text that does not
// parse falls back to looking for "|" and "&&".
func (i *Inspector) ChainsOperations(command string) bool {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return strings.Contains(command, "|") || strings.Contains(command, "&&")
	}
	if len(file.Stmts) > 1 {
		return true
	}

	chained := false
	syntax.Walk(file, func(node syntax.Node) bool {
		if chained {
			return false
		}
		if bin, ok := node.(*syntax.BinaryCmd); ok {
			switch bin.Op {
			case syntax.Pipe, syntax.PipeAll, syntax.AndStmt, syntax.OrStmt:
				chained = true
			}
		}
		return !chained
	})
	return chained
}

var _ ports.CommandInspector = (*Inspector)(nil)
