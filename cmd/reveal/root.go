package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/reveal/animation"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type options struct {
	traceLevel string
	animations string // path to an animation table
}

// NewRootCmd creates the root command with all sub-commands.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "reveal",
		Short: "Split HTML text into words and letters for reveal animations",
		Long: `reveal splits the content of HTML text containers into word and letter
elements, keeping inline markup intact, and inspects the reveal animations
declared by data-ld-* attributes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			tracer := gologadapter.New()
			tracer.SetOutput(cmd.ErrOrStderr())
			tracer.SetTraceLevel(tracing.TraceLevelFromString(opts.traceLevel))
			tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
				return tracer
			}))
			tracer.Debugf("command %s started", cmd.Name())
		},
	}
	root.PersistentFlags().StringVarP(&opts.traceLevel, "trace", "t", "Error",
		"trace level (Error, Info, Debug)")
	root.PersistentFlags().StringVar(&opts.animations, "animations", "",
		"animation table in YAML format (default is the built-in table)")
	root.AddCommand(
		newSplitCmd(),
		newTreeCmd(),
		newDecodeCmd(),
		newPrerenderCmd(opts),
		newAnimationsCmd(opts),
	)
	return root
}

// input returns the arguments joined by blanks, or stdin if there are none.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// table returns the animation table selected by flag --animations.
func (opts *options) table() (*animation.Table, error) {
	if opts.animations == "" {
		return animation.Default(), nil
	}
	f, err := os.Open(opts.animations)
	if err != nil {
		return nil, fmt.Errorf("opening animation table: %w", err)
	}
	defer f.Close()
	return animation.Load(f)
}
