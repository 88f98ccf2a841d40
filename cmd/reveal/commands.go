package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/reveal/animation"
	"github.com/npillmayer/reveal/dom"
	"github.com/npillmayer/reveal/dom/domdbg"
	"github.com/npillmayer/reveal/entity"
	"github.com/npillmayer/reveal/reveal"
	"github.com/npillmayer/reveal/splitter"
	"github.com/npillmayer/reveal/trigger"
	"github.com/npillmayer/reveal/tween"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

func newSplitCmd() *cobra.Command {
	var tokens bool
	cmd := &cobra.Command{
		Use:   "split [markup]",
		Short: "Split a fragment of markup into words and letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := input(cmd, args)
			if err != nil {
				return err
			}
			r := splitter.Split(markup)
			out := cmd.OutOrStdout()
			if tokens {
				for i, line := range r.Lines() {
					for _, tok := range line {
						fmt.Fprintf(out, "%d\t%s\n", i+1, tok)
					}
				}
				return nil
			}
			fmt.Fprintln(out, r.HTML())
			return nil
		},
	}
	cmd.Flags().BoolVar(&tokens, "tokens", false, "print the tokens of every line instead of HTML")
	return cmd
}

func newTreeCmd() *cobra.Command {
	var dot bool
	cmd := &cobra.Command{
		Use:   "tree [markup]",
		Short: "Print the tree of a split fragment",
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := input(cmd, args)
			if err != nil {
				return err
			}
			r := splitter.Split(markup)
			if dot {
				domdbg.ToGraphViz(cmd.OutOrStdout(), r.Nodes()...)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), domdbg.PrintTree(r.Nodes()...))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "output a GraphViz diagram")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode the HTML entities recognized by the splitter",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), entity.Decode(text))
			return nil
		},
	}
}

func newAnimationsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "animations",
		Short: "List the animation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range table.Names() {
				d, _ := table.Lookup(name)
				if d.Strategy == animation.From {
					fmt.Fprintf(out, "%-20s %-7s %s\n", name, d.Strategy, d.From)
					continue
				}
				fmt.Fprintf(out, "%-20s %-7s %s → %s\n", name, d.Strategy, d.From, d.To)
			}
			return nil
		},
	}
}

// prerender splits the text containers of a document. Unknown animations
// and triggers are reported.
func newPrerenderCmd(opts *options) *cobra.Command {
	var hide bool
	cmd := &cobra.Command{
		Use:   "prerender [file]",
		Short: "Split every text-reveal container of an HTML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			doc, err := dom.ParseDocument(r)
			if err != nil {
				return err
			}
			table, err := opts.table()
			if err != nil {
				return err
			}
			elements, err := dom.QueryAll(doc, "["+reveal.AttrAnimation+"]")
			if err != nil {
				return err
			}
			animator := tween.NewRecorder()
			for _, el := range elements {
				name, _ := dom.Attr(el, reveal.AttrAnimation)
				if name == reveal.Animation {
					if hide {
						reveal.Prerender(el, animator)
					} else {
						splitter.Apply(el)
					}
					continue
				}
				if _, err := table.Lookup(name); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "<%s>: %v\n", el.Data, err)
				}
				attr, _ := dom.Attr(el, reveal.AttrTrigger)
				if _, err := trigger.Parse(attr); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "<%s>: %v\n", el.Data, err)
				}
			}
			var b strings.Builder
			if err := html.Render(&b, doc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&hide, "hide", false, "put letters into their hidden state")
	return cmd
}
