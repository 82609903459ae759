// Command svgfilterc compiles the filters of an SVG document and prints
// the resulting backend graphs.
//
// Usage:
//
//	svgfilterc -in drawing.svg [-id element] [-bounds x,y,w,h] [-v]
//
// Each element carrying a filter property is compiled against a recording
// backend. The recorded ops are listed one per line, followed by the
// primitives that failed to build.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/asset"
	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/filter/record"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
	"github.com/gogpu/svgfilter/svgdoc"
)

// pipeName reads the document from stdin.
const pipeName = "-"

func main() {
	color := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, color); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, decorate("svgfilterc: "+err.Error(), errorMessage, color))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, color bool) error {
	fs := flag.NewFlagSet("svgfilterc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in       = fs.String("in", pipeName, "SVG document, - for stdin")
		id       = fs.String("id", "", "compile only the element with this ID")
		bounds   = fs.String("bounds", "0,0,100,100", "element bounding box x,y,w,h")
		viewport = fs.String("viewport", "", "viewport x,y,w,h (default: the bounding box)")
		maxDim   = fs.Int("maxdim", asset.DefaultMaxDimension, "largest side kept for decoded images")
		verbose  = fs.Bool("v", false, "log compile diagnostics")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	bbox, err := parseRect(*bounds)
	if err != nil {
		return fmt.Errorf("-bounds: %w", err)
	}
	opts := []svgfilter.Option{
		svgfilter.WithFragmentRenderer(filter.FragmentRendererFunc(snapshot)),
	}
	if *viewport != "" {
		vp, err := parseRect(*viewport)
		if err != nil {
			return fmt.Errorf("-viewport: %w", err)
		}
		opts = append(opts, svgfilter.WithViewport(vp))
	}
	if *verbose {
		svgfilter.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer svgfilter.SetLogger(nil)
	}

	src, dir := stdin, "."
	if *in != pipeName {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		src, dir = f, filepath.Dir(*in)
	}
	doc, err := svgdoc.Parse(src)
	if err != nil {
		return err
	}

	elements := doc.Elements()
	if *id != "" {
		el, ok := doc.Element(*id)
		if !ok {
			return fmt.Errorf("no filtered element with id %q", *id)
		}
		elements = []model.Element{el}
	}
	if len(elements) == 0 {
		fmt.Fprintln(stderr, decorate("no filtered elements", statusMessage, color))
		return nil
	}

	loader := asset.NewLoader(
		asset.WithFS(os.DirFS(dir)),
		asset.WithMaxDimension(*maxDim),
		asset.WithLogger(svgfilter.Logger()),
	)
	content := &filter.StaticSource{
		Graphic:    &filter.Picture{Cull: bbox, Transform: geom.Identity()},
		Background: &filter.Picture{Cull: bbox, Transform: geom.Identity()},
		Fill:       filter.NewColorPaint(filter.Black),
	}

	failed := 0
	for _, el := range elements {
		if !compileElement(stdout, el, bbox, content, loader, color, opts) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d filters invalid", failed, len(elements))
	}
	return nil
}

// compileElement prints the graph of one element and reports whether its
// filter is valid.
func compileElement(w io.Writer, el model.Element, bbox geom.Rect, content filter.ContentSource,
	loader filter.AssetLoader, color bool, opts []svgfilter.Option) bool {
	f := record.NewFactory()
	res, err := svgfilter.CompileGraph(el, bbox, content, loader, append(opts, svgfilter.WithFactory(f))...)

	fmt.Fprintln(w, decorate(fmt.Sprintf("%s: filter=%s", elementName(el), el.Filter), statusMessage, color))
	if res != nil && len(res.Definitions) > 0 {
		fmt.Fprintf(w, "  chain %v region %s", res.Definitions, formatRect(res.FilterRegion))
		if res.Cyclic {
			fmt.Fprint(w, " (cycle cut)")
		}
		fmt.Fprintln(w)
	}
	if err == nil {
		_ = f.Dump(w)
	}
	if res != nil {
		for _, oc := range res.Outcomes {
			if oc.Err != nil {
				msg := fmt.Sprintf("  primitive %d (%s): %v", oc.Index, oc.Kind, oc.Err)
				fmt.Fprintln(w, decorate(msg, warnMessage, color))
			}
		}
	}
	if err != nil {
		fmt.Fprintln(w, decorate("  invalid: "+err.Error(), errorMessage, color))
		return false
	}
	return true
}

// snapshot stands in for a renderer: the fragment is recorded as an empty
// picture covering dst.
func snapshot(frag filter.Fragment, dst geom.Rect, m geom.Matrix) (*filter.Picture, error) {
	return &filter.Picture{Cull: dst, Transform: m, Payload: frag}, nil
}

func elementName(el model.Element) string {
	if el.ID == "" {
		return "(anonymous)"
	}
	return "#" + el.ID
}
