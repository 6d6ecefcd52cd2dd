// Command pdf417 encodes a string into a PDF417 or MicroPDF417 symbol.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ericlevine/pdf417"
	"github.com/ericlevine/pdf417/bitutil"
	"github.com/ericlevine/pdf417/writer"
)

var g = struct {
	fn         string            // filename
	format     int               // output file format
	rev        bool              // reverse colours
	level      int               // error correction level, or writer.AutoLevel
	rows, cols int               // maximum rows and columns
	scaleX     int               // module width in pixels
	scaleY     int               // row height in pixels
	margin     int               // quiet zone pixels, -1 for default
	charset    string            // character set name
	compaction writer.Compaction // compaction mode
	variant    pdf417.Variant    // symbol variant
	invert     bool              // invert the symbol, not the quiet zone
	verbose    bool              // debug logging
	codewords  bool              // print codewords instead of an image

	transforms []func(*bitutil.BitMatrix) // -f and -r in command line order
}{
	level:  writer.AutoLevel,
	margin: -1,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "PDF417 barcode generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: automatic compaction, character set and
error correction level.

The bar patterns are generated from the structural rules of the symbology,
not the ISO tables, so symbols are not yet readable by standard scanners.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`pdf417 version 0.1.0`)
	os.Exit(0)
}

func flip() {
	g.transforms = append(g.transforms, (*bitutil.BitMatrix).Mirror)
}

func rotate() {
	g.transforms = append(g.transforms, (*bitutil.BitMatrix).Rotate90)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version").SetFlag()
	getopt.Flag(&g.verbose, 'v', "log encoder decisions to standard error")
	getopt.Flag(&g.codewords, 'w', "print the sealed codewords instead of an image")
	getopt.Flag(opt(flip), 'f', `flip symbol horizontally`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate symbol 90° counterclockwise; `+
		`-r and -f may be given multiple times, order matters`).SetFlag()
	getopt.Flag(&g.invert, 'I', "invert the symbol, keeping the quiet zone light")
	getopt.FlagLong(&g.charset, "charset", 'e', `character set for byte `+
		`compaction, announced with an ECI designator, e.g. "ISO-8859-1", "UTF-8"`,
		"name")
	getopt.Flag(&g.margin, 'm', "quiet zone pixels [2 modules]", "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"auto", "0", "1", "2", "3", "4", "5", "6", "7", "8"}, "auto",
		"error correction level", "auto|0-8")
	rows := getopt.Unsigned('R', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: pdf417.MaxRows},
		"maximum number of rows, 0 for no limit", "rows")
	cols := getopt.Unsigned('c', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: pdf417.MaxCols},
		"maximum number of data columns, 0 for no limit; "+
			"for MicroPDF417 the exact column count", "cols")
	scale := getopt.Unsigned('s', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 64},
		`image pixels per module; ignored for types utf8[i] and ascii[i]`, "scale")
	height := getopt.Unsigned('y', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 64},
		`row height in modules [3, MicroPDF417: 2]`, "height")
	cmode := getopt.Enum('C', []string{"auto", "text", "byte", "numeric"}, "auto",
		"compaction mode", "mode")
	variant := getopt.Enum('T', []string{"standard", "truncated", "micro"}, "standard",
		"symbol variant", "variant")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()

	var err error
	if *lev != "auto" {
		g.level = int((*lev)[0] - '0')
	}
	if g.compaction, err = writer.ParseCompaction(*cmode); err != nil {
		log.Fatalln(err)
	}
	if g.variant, err = pdf417.ParseVariant(*variant); err != nil {
		log.Fatalln(err)
	}
	if g.variant == pdf417.Micro && getopt.IsSet('l') {
		fmt.Fprintln(os.Stderr, "-l has no effect on MicroPDF417 symbols")
	}
	g.rows, g.cols = int(*rows), int(*cols)

	dx, dy := pdf417.DefaultScale(g.variant)
	if *height != 0 {
		dy = int(*height)
	}
	if *scale != 0 {
		dx, dy = dx*int(*scale), dy*int(*scale)
	}
	g.scaleX, g.scaleY = dx, dy

	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func newLogger() *zap.Logger {
	if !g.verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalln(err)
	}
	return l
}

func main() {
	log.SetFlags(0)
	parseFlags()
	logger := newLogger()
	defer logger.Sync()
	writer.SetLogger(logger)

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	opts := []writer.Option{
		writer.WithLevel(g.level),
		writer.WithCompaction(g.compaction),
		writer.WithCharset(g.charset),
		writer.WithVariant(g.variant),
		writer.WithMaxDimensions(g.rows, g.cols),
		writer.WithScale(g.scaleX, g.scaleY),
		writer.WithInverted(g.invert),
	}
	if g.margin >= 0 {
		opts = append(opts, writer.WithMargin(g.margin))
	}
	w := writer.New(opts...)

	if g.codewords {
		codewords, spec, err := w.Codewords(s)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%s %dx%d level %d\n", spec.Variant, spec.Rows, spec.Cols, spec.Level)
		for y := 0; y < spec.Rows; y++ {
			fmt.Println(codewords[y*spec.Cols : (y+1)*spec.Cols])
		}
		return
	}

	m, err := w.Encode(s)
	if err != nil {
		log.Fatalln(err)
	}
	write(m)
}

func write(m *bitutil.BitMatrix) {
	for _, t := range g.transforms {
		t(m)
	}
	if g.rev {
		m.Invert()
	}
	out := os.Stdout
	if g.fn != "" {
		var err error
		if out, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	} else if formats[g.format<<1] == "utf8" || formats[g.format<<1] == "ascii" {
		fd := int(out.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && textColumns(m, g.format) > width {
				fmt.Fprintf(os.Stderr, "symbol is %d columns wide, terminal has %d\n",
					textColumns(m, g.format), width)
			}
		}
	}
	err := encoders[g.format](m, out)
	if g.fn != "" && err == nil {
		err = out.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
