// Command attackgen writes x88/attack_table.go. It builds the table from
// internal/geom only, so it still runs when the generated file is missing.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"github.com/fatih/color"

	"chess-x88/internal/geom"
)

func main() {
	out := flag.String("o", "attack_table.go", "Output file for the generated table")
	pkg := flag.String("pkg", "x88", "Package name of the generated file")
	dump := flag.Bool("dump", false, "Print the table as a grid of offsets instead of writing a file")
	check := flag.Bool("check", false, "Exit 1 if the file named by -o differs from what would be generated")
	center := flag.String("center", "", "With -dump, print categories as seen from this square (e.g. e4)")
	flag.Parse()

	table := geom.AttackTable()

	if *dump {
		if *center != "" {
			sq, err := parseSquare(*center)
			if err != nil {
				fmt.Fprintf(os.Stderr, "-center: %v\n", err)
				os.Exit(2)
			}
			dumpBoard(table, sq)
			return
		}
		dumpOffsets(table)
		return
	}

	src, err := render(*pkg, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "format: %v\n", err)
		os.Exit(2)
	}

	if *check {
		have, err := os.ReadFile(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", *out, err)
			os.Exit(1)
		}
		if !bytes.Equal(have, src) {
			fmt.Fprintf(os.Stderr, "%s is out of date; run go generate ./x88\n", *out)
			os.Exit(1)
		}
		fmt.Printf("%s up to date\n", *out)
		return
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(2)
	}
}

func render(pkg string, table [geom.TableSize]uint8) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by attackgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// attackTable is indexed by OffsetCode(from, to).\n")
	fmt.Fprintf(&buf, "var attackTable = [TableSize]Category{\n")
	for code, c := range table {
		if code%16 == 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprintf(&buf, "%d,", c)
		if code%16 == 15 || code == len(table)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}

// parseSquare reads algebraic notation into a 0x88 index.
func parseSquare(s string) (int, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("bad square %q", s)
	}
	return geom.Square(int(s[0]-'a'), int(s[1]-'1')), nil
}

var palette = [...]*color.Color{
	geom.None:         color.New(color.FgHiBlack),
	geom.KQR:          color.New(color.FgHiRed, color.Bold),
	geom.QR:           color.New(color.FgRed),
	geom.KQBWhitePawn: color.New(color.FgHiWhite, color.Bold),
	geom.KQBBlackPawn: color.New(color.FgHiBlue, color.Bold),
	geom.QB:           color.New(color.FgBlue),
	geom.Knight:       color.New(color.FgGreen, color.Bold),
}

// dumpOffsets prints the 15x15 grid of rank/file differences, north at the
// top, with the origin in the middle.
func dumpOffsets(table [geom.TableSize]uint8) {
	for dr := 7; dr >= -7; dr-- {
		for df := -7; df <= 7; df++ {
			if dr == 0 && df == 0 {
				fmt.Print(" @")
				continue
			}
			c := table[dr*16+df+geom.OffsetBias]
			palette[c].Printf(" %d", c)
		}
		fmt.Println()
	}
	legend()
}

// dumpBoard prints the category of every square as seen from sq.
func dumpBoard(table [geom.TableSize]uint8, sq int) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			to := geom.Square(file, rank)
			if to == sq {
				fmt.Print(" @")
				continue
			}
			c := table[to-sq+geom.OffsetBias]
			palette[c].Printf(" %d", c)
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
	legend()
}

func legend() {
	for c, name := range geom.Names {
		palette[c].Printf("%d=%s ", c, name)
	}
	fmt.Println()
}
