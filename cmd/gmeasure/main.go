package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mastercactapus/gspatial/coord"
	"github.com/mastercactapus/gspatial/measure"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] area A B C | volume A B C D\n\nPoints are comma-separated coordinates, e.g. 0,0,1.\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(log.Lshortfile)

	precision := flag.Int("precision", 3, "Number of decimal places to print.")
	verbose := flag.Bool("v", false, "Log each computation.")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	res, err := run(flag.Arg(0), flag.Args()[1:])
	if err != nil {
		log.Printf("ERROR: %s: %v", flag.Arg(0), err)
		os.Exit(1)
	}
	if *verbose {
		log.Printf("%s %v = %v", flag.Arg(0), flag.Args()[1:], res)
	}

	fmt.Println(strconv.FormatFloat(res, 'f', *precision, 64))
}

func run(cmd string, args []string) (float64, error) {
	var n int
	switch cmd {
	case "area":
		n = 3
	case "volume":
		n = 4
	default:
		return 0, fmt.Errorf("unknown command '%s'", cmd)
	}
	if len(args) != n {
		return 0, fmt.Errorf("expected %d points, got %d", n, len(args))
	}

	pts := make([]coord.Point, n)
	for i, s := range args {
		p, err := parsePoint(s)
		if err != nil {
			return 0, err
		}
		pts[i] = p
	}

	if n == 3 {
		return measure.AreaTriangle(pts[0], pts[1], pts[2])
	}
	return measure.VolumeTetrahedron(pts[0], pts[1], pts[2], pts[3])
}
