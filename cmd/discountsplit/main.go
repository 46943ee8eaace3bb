package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "calc":
		if err := runCalc(os.Args[2:], os.Stdout, os.Stderr); err != nil {
			fail(err)
		}
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "discountsplit - split a discounted bill proportionally")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  discountsplit calc -p Andi=25000 -p Budi=18000 -after 30000 [-before 43000] [-step 100]")
	fmt.Fprintln(os.Stderr, "  discountsplit calc -p Andi=25000 -p Budi=18000 -after 30000 -share whatsapp")
	fmt.Fprintln(os.Stderr, "  discountsplit version")
}

func fail(err error) {
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(exitCode(err))
}
