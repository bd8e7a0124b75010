package main

import (
	"context"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/clbanning/mxj"
	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmlpick"
)

type cmdopts struct {
	Paths     []string `short:"p" long:"path" description:"element path to match (may be repeated)"`
	JSON      bool     `long:"json" description:"print matched elements as JSON instead of XML"`
	ChunkSize int      `long:"chunk-size" default:"1024" description:"read size for stream sources"`
	Version   bool     `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmlpick: using xmlpick version %s\n", xmlpick.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmlpick [options] -p /path/to/element/ XMLfiles ...
	Extract elements matching the given paths and print each one
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	if len(opts.Paths) == 0 {
		showUsage()
		return 1
	}

	r := xmlpick.New()
	for _, path := range opts.Paths {
		err := r.RegisterCallback(path, func(_ *xmlpick.Reader, elem *etree.Element) {
			if err := printElement(elem, opts.JSON); err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	ctx := context.Background()

	if len(args) == 0 {
		if err := r.ParseReader(ctx, os.Stdin, xmlpick.WithChunkSize(opts.ChunkSize)); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		return 0
	}

	for _, fn := range args {
		fh, err := os.Open(fn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		err = r.ParseReader(ctx, fh, xmlpick.WithChunkSize(opts.ChunkSize))
		fh.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}
	return 0
}

func printElement(elem *etree.Element, asJSON bool) error {
	doc := etree.NewDocument()
	doc.SetRoot(elem.Copy())

	if !asJSON {
		doc.Indent(2)
		s, err := doc.WriteToString()
		if err != nil {
			return err
		}
		fmt.Print(s)
		return nil
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	mv, err := mxj.NewMapXml(raw)
	if err != nil {
		return err
	}
	buf, err := mv.JsonIndent("", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", buf)
	return nil
}
