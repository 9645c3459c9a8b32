// Command jffs2extract scans a JFFS2 image (or an archive containing one)
// and reconstructs each logical filesystem it finds onto the host disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jffs2team/jffs2extract/input"
	"github.com/jffs2team/jffs2extract/internal/logx"
	"github.com/jffs2team/jffs2extract/jffs2"
	"github.com/jffs2team/jffs2extract/pkg/fileio"
)

const appVersion = "0.1.0"

var (
	dest        = flag.String("d", "jffs2-root", "destination directory for extracted filesystems")
	verboseFlag = flag.Bool("v", false, "verbose output (use -vv for more detail; repeating -v adds nothing)")
	veryVerbose = flag.Bool("vv", false, "very verbose output")
	force       = flag.Bool("f", false, "overwrite an existing destination directory")
	listOnly    = flag.Bool("list", false, "print per-filesystem inventory counts and exit without writing")
	dryRun      = flag.Bool("dry-run", false, "scan and resolve paths but skip all host writes")
	concurrency = flag.Int("j", 4, "number of logical filesystems to materialize concurrently")
	version     = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <filesystem>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts a JFFS2 image to a host directory.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s flash.img\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -d out -v flash.img\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --list firmware.zip\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dry-run dump.7z\n", os.Args[0])
	}
	flag.StringVar(dest, "dest", *dest, "same as -d")
	flag.BoolVar(verboseFlag, "verbose", false, "same as -v")
	flag.BoolVar(force, "force", false, "same as -f")
	flag.Parse()

	if *version {
		fmt.Printf("jffs2extract version %s\n", appVersion)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: exactly one filesystem path is required")
		flag.Usage()
		os.Exit(2)
	}

	verbosity := 0
	if *verboseFlag {
		verbosity = 1
	}
	if *veryVerbose {
		verbosity = 2
	}
	log := logx.New(verbosity)

	os.Exit(run(flag.Arg(0), log))
}

func run(path string, log *logx.Logger) int {
	image, err := input.Open(path, log)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	if !*listOnly && !*dryRun {
		if !*force {
			if err := fileio.CheckNotExists(*dest); err != nil {
				log.Errorf("destination exists, pass -f to overwrite: %s", *dest)
				return 1
			}
		}
	}

	report, err := jffs2.Extract(image, jffs2.Options{
		Dest:        *dest,
		Concurrency: *concurrency,
		DryRun:      *dryRun,
		ListOnly:    *listOnly,
		Logger:      log,
	})
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	printReport(report)
	return 0
}

func printReport(report *jffs2.Report) {
	if len(report.Filesystems) == 0 {
		fmt.Println("no non-empty logical filesystems found")
		return
	}

	for _, fs := range report.Filesystems {
		endian := "little-endian"
		if fs.BigEndian {
			endian = "big-endian"
		}
		fmt.Printf("%s (%s): %d dirents, %d inodes, %d xattrs, %d xrefs, %d summaries",
			fs.ID, endian, fs.Dirents, fs.Inodes, fs.Xattrs, fs.Xrefs, fs.Summaries)
		if fs.CRCErrors > 0 || fs.DecompressErrors > 0 {
			fmt.Printf(" (%d crc errors, %d decompress errors)", fs.CRCErrors, fs.DecompressErrors)
		}
		fmt.Println()
	}
}
