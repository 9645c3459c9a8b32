package jffs2

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/jffs2team/jffs2extract/internal/logx"
)

// Options configures a run of Extract.
type Options struct {
	// Dest is the destination root directory; each surviving logical
	// filesystem materializes into Dest/fs_N.
	Dest string

	// Concurrency bounds how many logical filesystems materialize at
	// once. Writes within one file always serialize; distinct logical
	// filesystems are independent and may run in parallel. Values < 1
	// are treated as 1 (sequential).
	Concurrency int

	// DryRun performs scanning, joining and path resolution but skips
	// all host writes.
	DryRun bool

	// ListOnly skips materialization entirely (dry-run is implied) and
	// only computes per-filesystem inventory counts.
	ListOnly bool

	Logger *logx.Logger
}

// FSReport is a per-logical-filesystem inventory, the basis of --list
// output and the summary printed after a normal run.
type FSReport struct {
	ID        string
	BigEndian bool

	Dirents   int
	Inodes    int
	Xattrs    int
	Xrefs     int
	Summaries int

	CRCErrors        int
	DecompressErrors int
}

// Report summarizes one Extract run.
type Report struct {
	Filesystems []FSReport
}

// Extract scans image for both endiannesses, discards logical filesystems
// with no dirents, and materializes the survivors under opts.Dest (unless
// opts.DryRun or opts.ListOnly).
func Extract(image []byte, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = logx.Discard
	}

	beFSs := Scan(image, binary.BigEndian, true, log)
	leFSs := Scan(image, binary.LittleEndian, false, log)
	all := make([]*LogicalFS, 0, len(beFSs)+len(leFSs))
	all = append(all, beFSs...)
	all = append(all, leFSs...)

	survivors := make([]*LogicalFS, 0, len(all))
	for _, fs := range all {
		if len(fs.Dirents) == 0 {
			continue
		}
		survivors = append(survivors, fs)
	}
	log.Infof("found %d candidate logical filesystems, %d non-empty", len(all), len(survivors))

	sink := Sink(NewOSSink())
	if opts.DryRun || opts.ListOnly {
		sink = NewDryRunSink()
	}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	reports := make([]FSReport, len(survivors))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fs := survivors[i]
				id := fmt.Sprintf("fs_%d", i+1)
				reports[i] = buildFSReport(id, fs)
				if opts.ListOnly {
					continue
				}
				destDir := filepath.Join(opts.Dest, id)
				if err := Materialize(fs, destDir, sink, log); err != nil {
					log.Warnf("%s: %v", id, err)
				}
			}
		}()
	}
	for i := range survivors {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &Report{Filesystems: reports}, nil
}

func buildFSReport(id string, fs *LogicalFS) FSReport {
	r := FSReport{
		ID:        id,
		BigEndian: fs.BigEndian,
		Dirents:   len(fs.Dirents),
		Inodes:    len(fs.Inodes),
		Xattrs:    len(fs.Xattrs),
		Xrefs:     len(fs.Xrefs),
		Summaries: len(fs.Summaries),
	}
	for _, d := range fs.Dirents {
		if !d.NodeCRCOK || !d.NameCRCOK {
			r.CRCErrors++
		}
	}
	for _, in := range fs.Inodes {
		if !in.NodeCRCOK || !in.DataCRCOK {
			r.CRCErrors++
		}
		if in.DecompressFailed {
			r.DecompressErrors++
		}
	}
	return r
}
