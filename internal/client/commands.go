// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/index"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/internal/workers"
	"github.com/MKhiriev/go-rm-cloud/models"
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	var code string
	switch len(args) {
	case 0:
		var err error
		if code, err = a.readCode(); err != nil {
			return fmt.Errorf("read one-time code: %w", err)
		}
	case 1:
		code = args[0]
	default:
		return fmt.Errorf("%w: register takes at most one code", ErrUsage)
	}

	if err := a.auth.RegisterDevice(ctx, code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "device registered")
	return nil
}

func (a *App) ls(ctx context.Context, args []string) error {
	fs := a.newFlagSet("ls")
	var recursive bool
	fs.BoolVar(&recursive, "r", false, "list recursively")
	fs.BoolVar(&recursive, "recursive", false, "list recursively")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"/"}
	}

	if recursive {
		idx, err := a.docs.Index(ctx)
		if err != nil {
			return err
		}
		var errs []error
		for _, path := range paths {
			tree, err := renderTree(idx, path)
			if err != nil {
				errs = append(errs, err)
				fmt.Fprintf(a.out, "cannot find %s\n", path)
				continue
			}
			fmt.Fprint(a.out, tree)
		}
		return errors.Join(errs...)
	}

	var errs []error
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, path := range paths {
		docs, err := a.docs.List(ctx, path)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintf(w, "cannot find %s\n", path)
			continue
		}
		if len(paths) > 1 {
			fmt.Fprintf(w, "%s:\n", path)
		}
		for _, doc := range docs {
			fmt.Fprintf(w, "%s\t%s\n", displayName(doc), doc.ID)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func (a *App) describe(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: info needs at least one path", ErrUsage)
	}

	idx, err := a.docs.Index(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, path := range args {
		doc, ok := idx.ResolvePath(index.SplitPath(path))
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", service.ErrDocumentNotFound, path))
			fmt.Fprintf(a.out, "cannot find %s\n", path)
			continue
		}
		fmt.Fprintln(a.out, renderInfo(idx, doc))
	}
	return errors.Join(errs...)
}

func (a *App) pull(ctx context.Context, args []string) error {
	fs := a.newFlagSet("pull")
	dir := fs.String("o", ".", "directory to write archives to")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: pull needs at least one path", ErrUsage)
	}

	idx, err := a.docs.Index(ctx)
	if err != nil {
		return err
	}

	var (
		errs    []error
		jobs    []*pullJob
		claimed = map[string]bool{}
		queued  = map[uuid.UUID]bool{}
	)
	for _, path := range fs.Args() {
		doc, ok := idx.ResolvePath(index.SplitPath(path))
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", service.ErrDocumentNotFound, path))
			fmt.Fprintf(a.out, "cannot find %s\n", path)
			continue
		}
		if doc.IsFolder() {
			errs = append(errs, fmt.Errorf("%s: %w", path, errIsFolder))
			fmt.Fprintf(a.out, "skipping folder %s\n", path)
			continue
		}
		// Two paths may name the same notebook.
		if queued[doc.ID] {
			fmt.Fprintf(a.out, "%s already queued\n", path)
			continue
		}
		queued[doc.ID] = true

		target := claimTarget(claimed, *dir, doc)
		jobs = append(jobs, &pullJob{docs: a.docs, path: path, id: doc.ID, target: target})
	}

	pool := make([]workers.Worker, len(jobs))
	for i, job := range jobs {
		pool[i] = job
	}
	if err := workers.New(pullParallelism, pool...).Run(ctx); err != nil {
		errs = append(errs, err)
	}
	for _, job := range jobs {
		if job.done {
			fmt.Fprintf(a.out, "%s -> %s\n", job.path, job.target)
		}
	}
	return errors.Join(errs...)
}

const pullParallelism = 4

// pullJob downloads one notebook archive to target.
type pullJob struct {
	docs   service.ClientDocumentService
	path   string
	id     uuid.UUID
	target string
	done   bool
}

func (j *pullJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, data, err := j.docs.Download(ctx, j.id)
	if err != nil {
		log.Error().Err(err).Str("document_id", j.id.String()).Msg("download failed")
		return fmt.Errorf("pull %s: %w", j.path, err)
	}
	if err = os.WriteFile(j.target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", j.target, err)
	}

	log.Debug().
		Str("document_id", j.id.String()).
		Str("target", j.target).
		Int("bytes", len(data)).
		Msg("archive written")
	j.done = true
	return nil
}

var errIsFolder = errors.New("is a folder")

// claimTarget picks an unclaimed archive path in dir for doc and claims it.
// Siblings may share a visible name, and a visible name may itself look like
// an earlier disambiguated one, so candidates are tried until one is free.
func claimTarget(claimed map[string]bool, dir string, doc *models.Document) string {
	target := filepath.Join(dir, archiveFileName(doc.VisibleName))
	short := doc.ID.String()[:8]
	for n := 1; claimed[target]; n++ {
		suffix := "-" + short
		if n > 1 {
			suffix += "-" + strconv.Itoa(n)
		}
		target = filepath.Join(dir, archiveFileName(doc.VisibleName+suffix))
	}
	claimed[target] = true
	return target
}

// archiveFileName turns a visible name into a file name. Visible names may
// contain characters that are path separators locally.
func archiveFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)
	if strings.Trim(name, ".") == "" {
		name = "document"
	}
	return name + ".zip"
}

func (a *App) push(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: push needs an archive and a destination path", ErrUsage)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}

	result, err := a.docs.Push(ctx, data, args[1])
	if err != nil {
		return describeUploadError(err)
	}
	fmt.Fprintf(a.out, "%s\t%s\n", args[1], result.ID)
	return nil
}

func (a *App) mkdir(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: mkdir needs exactly one path", ErrUsage)
	}

	result, err := a.docs.Mkdir(ctx, args[0])
	if err != nil {
		return describeUploadError(err)
	}
	fmt.Fprintf(a.out, "%s\t%s\n", args[0], result.ID)
	return nil
}

func (a *App) browse(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: browse takes no arguments", ErrUsage)
	}
	if a.browser == nil {
		return errors.New("no interactive browser available")
	}
	return a.browser.Browse(ctx)
}

// describeUploadError adds what the user can do about an upload that
// stopped half way.
func describeUploadError(err error) error {
	var uploadErr *service.UploadError
	if !errors.As(err, &uploadErr) || uploadErr.Phase == service.PhaseRequesting {
		return err
	}
	return fmt.Errorf("%w (the cloud may keep an incomplete record %s; retry or remove it on the tablet)", err, uploadErr.ID)
}

func displayName(doc models.Document) string {
	if doc.IsFolder() {
		return doc.VisibleName + "/"
	}
	return doc.VisibleName
}

