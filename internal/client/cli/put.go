package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/assetkeeper/internal/client/client"
	"github.com/dmitrijs2005/assetkeeper/internal/filex"
)

// metaFlag collects repeated -meta name=value pairs.
type metaFlag map[string]string

func (m metaFlag) String() string {
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (m metaFlag) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("metadata must look like name=value, got %q", v)
	}
	m[name] = strings.TrimSpace(value)
	return nil
}

// Put stages a local file, opens an upload session for it and runs the
// session to completion while printing progress.
func (a *App) Put(ctx context.Context, args []string) error {

	meta := metaFlag{}

	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	fs.SetOutput(a.out)
	key := fs.String("key", "", "target key (defaults to the file name)")
	contentType := fs.String("type", "", "content type (sniffed by the server when empty)")
	fs.Var(meta, "meta", "metadata name=value, repeatable")

	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.out, "Usage: put [-key k] [-type ct] [-meta name=value] <file>")
		return ErrUsage
	}

	src := fs.Arg(0)
	if *key == "" {
		*key = filepath.Base(src)
	}

	staged, size, err := a.stage(src)
	if err != nil {
		return err
	}
	defer os.Remove(staged)

	s, err := a.client.Initiate(ctx, client.InitiateRequest{
		Key:         *key,
		FileName:    filepath.Base(src),
		ContentType: *contentType,
		SourcePath:  filepath.Base(staged),
		TotalBytes:  size,
		Metadata:    meta,
	})
	if err != nil {
		return fmt.Errorf("initiate: %w", err)
	}

	fmt.Fprintf(a.out, "session %s: %s %s in %d parts of %s, %d workers\n",
		s.ID, humanize.IBytes(uint64(size)), s.Kind, s.TotalParts, humanize.IBytes(uint64(s.ChunkBytes)), s.WorkerCount)
	if s.Tolerance {
		fmt.Fprintf(a.out, "warning: quota exceeded, admitted within tolerance\n")
	}

	f, err := a.uploadWithProgress(ctx, s)
	if err != nil {
		if ctx.Err() != nil {
			a.abortDetached(ctx, s.ID)
		}
		return fmt.Errorf("upload %s: %w", s.ID, err)
	}

	fmt.Fprintf(a.out, "uploaded %s (%s, etag %s)\n", f.Key, humanize.IBytes(uint64(f.Size)), f.ETag)
	return nil
}

// stage copies src into the staging directory under a fresh name and returns
// the staged path and its size.
func (a *App) stage(src string) (string, int64, error) {

	in, err := os.Open(src)
	if err != nil {
		return "", 0, err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return "", 0, err
	}
	if !fi.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%s is not a regular file", src)
	}
	if fi.Size() == 0 {
		return "", 0, fmt.Errorf("%s is empty", src)
	}

	dir, err := filex.EnsureDir(a.config.StagingDir)
	if err != nil {
		return "", 0, err
	}

	name := filepath.Join(dir, uuid.NewString()+strings.ToLower(filepath.Ext(src)))
	out, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", 0, err
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil && n != fi.Size() {
		err = fmt.Errorf("staged %d of %d bytes", n, fi.Size())
	}
	if err != nil {
		os.Remove(name)
		return "", 0, fmt.Errorf("stage %s: %w", src, err)
	}

	return name, n, nil
}

type uploadResult struct {
	file *client.File
	err  error
}

func (a *App) uploadWithProgress(ctx context.Context, s *client.Session) (*client.File, error) {

	done := make(chan uploadResult, 1)
	go func() {
		f, err := a.client.Upload(ctx, s.ID)
		done <- uploadResult{file: f, err: err}
	}()

	ticker := time.NewTicker(a.pollInterval())
	defer ticker.Stop()

	printed := false
	for {
		select {
		case r := <-done:
			if printed && a.isTTY {
				fmt.Fprintln(a.out)
			}
			return r.file, r.err
		case <-ticker.C:
			st, err := a.client.Status(ctx, s.ID)
			if err != nil {
				continue
			}
			a.renderProgress(st)
			printed = true
		}
	}
}

func (a *App) renderProgress(st *client.Status) {
	done := int64(st.UploadedParts) * st.ChunkBytes
	if done > st.TotalBytes {
		done = st.TotalBytes
	}

	line := fmt.Sprintf("%s: %d/%d parts, %s / %s",
		st.State, st.UploadedParts, st.TotalParts,
		humanize.IBytes(uint64(done)), humanize.IBytes(uint64(st.TotalBytes)))

	if a.isTTY {
		fmt.Fprintf(a.out, "\r%s\033[K", line)
		return
	}
	fmt.Fprintln(a.out, line)
}

// abortDetached asks the server to stop a session after the caller's context
// is gone.
func (a *App) abortDetached(ctx context.Context, id string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := a.client.Abort(ctx, id); err != nil {
		fmt.Fprintf(a.out, "abort %s: %v\n", id, err)
		return
	}
	fmt.Fprintf(a.out, "aborted %s\n", id)
}
