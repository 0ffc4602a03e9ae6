package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
)

func (a *App) Status(ctx context.Context, args []string) error {

	id, err := a.oneSession("status", args)
	if err != nil {
		return err
	}

	st, err := a.client.Status(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "session   %s\n", st.SessionID)
	fmt.Fprintf(a.out, "state     %s\n", st.State)
	fmt.Fprintf(a.out, "key       %s\n", st.Key)
	fmt.Fprintf(a.out, "kind      %s\n", st.Kind)
	fmt.Fprintf(a.out, "size      %s\n", humanize.IBytes(uint64(st.TotalBytes)))
	fmt.Fprintf(a.out, "parts     %d/%d of %s\n",
		st.UploadedParts, st.TotalParts, humanize.IBytes(uint64(st.ChunkBytes)))
	if st.Tolerance {
		fmt.Fprintf(a.out, "quota     admitted within tolerance\n")
	}
	if !st.UpdatedAt.IsZero() {
		fmt.Fprintf(a.out, "updated   %s\n", humanize.Time(st.UpdatedAt))
	}
	if st.FailureReason != "" {
		fmt.Fprintf(a.out, "failure   %s\n", st.FailureReason)
	}
	if st.File != nil && st.File.ID != "" {
		fmt.Fprintf(a.out, "location  %s\n", st.File.Location)
		fmt.Fprintf(a.out, "etag      %s\n", st.File.ETag)
	}
	return nil
}

func (a *App) Abort(ctx context.Context, args []string) error {

	id, err := a.oneSession("abort", args)
	if err != nil {
		return err
	}

	if err := a.client.Abort(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "aborted %s\n", id)
	return nil
}

func (a *App) Download(ctx context.Context, args []string) error {

	id, err := a.oneSession("download", args)
	if err != nil {
		return err
	}

	url, expires, err := a.client.DownloadURL(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, url)
	if !expires.IsZero() {
		fmt.Fprintf(a.out, "expires %s\n", humanize.Time(expires))
	}
	return nil
}
