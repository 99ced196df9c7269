package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
	"golang.org/x/time/rate"

	"github.com/desertwitch/fileio/posix"
	"github.com/desertwitch/fileio/stream"
)

// progressFunc receives the running transfer progress after each chunk.
type progressFunc func(copied, total int64)

// Copier performs a verified buffered copy between two paths.
type Copier struct {
	cfg *Config
}

// NewCopier returns a pointer to a new [Copier].
func NewCopier(cfg *Config) *Copier {
	return &Copier{
		cfg: cfg,
	}
}

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// rawWriter adapts the descriptor-level file, which exposes the raw
// short-transfer contract, into an [io.Writer] by looping to completion.
type rawWriter struct {
	f *posix.File
}

func (w *rawWriter) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := w.f.Write(p[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
		total += n
	}

	return total, nil
}

// Copy transfers srcPath to dstPath, hashing the source content along the
// way and re-reading the destination afterwards when verification is
// enabled. The destination is created exclusively and removed again when
// the transfer does not complete.
func (c *Copier) Copy(ctx context.Context, srcPath, dstPath string, progress progressFunc) error {
	var transferComplete bool

	src, err := stream.Open(srcPath, stream.Binary, stream.Read)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer closeQuietly(src, srcPath)

	if c.cfg.BufferSize > 0 {
		if err := src.SetBuffer(stream.BufferFull, c.cfg.BufferSize); err != nil {
			return fmt.Errorf("failed to buffer source file: %w", err)
		}
	} else if err := src.SetOptimalBuffer(); err != nil {
		return fmt.Errorf("failed to buffer source file: %w", err)
	}

	length, err := src.Length()
	if err != nil {
		return fmt.Errorf("failed to get source length: %w", err)
	}

	raw, err := posix.Open(dstPath,
		posix.WriteOnly|posix.Create|posix.Exclusive|posix.CloseOnExec,
		posix.UserReadWrite|posix.GroupRead|posix.OtherRead)
	if err != nil {
		return fmt.Errorf("failed to open destination file %s: %w", dstPath, err)
	}
	defer func() {
		closeQuietly(raw, dstPath)
		if !transferComplete {
			os.Remove(dstPath) //nolint:errcheck
		}
	}()

	hasher := blake3.New()

	var (
		encoder io.Closer
		dst     io.Writer = &rawWriter{f: raw}
	)
	switch c.cfg.Compress {
	case compressGzip:
		gz := gzip.NewWriter(dst)
		encoder, dst = gz, gz
	case compressLz4:
		lz := lz4.NewWriter(dst)
		encoder, dst = lz, lz
	}

	var limiter *rate.Limiter
	chunk := c.cfg.BufferSize
	if chunk <= 0 {
		chunk = stream.RecommendedBlockSize
	}
	if c.cfg.LimitMBps > 0 {
		limiter = rate.NewLimiter(rate.Limit(c.cfg.LimitMBps*1024*1024), chunk)
	}

	buf := make([]byte, chunk)
	var copied int64
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("transfer canceled: %w", ctx.Err())
		default:
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			if limiter != nil {
				if err := limiter.WaitN(ctx, n); err != nil {
					return fmt.Errorf("transfer canceled: %w", err)
				}
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return fmt.Errorf("failed to write destination file: %w", werr)
			}
			hasher.Write(buf[:n]) //nolint:errcheck
			copied += int64(n)
			if progress != nil {
				progress(copied, length)
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fmt.Errorf("failed to read source file: %w", rerr)
		}
	}

	if encoder != nil {
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to finalize compression: %w", err)
		}
	}
	if err := raw.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}

	checksum := hex.EncodeToString(hasher.Sum(nil))
	slog.Info("Transfer complete.",
		"bytes", humanize.Bytes(uint64(copied)),
		"checksum", checksum,
		"path", dstPath,
	)

	if c.cfg.Verify {
		if err := c.verify(ctx, dstPath, checksum); err != nil {
			return err
		}
		slog.Info("Verification passed.", "path", dstPath)
	}

	transferComplete = true

	return nil
}

// verify re-reads the destination, decoding any configured compression,
// and compares its content checksum against the source checksum.
func (c *Copier) verify(ctx context.Context, dstPath, want string) error {
	dst, err := stream.Open(dstPath, stream.Binary, stream.Read)
	if err != nil {
		return fmt.Errorf("failed to open destination for verification: %w", err)
	}
	defer closeQuietly(dst, dstPath)

	if err := dst.SetOptimalBuffer(); err != nil {
		return fmt.Errorf("failed to buffer destination file: %w", err)
	}

	var reader io.Reader = dst
	switch c.cfg.Compress {
	case compressGzip:
		gz, err := gzip.NewReader(dst)
		if err != nil {
			return fmt.Errorf("failed to decode destination file: %w", err)
		}
		defer gz.Close() //nolint:errcheck
		reader = gz
	case compressLz4:
		reader = lz4.NewReader(dst)
	}

	hasher := blake3.New()
	if _, err := io.Copy(hasher, &contextReader{ctx: ctx, reader: reader}); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("verification canceled: %w", err)
		}

		return fmt.Errorf("failed to read destination file: %w", err)
	}

	got := hex.EncodeToString(hasher.Sum(nil))
	if got != want {
		return fmt.Errorf("%w: %s (src) != %s (dst)", ErrChecksumMismatch, want, got)
	}

	return nil
}

// closeQuietly releases a file during unwinding, logging instead of
// surfacing a close failure so the first failure wins. Success paths close
// explicitly and surface the error instead.
func closeQuietly(closer io.Closer, path string) {
	if err := closer.Close(); err != nil &&
		!errors.Is(err, stream.ErrClosed) && !errors.Is(err, posix.ErrClosed) {
		slog.Warn("Failed to close file.", "path", path, "err", err)
	}
}
