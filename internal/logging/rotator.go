package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// LogFileName is the active log file inside the log directory.
const LogFileName = "splitview.log"

const (
	defaultMaxSizeMB = 10
	logFilePerm      = 0o600
	gzipExt          = ".gz"
)

// rotatingFile is an append-only log file rolled over once it would grow past
// MaxSizeMB. Backups are numbered newest first (splitview.log.1, .2, ...) and
// at most MaxBackups are kept; zero keeps none.
type rotatingFile struct {
	mu      sync.Mutex
	cfg     FileConfig
	path    string
	maxSize int64
	file    *os.File
	size    int64
}

func openRotatingFile(cfg FileConfig) (*rotatingFile, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	r := &rotatingFile{
		cfg:     cfg,
		path:    filepath.Join(cfg.Dir, LogFileName),
		maxSize: int64(cfg.MaxSizeMB) << 20,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *rotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file, r.size = f, info.Size()
	return nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	// A record larger than the limit still goes into a fresh file.
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rollOver(); err != nil {
			return 0, err
		}
	}
	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rollOver shifts the backups up by one, moves the active file to .1 and
// reopens an empty file.
func (r *rotatingFile) rollOver() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	if r.cfg.MaxBackups <= 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("truncate log file: %w", err)
		}
		return r.open()
	}

	for _, ext := range []string{"", gzipExt} {
		_ = os.Remove(r.backup(r.cfg.MaxBackups) + ext)
		for i := r.cfg.MaxBackups - 1; i >= 1; i-- {
			_ = os.Rename(r.backup(i)+ext, r.backup(i+1)+ext)
		}
	}

	first := r.backup(1)
	if err := os.Rename(r.path, first); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(first); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", first, err)
		}
	}
	r.pruneExpired(time.Now())
	return r.open()
}

func (r *rotatingFile) backup(n int) string {
	return r.path + "." + strconv.Itoa(n)
}

// pruneExpired removes backups last written more than MaxAgeDays ago.
func (r *rotatingFile) pruneExpired(now time.Time) {
	if r.cfg.MaxAgeDays <= 0 {
		return
	}
	cutoff := now.AddDate(0, 0, -r.cfg.MaxAgeDays)
	for i := 1; i <= r.cfg.MaxBackups; i++ {
		for _, name := range []string{r.backup(i), r.backup(i) + gzipExt} {
			if info, err := os.Stat(name); err == nil && info.ModTime().Before(cutoff) {
				_ = os.Remove(name)
			}
		}
	}
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+gzipExt, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
