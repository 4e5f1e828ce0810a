package pid

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const scanWorkers = 10

func (c *Converter) findFiles(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !CanConvert(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

// convertFile converts one PID file, writing the output next to the
// source. A failed conversion leaves no partial output behind.
func (c *Converter) convertFile(file string, target Format) error {
	src, err := os.Open(file)
	if err != nil {
		return err
	}
	defer src.Close()

	out := strings.TrimSuffix(file, filepath.Ext(file)) + "." + target.Ext
	dst, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := c.Convert(NewFileStream(src), NewFileStream(dst), target.ID); err != nil {
		dst.Close()
		os.Remove(out)
		return err
	}

	return dst.Close()
}

func (c *Converter) fileWorker(in <-chan string, target Format) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if err := c.convertFile(file, target); err != nil {
				c.logger.Printf("Skipping \"%s\": %v\n", file, err)
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan converts every PID file under path to the format named by id,
// writing each result next to its source. Files that fail to convert are
// logged and skipped; only filesystem walk errors abort the scan.
func (c *Converter) Scan(path, id string) error {
	target, ok := Target(id, c.Depth())
	if !ok {
		return fmt.Errorf("pid: unsupported target format %q", id)
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	files, errc := c.findFiles(ctx, dir)
	errcList := []<-chan error{errc}

	for i := 0; i < scanWorkers; i++ {
		errcList = append(errcList, c.fileWorker(files, target))
	}

	return waitForPipeline(errcList...)
}
