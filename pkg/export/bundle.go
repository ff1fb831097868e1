package export

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/google/uuid"
)

// Bundle is a snappy-compressed tar archive of one run's CSV output,
// tagged with a run identifier so repeated runs into the same output
// directory don't collide.
type Bundle struct {
	RunID string
	Path  string
}

// WriteBundle tars nodesPath, edgesPath and convergencePath, compresses
// the archive with snappy and writes it to <dir>/<runID>.tar.snappy.
// Individual CSV files are left in place; the bundle is an additional
// artifact for archival transfer.
func WriteBundle(dir string, nodesPath, edgesPath, convergencePath string) (*Bundle, error) {
	runID := uuid.New().String()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, p := range []string{nodesPath, edgesPath, convergencePath} {
		if err := addFile(tw, p); err != nil {
			return nil, fmt.Errorf("export: bundling %s: %w", p, err)
		}
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("export: closing tar writer: %w", err)
	}

	compressed := snappy.Encode(nil, buf.Bytes())

	bundlePath := filepath.Join(dir, runID+".tar.snappy")
	if err := os.WriteFile(bundlePath, compressed, 0o644); err != nil {
		return nil, fmt.Errorf("export: writing bundle %s: %w", bundlePath, err)
	}

	return &Bundle{RunID: runID, Path: bundlePath}, nil
}

// ReadBundle decompresses a bundle written by WriteBundle and returns the
// contained files keyed by their base name.
func ReadBundle(path string) (map[string][]byte, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: reading bundle %s: %w", path, err)
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("export: decompressing bundle %s: %w", path, err)
	}

	files := make(map[string][]byte)
	tr := tar.NewReader(bytes.NewReader(data))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("export: reading tar entry: %w", err)
		}
		buf := make([]byte, hdr.Size)
		if _, err := io.ReadFull(tr, buf); err != nil {
			return nil, fmt.Errorf("export: reading tar entry %s: %w", hdr.Name, err)
		}
		files[hdr.Name] = buf
	}
	return files, nil
}

func addFile(tw *tar.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	hdr := &tar.Header{
		Name: filepath.Base(path),
		Mode: 0o644,
		Size: int64(len(data)),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = tw.Write(data)
	return err
}
