// Package export serializes the coupling graph's projections to tabular
// artifacts: node list, edge list and adjacency matrix as CSV files,
// optionally LZ4-compressed, plus an optional HTML chart of the strongest
// couples.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pierrec/lz4/v4"

	"github.com/Sumatoshi-tech/cochange/internal/coupling"
)

// Artifact file names, written into the output directory and overwritten
// when present.
const (
	NodeListFile        = "node_list.csv"
	EdgeListFile        = "edge_list.csv"
	AdjacencyMatrixFile = "adjacency_matrix.csv"

	lz4Suffix = ".lz4"
)

// Writer writes the three CSV projections of a coupling graph.
type Writer struct {
	dir      string
	compress bool
	logger   *slog.Logger
}

// NewWriter creates a Writer targeting dir. With compress set, every
// artifact is wrapped in an LZ4 frame and named with a .lz4 suffix.
func NewWriter(dir string, compress bool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{dir: dir, compress: compress, logger: logger}
}

// WriteAll writes the node list, edge list and adjacency matrix. The graph
// should already be sorted if deterministic row order is wanted.
func (w *Writer) WriteAll(g *coupling.Graph) error {
	err := w.writeNodeList(g)
	if err != nil {
		return err
	}

	err = w.writeEdgeList(g)
	if err != nil {
		return err
	}

	return w.writeMatrix(g)
}

func (w *Writer) writeNodeList(g *coupling.Graph) error {
	return w.writeCSV(NodeListFile, func(out *csv.Writer) error {
		err := out.Write([]string{"file"})
		if err != nil {
			return err
		}

		for _, path := range g.Nodes() {
			err = out.Write([]string{path})
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (w *Writer) writeEdgeList(g *coupling.Graph) error {
	return w.writeCSV(EdgeListFile, func(out *csv.Writer) error {
		err := out.Write([]string{"from", "to"})
		if err != nil {
			return err
		}

		for _, edge := range g.Edges() {
			err = out.Write([]string{edge.From, edge.To})
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (w *Writer) writeMatrix(g *coupling.Graph) error {
	return w.writeCSV(AdjacencyMatrixFile, func(out *csv.Writer) error {
		header, rows := g.Matrix()

		err := out.Write(header)
		if err != nil {
			return err
		}

		record := make([]string, len(header))

		for _, row := range rows {
			for j, weight := range row {
				record[j] = strconv.Itoa(weight)
			}

			err = out.Write(record)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// writeCSV opens the named artifact, hands a csv.Writer to fill, and
// flushes and closes it. Failures propagate; there is no partial-failure
// recovery for a one-shot run.
func (w *Writer) writeCSV(name string, fill func(*csv.Writer) error) error {
	sink, path, err := w.create(name)
	if err != nil {
		return err
	}

	out := csv.NewWriter(sink)

	fillErr := fill(out)
	if fillErr != nil {
		_ = sink.Close()

		return fmt.Errorf("write %s: %w", path, fillErr)
	}

	out.Flush()

	flushErr := out.Error()
	if flushErr != nil {
		_ = sink.Close()

		return fmt.Errorf("flush %s: %w", path, flushErr)
	}

	closeErr := sink.Close()
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	w.logger.Debug("wrote artifact", "path", path)

	return nil
}

// create opens the artifact file, layering an LZ4 frame writer on top when
// compression is enabled.
func (w *Writer) create(name string) (io.WriteCloser, string, error) {
	path := filepath.Join(w.dir, name)
	if w.compress {
		path += lz4Suffix
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, path, fmt.Errorf("create %s: %w", path, err)
	}

	if !w.compress {
		return file, path, nil
	}

	return &lz4File{frame: lz4.NewWriter(file), file: file}, path, nil
}

// lz4File closes the LZ4 frame before the underlying file so the frame
// trailer is flushed.
type lz4File struct {
	frame *lz4.Writer
	file  *os.File
}

func (c *lz4File) Write(p []byte) (int, error) {
	n, err := c.frame.Write(p)
	if err != nil {
		return n, fmt.Errorf("lz4 write: %w", err)
	}

	return n, nil
}

func (c *lz4File) Close() error {
	frameErr := c.frame.Close()
	fileErr := c.file.Close()

	if frameErr != nil {
		return fmt.Errorf("close lz4 frame: %w", frameErr)
	}

	if fileErr != nil {
		return fmt.Errorf("close file: %w", fileErr)
	}

	return nil
}
