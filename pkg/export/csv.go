// Package export writes layout results to disk: per-node positions,
// the edge list and the convergence series, optionally bundled into a
// single snappy-compressed archive and uploaded to S3.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dd0wney/forcelayout/pkg/graphmodel"
)

// ConvergencePoint is one recorded (step, kinetic energy) sample.
type ConvergencePoint struct {
	Step          int
	KineticEnergy float64
}

// WriteNodesCSV writes one row per node as "id,x,y".
func WriteNodesCSV(path string, nodes []*graphmodel.Node) error {
	return writeCSV(path, []string{"id", "x", "y"}, func(w *csv.Writer) error {
		for _, n := range nodes {
			p := n.Position()
			row := []string{
				strconv.FormatUint(uint64(n.ID), 10),
				formatFloat(p.X),
				formatFloat(p.Y),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteEdgesCSV writes one row per edge as "source,target" in canonical
// (min, max) order.
func WriteEdgesCSV(path string, edges []graphmodel.Edge) error {
	return writeCSV(path, []string{"source", "target"}, func(w *csv.Writer) error {
		for _, e := range edges {
			row := []string{
				strconv.FormatUint(uint64(e.Source), 10),
				strconv.FormatUint(uint64(e.Target), 10),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteConvergenceCSV writes one row per recorded step as
// "step,kinetic_energy".
func WriteConvergenceCSV(path string, points []ConvergencePoint) error {
	return writeCSV(path, []string{"step", "kinetic_energy"}, func(w *csv.Writer) error {
		for _, p := range points {
			row := []string{
				strconv.Itoa(p.Step),
				formatFloat(p.KineticEnergy),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, body func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("export: writing header to %s: %w", path, err)
	}
	if err := body(w); err != nil {
		return fmt.Errorf("export: writing rows to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: flushing %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
