package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dd0wney/forcelayout/pkg/config"
	"github.com/dd0wney/forcelayout/pkg/export"
	"github.com/dd0wney/forcelayout/pkg/forcelayout"
	"github.com/dd0wney/forcelayout/pkg/graphmodel"
	"github.com/dd0wney/forcelayout/pkg/logging"
	"github.com/dd0wney/forcelayout/pkg/metrics"
	"github.com/dd0wney/forcelayout/pkg/validation"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML run configuration; flags below override it")
	vertices := flag.Int("vertices", 0, "Number of graph vertices (0: use config/default)")
	probability := flag.Float64("probability", 0, "Erdos-Renyi edge probability (0: use config/default)")
	seed := flag.Uint64("seed", 0, "Deterministic seed for graph generation and initial placement")
	width := flag.Float64("width", 0, "Frame width")
	height := flag.Float64("height", 0, "Frame height")
	iterations := flag.Int("iterations", 0, "Number of simulation steps to run")
	strategy := flag.String("strategy", "", "Repulsive strategy: bruteforce or barneshut")
	theta := flag.Float64("theta", 0, "Barnes-Hut acceptance threshold")
	outputDir := flag.String("output", "", "Directory to write nodes.csv, edges.csv and convergence.csv")
	bundle := flag.Bool("bundle", false, "Bundle the CSV output into a snappy-compressed archive")
	s3Bucket := flag.String("s3-bucket", "", "If set, upload the bundle to this S3 bucket (implies -bundle)")
	s3Prefix := flag.String("s3-prefix", "", "Key prefix for the S3 upload")
	progress := flag.Bool("progress", false, "Show an interactive progress display instead of log lines")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := logging.NewDefaultLogger()
	logger.SetLevel(parseLevel(*logLevel))

	run := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath, run)
		if err != nil {
			log.Fatalf("layoutctl: %v", err)
		}
		run = loaded
	}
	applyOverrides(&run, *vertices, *probability, *seed, *width, *height, *iterations, *strategy, *theta, *outputDir)

	if err := validation.ValidateGraphParams(validation.GraphParams{Vertices: run.Vertices, Probability: run.Probability}); err != nil {
		log.Fatalf("layoutctl: invalid graph parameters: %v", err)
	}
	if err := validation.ValidateEngineParams(validation.EngineParams{
		Width: run.Width, Height: run.Height, ScalingConstant: run.C, CoolingRate: run.CoolingRate, Theta: run.Theta,
	}); err != nil {
		log.Fatalf("layoutctl: invalid engine parameters: %v", err)
	}

	reg := metrics.NewRegistry(prometheus.NewRegistry())

	logger.Info("generating graph", logging.VertexCount(run.Vertices), logging.Field{Key: "probability", Value: run.Probability})
	g, err := graphmodel.ErdosRenyi(run.Vertices, run.Probability, run.Seed)
	if err != nil {
		log.Fatalf("layoutctl: generating graph: %v", err)
	}
	logger.Info("graph generated", logging.VertexCount(g.VertexCount()), logging.EdgeCount(g.EdgeCount()))

	engine, err := forcelayout.New(run.Width, run.Height, run.C)
	if err != nil {
		log.Fatalf("layoutctl: constructing engine: %v", err)
	}
	engine.SetCoolingRate(run.CoolingRate)
	engine.SetTemperature(run.Temperature)
	engine.SetTemperatureFloor(run.TMin)

	var bh *forcelayout.BarnesHut
	switch run.Strategy {
	case "barneshut":
		bh = forcelayout.NewBarnesHut(run.Theta)
		engine.SetStrategy(bh)
	case "bruteforce", "":
	default:
		log.Fatalf("layoutctl: unknown strategy %q", run.Strategy)
	}

	if err := engine.Initialize(g, run.Seed); err != nil {
		log.Fatalf("layoutctl: initializing engine: %v", err)
	}

	points := make([]export.ConvergencePoint, 0, run.Iterations+1)
	points = append(points, export.ConvergencePoint{Step: 0, KineticEnergy: engine.KineticEnergy()})

	runStep := func(step int) error {
		start := time.Now()
		if err := engine.Step(g); err != nil {
			return err
		}
		reg.RecordStep(time.Since(start), engine.KineticEnergy(), engine.Temperature())
		if bh != nil {
			reg.RecordQuadTreeRebuild(bh.NumCells())
		}
		points = append(points, export.ConvergencePoint{Step: step, KineticEnergy: engine.KineticEnergy()})
		return nil
	}

	if *progress {
		if err := runWithProgress(run.Iterations, runStep, engine); err != nil {
			log.Fatalf("layoutctl: %v", err)
		}
	} else {
		for step := 1; step <= run.Iterations; step++ {
			if err := runStep(step); err != nil {
				log.Fatalf("layoutctl: step %d: %v", step, err)
			}
			if step%50 == 0 || step == run.Iterations {
				logger.Info("step complete",
					logging.Step(step),
					logging.KineticEnergy(engine.KineticEnergy()),
					logging.Field{Key: "temperature", Value: engine.Temperature()},
				)
			}
		}
	}

	if err := os.MkdirAll(run.OutputDir, 0o755); err != nil {
		log.Fatalf("layoutctl: creating output directory: %v", err)
	}
	nodesPath := filepath.Join(run.OutputDir, "nodes.csv")
	edgesPath := filepath.Join(run.OutputDir, "edges.csv")
	convPath := filepath.Join(run.OutputDir, "convergence.csv")

	if err := export.WriteNodesCSV(nodesPath, g.Nodes()); err != nil {
		log.Fatalf("layoutctl: %v", err)
	}
	if err := export.WriteEdgesCSV(edgesPath, g.Edges()); err != nil {
		log.Fatalf("layoutctl: %v", err)
	}
	if err := export.WriteConvergenceCSV(convPath, points); err != nil {
		log.Fatalf("layoutctl: %v", err)
	}
	logger.Info("wrote CSV output", logging.Field{Key: "dir", Value: run.OutputDir})

	if *bundle || *s3Bucket != "" {
		b, err := export.WriteBundle(run.OutputDir, nodesPath, edgesPath, convPath)
		if err != nil {
			log.Fatalf("layoutctl: %v", err)
		}
		logger.Info("wrote bundle", logging.Field{Key: "run_id", Value: b.RunID}, logging.Field{Key: "path", Value: b.Path})

		if *s3Bucket != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			sink, err := export.NewS3Sink(ctx, *s3Bucket, *s3Prefix)
			if err != nil {
				log.Fatalf("layoutctl: %v", err)
			}
			if err := sink.Upload(ctx, b); err != nil {
				log.Fatalf("layoutctl: %v", err)
			}
			logger.Info("uploaded bundle", logging.Field{Key: "bucket", Value: *s3Bucket})
		}
	}

	fmt.Printf("layout complete: %d vertices, %d edges, %d steps, final kinetic energy %.4f\n",
		g.VertexCount(), g.EdgeCount(), run.Iterations, engine.KineticEnergy())
}

func applyOverrides(run *config.Run, vertices int, probability float64, seed uint64, width, height float64, iterations int, strategy string, theta float64, outputDir string) {
	if vertices != 0 {
		run.Vertices = vertices
	}
	if probability != 0 {
		run.Probability = probability
	}
	if seed != 0 {
		run.Seed = seed
	}
	if width != 0 {
		run.Width = width
	}
	if height != 0 {
		run.Height = height
	}
	if iterations != 0 {
		run.Iterations = iterations
	}
	if strategy != "" {
		run.Strategy = strategy
	}
	if theta != 0 {
		run.Theta = theta
	}
	if outputDir != "" {
		run.OutputDir = outputDir
	}
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.DebugLevel
	case "warn":
		return logging.WarnLevel
	case "error":
		return logging.ErrorLevel
	default:
		return logging.InfoLevel
	}
}
