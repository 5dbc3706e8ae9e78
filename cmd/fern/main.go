// Command fern trains and runs feed-forward networks on CSV datasets.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fern-ml/fern/internal/dataset"
	"github.com/fern-ml/fern/internal/metrics"
	"github.com/fern-ml/fern/internal/nn"
	"github.com/fern-ml/fern/internal/serialization"
	"github.com/fern-ml/fern/internal/train"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "infer":
		err = runInfer(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("fern: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fern <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  train    train a network on a CSV dataset")
	fmt.Fprintln(os.Stderr, "  infer    run a saved network on an input vector")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataPath := fs.String("data", "", "CSV dataset path (last column is the target)")
	hidden := fs.String("hidden", "4", "comma-separated hidden layer widths")
	hiddenAct := fs.String("activation", "tanh", "hidden layer activation")
	outAct := fs.String("out-activation", "sigmoid", "output layer activation")
	bias := fs.Bool("bias", true, "use bias rows")
	lr := fs.Float64("lr", 0.5, "learning rate")
	epochs := fs.Int("epochs", 1000, "training epochs")
	batch := fs.Int("batch", 4, "mini-batch size")
	seed := fs.Int64("seed", time.Now().UnixNano(), "rng seed for init and shuffling")
	savePath := fs.String("save", "", "write trained weights JSON to this path")
	logEvery := fs.Int("log-every", 100, "log a progress line every N epochs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return errors.New("train: -data is required")
	}

	ds, err := dataset.LoadCSVFile(*dataPath)
	if err != nil {
		return err
	}
	log.Printf("dataset: %d rows, %d features", ds.Len(), ds.InputSize())

	widths, err := parseWidths(*hidden)
	if err != nil {
		return err
	}
	specs := []nn.LayerSpec{{Role: nn.RoleInput, Width: ds.InputSize()}}
	for _, w := range widths {
		specs = append(specs, nn.LayerSpec{Role: nn.RoleHidden, Width: w, Activation: *hiddenAct, UseBias: *bias})
	}
	specs = append(specs, nn.LayerSpec{Role: nn.RoleOutput, Width: ds.TargetSize(), Activation: *outAct, UseBias: *bias})

	net, err := nn.Build(specs, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var window metrics.Window
	curve, err := train.Run(ctx, net, ds, train.Config{
		LearningRate: *lr,
		Epochs:       *epochs,
		BatchSize:    *batch,
		Seed:         *seed,
		Progress: func(r train.Report) {
			window.Record(r.Loss, r.Accuracy, r.Elapsed)
			if r.Epoch%*logEvery == 0 {
				snap := window.Snapshot()
				log.Printf("epoch=%d loss=%.6f best=%.6f acc=%.3f epochs_per_sec=%.0f",
					r.Epoch, snap.LastLoss, snap.BestLoss, snap.LastAcc, snap.EpochsPerSec)
			}
		},
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("interrupted after %d epochs", len(curve))
		} else {
			return err
		}
	}
	if len(curve) > 0 {
		log.Printf("final loss: %.6f", curve[len(curve)-1])
	}

	if *savePath != "" {
		if err := serialization.SaveWeights(*savePath, net); err != nil {
			return err
		}
		log.Printf("weights written to %s", *savePath)
	}
	return nil
}

func runInfer(args []string) error {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	weightsPath := fs.String("weights", "", "weights JSON path")
	input := fs.String("input", "", "comma-separated input vector")
	showLayers := fs.Bool("layers", false, "print per-layer activations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *weightsPath == "" || *input == "" {
		return errors.New("infer: -weights and -input are required")
	}

	net, err := serialization.LoadWeights(*weightsPath)
	if err != nil {
		return err
	}

	vector, err := parseVector(*input)
	if err != nil {
		return err
	}

	out, err := net.Infer(vector)
	if err != nil {
		return err
	}
	log.Printf("output: %v", out)

	if *showLayers {
		snaps, err := net.Snapshot(vector)
		if err != nil {
			return err
		}
		for i, snap := range snaps {
			log.Printf("layer %d: raw=%v normalized=%v", i, snap.Raw, snap.Normalized)
		}
	}
	return nil
}

func parseWidths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid hidden width %q", part)
		}
		widths = append(widths, w)
	}
	return widths, nil
}

func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vector := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q", part)
		}
		vector[i] = v
	}
	return vector, nil
}
