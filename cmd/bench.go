/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	perf "github.com/hodgesds/perf-utils"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/riemann/diagnostics"
	"github.com/notargets/riemann/eos"
	"github.com/notargets/riemann/riemann"
	"github.com/notargets/riemann/types"
	"github.com/notargets/riemann/utils"
)

type BenchOptions struct {
	Faces          int
	ParallelDegree int
	Seed           uint64
	BadFraction    float64 // share of faces given a negative left pressure
	Gamma          float64
	CPUCycles      bool
	LogEvents      bool // log every solver event, not just the summary
}

type BenchReport struct {
	RunID          string
	Faces          int
	Elapsed        time.Duration
	IterationMean  float64
	IterationStd   float64
	MaxIterations  float64
	MaxStarSpeed   float64
	Methods        map[riemann.StarMethod]int
	Repairs        int
	NaNs           int
	Cycles         uint64
	EventsRecorded map[string]float64
}

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve a batch of randomized interfaces in parallel and report timing and iteration statistics",
	Long: `
Generates a sweep of random gamma law interfaces, the first of which sits on
a reflecting wall, and solves them with the configured solver.

riemann bench -n 1000000 -p 8 --perf`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			opts BenchOptions
			cfg  riemann.Config
		)
		opts.Faces, _ = cmd.Flags().GetInt("n")
		opts.ParallelDegree, _ = cmd.Flags().GetInt("p")
		seed, _ := cmd.Flags().GetInt64("seed")
		opts.Seed = uint64(seed)
		opts.BadFraction, _ = cmd.Flags().GetFloat64("bad")
		opts.Gamma, _ = cmd.Flags().GetFloat64("gamma")
		opts.CPUCycles, _ = cmd.Flags().GetBool("perf")
		opts.LogEvents = viper.GetBool("verbose")
		if cfg, err = solverConfig(); err != nil {
			panic(err)
		}
		if _, err = RunBench(context.Background(), opts, cfg, newLogger(), os.Stdout); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("n", "n", 100000, "number of interfaces to solve")
	BenchCmd.Flags().IntP("p", "p", runtime.NumCPU(), "parallel degree, the number of lanes")
	BenchCmd.Flags().Int64("seed", 1, "random seed for the interface states")
	BenchCmd.Flags().Float64("bad", 0.001, "fraction of interfaces with an unphysical left state")
	BenchCmd.Flags().Float64("gamma", 1.4, "ratio of specific heats")
	BenchCmd.Flags().Bool("perf", false, "count CPU cycles of the batch solve (Linux perf events)")
}

// benchFaces builds a random sweep over cells [0, n-2]; face 0 is a slip wall
func benchFaces(s *riemann.Solver, opts BenchOptions) (faces []riemann.Interface) {
	var (
		rng    = rand.New(rand.NewPCG(opts.Seed, 0x5eed))
		gm1    = opts.Gamma - 1.
		uni    = func(lo, hi float64) float64 { return lo + (hi-lo)*rng.Float64() }
		domain = opts.Faces - 2
	)
	faces = make([]riemann.Interface, opts.Faces)
	for k := range faces {
		in := &faces[k]
		for _, q := range []*riemann.PrimitiveState{&in.Left, &in.Right} {
			q.Rho = math.Exp(uni(-3., 1.))
			q.U = uni(-2., 2.)
			q.V1 = uni(-0.5, 0.5)
			q.P = math.Exp(uni(-4., 2.))
			q.RhoE = q.P / gm1
		}
		in.AuxLeft = s.Thermo(&in.Left)
		in.AuxRight = s.Thermo(&in.Right)
		if rng.Float64() < opts.BadFraction {
			in.Left.P, in.Left.RhoE = -in.Left.P, -in.Left.RhoE
		}
		in.Boundary = riemann.NewBoundaryFlags(types.BC_SlipWall, types.BC_Outflow, k, 0, domain)
	}
	return
}

// RunBench solves a random sweep with cfg and writes a summary to w
func RunBench(ctx context.Context, opts BenchOptions, cfg riemann.Config, log *slog.Logger,
	w io.Writer) (rpt BenchReport, err error) {
	var (
		s   *riemann.Solver
		reg = prometheus.NewRegistry()
	)
	if opts.Faces < 2 {
		err = errors.Errorf("need at least 2 faces, have %d", opts.Faces)
		return
	}
	if opts.Gamma == 0 {
		opts.Gamma = 1.4
	}
	if s, err = riemann.NewSolver(cfg, eos.NewGammaLaw(opts.Gamma)); err != nil {
		return
	}
	rpt.RunID = uuid.NewString()
	rpt.Faces = opts.Faces
	log = log.With("run", rpt.RunID)

	faces := benchFaces(s, opts)
	out := make([]riemann.Result, len(faces))
	sinks := diagnostics.Multi{diagnostics.NewMetrics(reg)}
	if opts.LogEvents {
		sinks = append(sinks, diagnostics.NewLogger(log))
	}
	diag := &riemann.Diagnostics{Sink: sinks}
	log.Info("starting batch", "faces", opts.Faces, "lanes", opts.ParallelDegree,
		"solver", cfg.Solver.String(), "policy", cfg.Policy.String())

	solve := func() error {
		return s.SolveBatch(ctx, faces, out, opts.ParallelDegree, diag)
	}
	start := time.Now()
	if opts.CPUCycles {
		var pv *perf.ProfileValue
		if pv, err = perf.CPUCycles(solve); err != nil {
			// perf events are unavailable without the right privileges
			log.Warn("cpu cycle count unavailable, timing only", "err", err)
			err = solve()
		} else {
			rpt.Cycles = pv.Value
		}
	} else {
		err = solve()
	}
	rpt.Elapsed = time.Since(start)
	if err != nil {
		err = errors.Wrap(err, "batch solve")
		return
	}

	var (
		iters  = make([]float64, len(out))
		speeds = make([]float64, len(out))
		pstars = make([]float64, len(out))
	)
	rpt.Methods = make(map[riemann.StarMethod]int)
	for k := range out {
		iters[k] = float64(out[k].Star.Iterations)
		speeds[k] = math.Abs(out[k].Star.U)
		pstars[k] = out[k].Star.P
		rpt.Methods[out[k].Star.Method]++
		if utils.IsNan(pstars[k]) || utils.IsNan(out[k].State.Rho) {
			rpt.NaNs++
		}
	}
	rpt.IterationMean, rpt.IterationStd = stat.MeanStdDev(iters, nil)
	rpt.MaxIterations = floats.Max(iters)
	rpt.MaxStarSpeed = floats.Max(speeds)

	rpt.EventsRecorded = make(map[string]float64)
	mfs, gerr := reg.Gather()
	if gerr != nil {
		err = errors.Wrap(gerr, "gather metrics")
		return
	}
	for _, mf := range mfs {
		if mf.GetName() != "riemann_events_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				rpt.EventsRecorded[lp.GetValue()] += m.GetCounter().GetValue()
			}
		}
	}
	rpt.Repairs = int(rpt.EventsRecorded[riemann.EventRepair.String()])
	rpt.Print(w)
	log.Info("batch complete", "elapsed", rpt.Elapsed, "mem", utils.GetMemUsage())
	return
}

func (rpt *BenchReport) Print(w io.Writer) {
	fmt.Fprintf(w, "Run %s: %d faces in %v (%8.2f ns/face)\n", rpt.RunID, rpt.Faces, rpt.Elapsed,
		float64(rpt.Elapsed.Nanoseconds())/float64(rpt.Faces))
	if rpt.Cycles != 0 {
		fmt.Fprintf(w, "CPU cycles: %d (%8.1f per face)\n", rpt.Cycles, float64(rpt.Cycles)/float64(rpt.Faces))
	}
	fmt.Fprintf(w, "Iterations: mean %6.3f stddev %6.3f max %3.0f\n",
		rpt.IterationMean, rpt.IterationStd, rpt.MaxIterations)
	fmt.Fprintf(w, "Max |U*| = %8.5f, repaired sides = %d, NaN results = %d\n",
		rpt.MaxStarSpeed, rpt.Repairs, rpt.NaNs)
	methods := make([]riemann.StarMethod, 0, len(rpt.Methods))
	for m := range rpt.Methods {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	for _, m := range methods {
		fmt.Fprintf(w, "\t%-10s %d\n", m.String(), rpt.Methods[m])
	}
}
