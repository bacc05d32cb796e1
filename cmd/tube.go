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
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/notargets/riemann/InputParameters"
	"github.com/notargets/riemann/diagnostics"
	"github.com/notargets/riemann/eos"
	"github.com/notargets/riemann/riemann"
	"github.com/notargets/riemann/sod_shock_tube"
)

const exampleTubeFile = `
########################################
Title: "Sod Shock Tube"
EOS: gamma # Can be "stiffened", with PInf
Gamma: 1.4
Solver: cg # cg, cgf or hllc
Policy: bisection # fatal, degrade or bisection
Left:
  Rho: 1.
  U: 0.
  P: 1.
Right:
  Rho: 0.125
  U: 0.
  P: 0.1
Boundary: none # A reflecting BC suppresses the normal velocity
BoundaryAt: lo
Compare: sod
ProfileTime: 0.2 # Exact profile on [0,1] with the diaphragm at 0.5
########################################
`

// TubeCmd represents the tube command
var TubeCmd = &cobra.Command{
	Use:   "tube",
	Short: "Solve the Riemann problem at a single interface described by a YAML deck",
	Long: `
Solves one interface and prints the interface state, the star state and, for
HLLC, the flux. With "Compare: sod" the exact ideal gas solution at the
interface is printed alongside, and with "ProfileTime" the exact profile on
[0,1] at that time.

riemann tube -I sod.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		deckFile, _ := cmd.Flags().GetString("inputConditionsFile")
		ip := processTubeInput(deckFile)
		ip.Print()
		var cfg riemann.Config
		if cfg, err = solverConfig(); err != nil {
			panic(err)
		}
		if _, err = RunTube(ip, cfg, diagnostics.NewLogger(newLogger()), os.Stdout); err != nil {
			var nce *riemann.NonConvergenceError
			if errors.As(err, &nce) {
				fmt.Print(nce.Report())
			}
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processTubeInput(deckFile string) (ip *InputParameters.InputParametersRiemann) {
	var (
		err  error
		data []byte
	)
	if len(deckFile) == 0 {
		err = fmt.Errorf("must supply an input deck (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleTubeFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(deckFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersRiemann{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

// RunTube solves the deck's interface with the deck's options laid over cfg
func RunTube(ip *InputParameters.InputParametersRiemann, cfg riemann.Config,
	sink riemann.DiagnosticSink, w io.Writer) (res riemann.Result, err error) {
	var (
		s  *riemann.Solver
		in riemann.Interface
	)
	if cfg, err = ip.Config(cfg); err != nil {
		return
	}
	EOS, err := ip.NewEOS()
	if err != nil {
		err = errors.Wrap(err, "equation of state")
		return
	}
	if s, err = riemann.NewSolver(cfg, EOS); err != nil {
		return
	}
	if in, err = ip.Interface(s); err != nil {
		err = errors.Wrap(err, "interface")
		return
	}
	diag := &riemann.Diagnostics{Trace: riemann.NewIterationTrace(cfg), Sink: sink}
	if res, err = s.Solve(&in, diag); err != nil {
		return
	}
	q := &res.State
	fmt.Fprintf(w, "Solver %s, star state by %s in %d iterations\n",
		res.Kind, res.Star.Method, res.Star.Iterations)
	fmt.Fprintf(w, "P* = %12.8f U* = %12.8f Gamma* = %8.5f\n", res.Star.P, res.Star.U, res.Star.GammaStar)
	fmt.Fprintf(w, "Interface: Rho = %12.8f U = %12.8f P = %12.8f RhoE = %12.8f\n", q.Rho, q.U, q.P, q.RhoE)
	if res.Kind == riemann.Solver_HLLC {
		F := &res.Flux
		fmt.Fprintf(w, "Flux: Rho = %12.8f MomN = %12.8f Etot = %12.8f Eint = %12.8f\n",
			F.Rho, F.MomN, F.Etot, F.Eint)
	}
	if ip.Compare == "sod" {
		err = compareExact(EOS, &in, &res, ip.ProfileTime, w)
	}
	return
}

func compareExact(EOS eos.EquationOfState, in *riemann.Interface, res *riemann.Result,
	profileTime float64, w io.Writer) (err error) {
	var (
		er *sod_shock_tube.ExactRiemann
	)
	gl, ok := EOS.(*eos.GammaLaw)
	if !ok {
		return fmt.Errorf("exact comparison needs a gamma law gas, have %T", EOS)
	}
	er, err = sod_shock_tube.NewExactRiemann(gl.Gamma,
		sod_shock_tube.State{Rho: in.Left.Rho, U: in.Left.U, P: in.Left.P},
		sod_shock_tube.State{Rho: in.Right.Rho, U: in.Right.U, P: in.Right.P})
	if err != nil {
		return errors.Wrap(err, "exact solution")
	}
	ex := er.Sample(0.)
	fmt.Fprintf(w, "Exact: P* = %12.8f U* = %12.8f\n", er.PStar, er.UStar)
	fmt.Fprintf(w, "Exact interface: Rho = %12.8f U = %12.8f P = %12.8f\n", ex.Rho, ex.U, ex.P)
	fmt.Fprintf(w, "Relative error: P* %8.2e U* %8.2e Rho %8.2e\n",
		relErr(res.Star.P, er.PStar), relErr(res.Star.U, er.UStar), relErr(res.State.Rho, ex.Rho))
	if res.Kind == riemann.Solver_HLLC {
		F := er.Flux()
		fmt.Fprintf(w, "Exact flux: Rho = %12.8f MomN = %12.8f Etot = %12.8f\n", F[0], F[1], F[2])
	}
	if profileTime > 0 {
		X, Rho, P, U, E := er.WaveProfile(profileTime, 0., 1.)
		fmt.Fprintf(w, "Exact profile at t = %g\n", profileTime)
		fmt.Fprintf(w, "%12s %12s %12s %12s %12s\n", "X", "Rho", "U", "P", "E")
		for i, x := range X {
			fmt.Fprintf(w, "%12.8f %12.8f %12.8f %12.8f %12.8f\n", x, Rho[i], U[i], P[i], E[i])
		}
	}
	return
}

func relErr(approx, exact float64) float64 {
	return math.Abs(approx-exact) / math.Max(math.Abs(exact), 1.e-300)
}

func init() {
	rootCmd.AddCommand(TubeCmd)
	TubeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the interface, like:\n\t- EOS and Gamma\n\t- Left and Right states\n\t- Solver options")
}
