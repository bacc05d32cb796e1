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
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/riemann/riemann"
)

var (
	cfgFile     string
	profileStop interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "riemann",
	Short: "Approximate Riemann solvers for finite volume interface fluxes",
	Long: `
Solves the Riemann problem at cell interfaces with the Colella & Glaz secant
iteration (CG), its linearized two-shock estimate (CGF) or the HLLC flux.

riemann tube -I sod.yaml
riemann bench -n 1000000 -p 8`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dir, _ := cmd.Flags().GetString("profile"); len(dir) != 0 {
			profileStop = profile.Start(profile.CPUProfile, profile.ProfilePath(dir))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profileStop != nil {
			profileStop.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.riemann.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a CPU profile into this directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every solver event, including converged solves")

	def := riemann.DefaultConfig()
	rootCmd.PersistentFlags().String("solver", strings.ToLower(def.Solver.String()), "solver: cg, cgf or hllc")
	rootCmd.PersistentFlags().String("policy", def.Policy.String(), "CG non convergence policy: fatal, degrade or bisection")
	rootCmd.PersistentFlags().Int("maxIterations", def.MaxIterations, "maximum CG secant iterations")
	rootCmd.PersistentFlags().Float64("tolerance", def.Tolerance, "relative CG convergence tolerance on the star pressure")
	for _, key := range []string{"solver", "policy", "maxIterations", "tolerance", "verbose"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".riemann" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".riemann")
	}

	viper.SetEnvPrefix("riemann")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger is the text logger shared by the subcommands
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// solverConfig is the default configuration overlaid with the flag, env and
// config file values.
func solverConfig() (cfg riemann.Config, err error) {
	cfg = riemann.DefaultConfig()
	if cfg.Solver, err = riemann.NewSolverKind(viper.GetString("solver")); err != nil {
		return
	}
	if cfg.Policy, err = riemann.NewNonConvergencePolicy(viper.GetString("policy")); err != nil {
		return
	}
	cfg.MaxIterations = viper.GetInt("maxIterations")
	cfg.Tolerance = viper.GetFloat64("tolerance")
	err = cfg.Validate()
	return
}
