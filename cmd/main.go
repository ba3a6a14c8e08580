/*
Copyright 2024 Nellcorp Authors.

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

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/nellcorp/bankgate"
	"github.com/nellcorp/bankgate/config"
	"github.com/nellcorp/bankgate/database"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Bankgate represents the CLI application, encapsulating the root Cobra command.
type Bankgate struct {
	cmd *cobra.Command
}

// gatewayInstance holds the engine instance and its configuration, shared
// across subcommands through the persistent pre-run hook.
type gatewayInstance struct {
	engine *bankgate.Bankgate
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the gateway engine before
// running any command.
func preRun(app *gatewayInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		engine, err := setupGateway(cnf)
		if err != nil {
			log.Fatal(err)
		}

		app.engine = engine
		app.cnf = cnf

		return nil
	}
}

// setupGateway creates the in-memory store, optionally loads the demo
// dataset, and wires the engine on top.
func setupGateway(cfg *config.Configuration) (*bankgate.Bankgate, error) {
	db := database.NewMemoryStore()

	if cfg.SeedDemoData {
		if err := bankgate.SeedDemoData(context.Background(), db); err != nil {
			return nil, fmt.Errorf("error seeding demo data: %v", err)
		}
	}

	engine, err := bankgate.NewBankgate(db)
	if err != nil {
		return nil, fmt.Errorf("error creating gateway: %v", err)
	}
	return engine, nil
}

// NewCLI creates the command-line interface for the gateway.
func NewCLI() *Bankgate {
	var configFile string
	b := &gatewayInstance{}

	var rootCmd = &cobra.Command{
		Use:   "bankgate",
		Short: "Banking gateway ledger and transaction engine",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./bankgate.json", "Configuration file for the gateway")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(serverCommands(b))

	return &Bankgate{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Bankgate) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
