/*
 * Copyright 2025 Simon Binom.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command repeatersnmp polls a Hytera DMR repeater over SNMP once and logs
// the decoded status report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/simonbinom/hyteragw-zsoags/pkg/config"
	"github.com/simonbinom/hyteragw-zsoags/pkg/logger"
	"github.com/simonbinom/hyteragw-zsoags/pkg/settings"
	"github.com/simonbinom/hyteragw-zsoags/pkg/snmp"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <repeater-ip>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "Path to optional JSON config file")
	community := flag.String("community", "", "Initial SNMP community (public or hytera)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *configPath, *community, *debug); err != nil {
		logger.Fatal().Err(err).Msg("Fatal error")
	}
}

func run(target, configPath, community string, debug bool) error {
	if err := logger.Init(logger.Config{Debug: debug}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx := context.Background()

	cfg := &snmp.Config{}

	if configPath != "" {
		if err := config.NewConfig(nil).LoadAndValidate(ctx, configPath, cfg); err != nil {
			return err
		}
	}

	if community != "" {
		cfg.Community = community
	}

	log := logger.NewZerologAdapter(logger.GetLogger())

	walker, err := snmp.NewWalker(cfg, log)
	if err != nil {
		return err
	}

	store := settings.NewStore()

	// Success is visible through the report lines; the walk converts all
	// failure classes into logs, so the exit code stays zero either way.
	walker.Walk(ctx, target, store)

	return nil
}
