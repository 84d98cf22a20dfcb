// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Command textclient sends text queries typed on stdin to the service and
// prints the agent's replies.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lingora/lingora-go/pkg/core/api"
	"github.com/lingora/lingora-go/pkg/core/config"
	"github.com/lingora/lingora-go/pkg/core/schema"
	"github.com/lingora/lingora-go/pkg/observability/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (default: environment only)")
	lang := flag.String("lang", "", "Query language override")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := "error"
	if *verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level, Format: "text"})

	var cfg *config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "textclient: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}
	if *lang != "" {
		cfg.Language = *lang
	}

	client, err := api.NewClient(cfg, api.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "textclient: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Type a query and press enter (empty line to quit).")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}

		resp, err := client.Query(context.Background(), schema.NewTextRequest(line))
		if err != nil {
			fmt.Fprintf(os.Stderr, "textclient: %v\n", err)
			continue
		}
		printResponse(resp)
	}
}

func printResponse(resp *schema.QueryResponse) {
	result := resp.Result
	if result == nil {
		fmt.Println("(no result)")
		return
	}
	if result.Fulfillment != nil && result.Fulfillment.Speech != "" {
		fmt.Println(result.Fulfillment.Speech)
	}
	if result.Action != "" {
		fmt.Printf("  action: %s\n", result.Action)
	}
	for name := range result.Parameters {
		if v, err := result.StringParameter(name); err == nil && v != "" {
			fmt.Printf("  %s = %s\n", name, v)
		}
	}
}
