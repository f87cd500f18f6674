package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/tcehjaava/webinteractiontools/pkg/config"
	"github.com/tcehjaava/webinteractiontools/pkg/logging"
	"github.com/tcehjaava/webinteractiontools/pkg/tools/browser"
)

const version = "0.1.0"

var (
	configPathFlag string
	headlessFlag   bool

	rootCmd = &cobra.Command{
		Use:   "webtools",
		Short: "Browser automation tools served over MCP stdio",
		Long: `webtools starts an MCP server on stdio exposing browser automation
tools (navigate, click, hover, fill, scroll, screenshot, extract HTML,
evaluate JavaScript, list elements, page info) backed by a lazily
launched headless Chromium instance.

Configuration is read from ~/.webtools/config.json by default.`,
		RunE: runServer,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPathFlag, "config", "", "Path to the config file (default ~/.webtools/config.json)")
	rootCmd.Flags().BoolVar(&headlessFlag, "headless", true, "Run the browser headless")
}

func runServer(cmd *cobra.Command, args []string) error {
	log, err := logging.NewLogger("main")
	if err != nil {
		// Fallback logger is already active; keep going
		fmt.Fprintf(os.Stderr, "warning: file logging unavailable: %v\n", err)
	}
	defer log.Close()

	if err := config.Initialize(configPathFlag); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	session := browser.NewSession(log)
	toolset := browser.NewToolset(session, log, headlessFlag)

	srv := server.NewMCPServer(
		"webtools",
		version,
		server.WithLogging(),
		server.WithToolCapabilities(true),
	)
	toolset.Register(srv)

	// The browser outlives individual tool calls; tear it down on interrupt
	// so no orphaned Chromium processes remain.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Infof("received %s, shutting down", sig)
		if err := session.Close(); err != nil {
			log.Errorf("browser teardown failed: %v", err)
		}
		log.Close()
		os.Exit(0)
	}()

	log.Infof("webtools %s serving on stdio (headless=%v, log=%s)", version, headlessFlag, log.LogPath())
	if err := server.ServeStdio(srv); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return session.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
