package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rontor3/mcp-course/internal/changes"
	"github.com/Rontor3/mcp-course/internal/config"
	"github.com/Rontor3/mcp-course/internal/logging"
	"github.com/Rontor3/mcp-course/internal/mcp"
)

func main() {
	root := newRootCommand()
	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("pr-agent: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pr-agent",
		Short:        "MCP server that analyzes git changes and suggests PR templates",
		SilenceUsage: true,
		RunE:         runServe,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("templates-dir", "", "Directory holding PR templates")
	flags.Bool("seed-templates", true, "Write missing default templates on start")
	flags.Int("max-diff-lines", changes.DefaultMaxDiffLines, "Default diff line cap")
	flags.Int("max-response-tokens", changes.DefaultMaxResponseTokens, "Token estimate above which a warning is attached")
	flags.String("git-binary", "git", "Path to the git executable")
	flags.String("git-timeout", "", "Per-command git timeout, e.g. 30s (empty disables)")
	flags.String("transport", "stdio", "Transport: stdio or http")
	flags.String("host", "0.0.0.0", "HTTP host")
	flags.Int("port", 8000, "HTTP port")
	flags.String("endpoint-path", "/mcp", "HTTP endpoint path")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools over stdio or streamable HTTP",
		RunE:  runServe,
	})
	root.AddCommand(newAnalyzeCommand(), newCommitsCommand(), newTemplatesCommand())
	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	switch transport := config.Transport(); transport {
	case "stdio":
		return srv.ServeStdio()
	case "http", "streamable-http":
		return serveHTTP(srv, net.JoinHostPort(config.Host(), strconv.Itoa(config.Port())))
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func serveHTTP(srv *mcp.Server, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(config.EndpointPath(), srv.Handler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s%s", addr, config.EndpointPath())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

func newServices() mcp.Services {
	return mcp.NewServices(logging.New(logging.WithLevel(config.LogLevel())), nil)
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
