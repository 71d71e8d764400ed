package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address host:port (overrides config)")
	serveCmd.Flags().String("static", "", "Directory of static dashboard files (overrides config)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		host, port, err := app.SplitAddr(addr)
		if err != nil {
			return err
		}
		cfg.Host, cfg.Port = host, port
	}
	if dir, _ := cmd.Flags().GetString("static"); dir != "" {
		cfg.StaticDir = dir
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run()
}
