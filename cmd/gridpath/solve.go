package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/idastar"
)

var solveCmd = &cobra.Command{
	Use:   "solve [maze-file]",
	Short: "Solve a text maze and print the route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}
		opts, err := cfg.options()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		m, err := parseMaze(f)
		if err != nil {
			return err
		}
		logger.Info("maze loaded",
			zap.Int("width", m.grid.Width),
			zap.Int("height", m.grid.Height),
			zap.Any("start", m.start),
			zap.Any("goal", m.goal),
		)

		began := time.Now()
		res, err := idastar.FindPath(m.grid, m.start[0], m.start[1], m.goal[0], m.goal[1], opts...)
		elapsed := time.Since(began)
		if err != nil {
			logger.Warn("search failed",
				zap.Error(err),
				zap.Int("expanded", res.Expanded),
				zap.Int("sweeps", res.Sweeps),
				zap.Duration("elapsed", elapsed),
			)
			fmt.Print(renderMaze(m, nil))

			return err
		}

		logger.Info("route found",
			zap.Float64("cost", res.Cost),
			zap.Int("length", len(res.Path)),
			zap.Int("expanded", res.Expanded),
			zap.Int("sweeps", res.Sweeps),
			zap.Duration("elapsed", elapsed),
		)
		fmt.Print(renderMaze(m, res.Path))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
