package main

import (
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/idastar"
)

// Wire events for the browser visualizer. One "expand" event per node
// examined, one terminal "result" event.
type expandEvent struct {
	Type string  `json:"type"`
	X    int     `json:"x"`
	Y    int     `json:"y"`
	G    float64 `json:"g"`
}

type resultEvent struct {
	Type     string   `json:"type"`
	Path     [][2]int `json:"path"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Sweeps   int      `json:"sweeps"`
	Error    string   `json:"error,omitempty"`
}

var serveCmd = &cobra.Command{
	Use:   "serve [maze-file]",
	Short: "Stream the live search frontier over a websocket",
	Long: `serve loads a maze and listens for websocket connections on /ws.
Each connection replays the search from scratch, emitting one JSON event
per node examined followed by a terminal result event, so a browser
visualizer can animate the recursion frontier.`,
	Args: cobra.ExactArgs(1),
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
		baseOpts, err := cfg.options()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		m, err := parseMaze(f)
		_ = f.Close()
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		upgrader := websocket.Upgrader{
			// The visualizer is a local dev page; accept any origin.
			CheckOrigin: func(*http.Request) bool { return true },
		}

		http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				logger.Warn("upgrade failed", zap.Error(err))

				return
			}
			defer conn.Close()

			// Visualizers act on an isolated copy: the search is synchronous
			// per connection and instrumentation must not race across them.
			g := m.grid.Clone()
			opts := append([]idastar.Option{
				idastar.WithOnExpand(func(x, y int, cost float64) {
					_ = conn.WriteJSON(expandEvent{Type: "expand", X: x, Y: y, G: cost})
				}),
			}, baseOpts...)

			res, searchErr := idastar.FindPath(g, m.start[0], m.start[1], m.goal[0], m.goal[1], opts...)
			final := resultEvent{
				Type:     "result",
				Path:     res.Path,
				Cost:     res.Cost,
				Expanded: res.Expanded,
				Sweeps:   res.Sweeps,
			}
			if searchErr != nil {
				final.Error = searchErr.Error()
			}
			if err := conn.WriteJSON(final); err != nil {
				logger.Warn("write failed", zap.Error(err))
			}
		})

		logger.Info("listening", zap.String("addr", addr))

		return http.ListenAndServe(addr, nil)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8642", "Listen address for the visualizer feed")
	rootCmd.AddCommand(serveCmd)
}
