package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"

	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagFile       string
	flagAlgorithm  string
	flagQuantum    int
	flagRoundRobin string
	flagJSON       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cpu-scheduler",
		Short: "Simulate classical CPU scheduling algorithms",
		Long: `cpu-scheduler computes the schedule FCFS, SJF, SRTF, Round-Robin and
priority scheduling produce for a set of processes, with completion,
turnaround and waiting times and the execution timeline.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file or directory holding config.yaml")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(compareCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.ConfigPath = flagConfig
			cfg := config.GetSchedulerConfig()
			app := api.NewApp(cfg)
			log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
			return nil
		},
	}
}

func addProcessFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Process file (.csv: id,burst,arrival[,priority] or .json)")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 0, "Round-Robin time quantum (default from config)")
	cmd.Flags().StringVar(&flagRoundRobin, "rr-mode", "", "Round-Robin mode: sweep or queue (default from config)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	_ = cmd.MarkFlagRequired("file")
}

// loadRequest reads the process file and fills round robin parameters from
// flags, then the file, then config.
func loadRequest() (*requests.ScheduleRequests, error) {
	cfg, err := config.LoadSchedulerConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	request, err := loader.LoadFile(flagFile)
	if err != nil {
		return nil, err
	}
	if flagQuantum != 0 {
		request.TimeQuantum = flagQuantum
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = cfg.RoundRobinTimeQuantum
	}
	if flagRoundRobin != "" {
		request.RoundRobinMode = flagRoundRobin
	}
	if request.RoundRobinMode == "" {
		request.RoundRobinMode = cfg.RoundRobinMode
	}
	return request, nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a process file with one algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := loadRequest()
			if err != nil {
				return err
			}
			name := flagAlgorithm
			if name == "" {
				name = request.Algorithm
			}
			algorithm, err := schedulers.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			if err := request.Validate(algorithm); err != nil {
				return err
			}

			set := request.ProcessSet()
			opts := request.Options()
			result, err := schedulers.Simulate(algorithm, set, opts)
			if err != nil {
				return err
			}
			response := schedulers.GenerateResponse(algorithm, set, opts, result)

			if flagJSON {
				return outputJSON(response)
			}
			render.Schedule(os.Stdout, response)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "", "FCFS, SJF, SRTF, RR, NPP (non-preemptive priority) or PP (preemptive priority)")
	addProcessFlags(cmd)
	return cmd
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Schedule a process file with every applicable algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := loadRequest()
			if err != nil {
				return err
			}
			if err := request.Validate(schedulers.FirstComeFirstServe); err != nil {
				return err
			}

			set := request.ProcessSet()
			opts := request.Options()
			outcomes, err := schedulers.SimulateAll(set, opts)
			if err != nil {
				return err
			}
			results := make([]responses.ScheduleResponse, 0, len(outcomes))
			for _, outcome := range outcomes {
				results = append(results, schedulers.GenerateResponse(outcome.Algorithm, set, opts, outcome.Result))
			}

			if flagJSON {
				return outputJSON(responses.AllResponse{Results: results})
			}
			render.Comparison(os.Stdout, results)
			return nil
		},
	}
	addProcessFlags(cmd)
	return cmd
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
