package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"VitaMe/cmn"
	"VitaMe/cmn/llm"
	"VitaMe/cmn/wealth"
	"VitaMe/serve/reading"
)

var (
	chartDate string
	chartTime string
	chartAI   bool
)

// chartCmd 离线生成一次解读并以 JSON 输出
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print a reading for a birth date as JSON",
	Long: `The chart command derives the BaZi chart for --date/--time and prints the
composed reading. With --ai the configured LLM is asked for the interpretation,
falling back to template or default content exactly like the HTTP service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if chartDate == "" {
			return errors.New("--date is required")
		}

		// 标准输出留给 JSON 结果，只有 --debug 时才输出日志
		if debug {
			cmn.InitLogger(true)
			defer cmn.SyncLogger()
		}
		cmn.InitConfig()
		in := reading.BirthInput{Date: chartDate, Time: chartTime}

		var out any
		if chartAI {
			llm.Init()
			reading.Init()

			ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
			defer cancel()
			rd, _, err := reading.DefaultService().Interpret(ctx, "", in)
			if err != nil {
				cmn.GetLogger().Error("interpret failed", zap.Error(err))
				return err
			}
			out = rd
		} else {
			out = reading.NewService(reading.Options{
				Engine: wealth.FromConfig(),
				Logger: cmn.GetLogger(),
			}).Compose(in)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode reading: %w", err)
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartDate, "date", "", "birth date, YYYY-MM-DD")
	chartCmd.Flags().StringVar(&chartTime, "time", "", "birth time, HH:MM")
	chartCmd.Flags().BoolVar(&chartAI, "ai", false, "ask the configured LLM for the interpretation")
	rootCmd.AddCommand(chartCmd)
}
