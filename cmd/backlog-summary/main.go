package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amay077/backlog-summary/activity"
	"github.com/amay077/backlog-summary/calculator"
	"github.com/amay077/backlog-summary/client/backlog"
	"github.com/amay077/backlog-summary/config"
	"github.com/amay077/backlog-summary/console"
	"github.com/amay077/backlog-summary/export"
	"github.com/amay077/backlog-summary/summary"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %s", err.Error())
		os.Exit(1)
	}
}

type options struct {
	month    string
	encoding string
	outDir   string
	confPath string
	yes      bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "backlog-summary",
		Short:         "Generate a monthly attendance report from Backlog activity",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.month, "month", "", "target month (YYYY-MM)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "CSV encoding: shift-jis or utf-8 (default shift-jis)")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "output directory (default reports)")
	cmd.Flags().StringVar(&opts.confPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&opts.yes, "yes", false, "overwrite existing report files without asking")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func run(ctx context.Context, opts options) error {
	month, err := summary.ParseMonth(opts.month)
	if err != nil {
		return err
	}

	level := slog.LevelError
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	conf, err := config.Load(opts.confPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	writer := &export.Writer{
		Dir:      resolveOutDir(opts, conf),
		Encoding: resolveEncoding(opts, conf),
	}
	if err := export.ValidateEncoding(writer.Encoding); err != nil {
		return err
	}

	bl := &backlog.Client{
		SpaceID: conf.SpaceID,
		APIKey:  conf.APIKey,
		Logger:  logger,
	}
	if err := bl.Init(); err != nil {
		return fmt.Errorf("backlog.Client.Init: %w", err)
	}
	if conf.OAuth != nil {
		bl.UseOAuth(ctx, conf.OAuth.ClientID, conf.OAuth.ClientSecret, &oauth2.Token{
			RefreshToken: conf.OAuth.RefreshToken,
			Expiry:       time.Now().Add(-time.Minute),
		})
	}

	fmt.Println("Backlog に接続中...")
	user, err := bl.Myself(ctx)
	if err != nil {
		if errors.Is(err, backlog.ErrUnauthorized) {
			return fmt.Errorf("認証に失敗しました。API キーを確認してください")
		}
		return fmt.Errorf("bl.Myself: %w", err)
	}
	fmt.Printf("認証成功（ユーザーID: %d）\n", user.ID)

	fmt.Printf("%s のアクティビティを取得中...\n", month)
	raw, err := bl.UserActivities(ctx, user.ID, month.Start(), month.End())
	if err != nil {
		return fmt.Errorf("bl.UserActivities: %w", err)
	}

	activities := activity.FromBacklog(raw)
	fmt.Printf("%d 件のアクティビティを処理しました。\n", len(activities))

	if len(activities) == 0 {
		color.Yellow("対象月のアクティビティがありません。")
		return nil
	}

	if !opts.yes && !confirmOverwrite(writer, month) {
		return fmt.Errorf("aborted")
	}

	detailPath, err := writer.WriteDetail(month, activities)
	if err != nil {
		return fmt.Errorf("writer.WriteDetail: %w", err)
	}
	fmt.Printf("明細CSVを出力しました: %s\n", detailPath)

	days, err := calculator.Aggregate(activities, month)
	if err != nil {
		return fmt.Errorf("calculator.Aggregate: %w", err)
	}

	summaryPath, err := writer.WriteSummary(month, days)
	if err != nil {
		return fmt.Errorf("writer.WriteSummary: %w", err)
	}
	fmt.Printf("サマリCSVを出力しました: %s\n", summaryPath)

	color.Green("月次報告書を生成しました（合計 %d 件のアクティビティ）", len(activities))
	return nil
}

// confirmOverwrite asks once before clobbering a previous run's reports.
func confirmOverwrite(writer *export.Writer, month summary.Month) bool {
	for _, path := range []string{writer.DetailPath(month), writer.SummaryPath(month)} {
		if _, err := os.Stat(path); err == nil {
			return console.Confirm(fmt.Sprintf("%s exists. Overwrite?", path))
		}
	}
	return true
}

func resolveOutDir(opts options, conf *config.Config) string {
	if opts.outDir != "" {
		return opts.outDir
	}
	if conf.Output != nil && conf.Output.Dir != "" {
		return conf.Output.Dir
	}
	return "reports"
}

func resolveEncoding(opts options, conf *config.Config) string {
	if opts.encoding != "" {
		return opts.encoding
	}
	if conf.Output != nil && conf.Output.Encoding != "" {
		return conf.Output.Encoding
	}
	return export.EncodingShiftJIS
}
