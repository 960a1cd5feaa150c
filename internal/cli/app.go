package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/export/csvexport"
	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/export/xlsxexport"
	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/provider/plpl"
	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"github.com/ogurasousui/codex-workforce-synth/internal/platform/config"
	pg "github.com/ogurasousui/codex-workforce-synth/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-workforce-synth/internal/platform/logger"
)

// options はコマンドラインで上書きされる設定値です。
type options struct {
	configPath string
	count      int
	seed       int64
	asOf       string

	countSet bool
	seedSet  bool
	asOfSet  bool
}

// loadConfig は設定ファイルを読み込み、フラグで指定された値を上書きします。
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(config.EffectivePath(opts.configPath))
	if err != nil {
		return nil, err
	}

	if opts.countSet {
		if opts.count <= 0 || opts.count > cfg.Generation.MaxCount {
			return nil, fmt.Errorf("--count must be between 1 and %d: %w", cfg.Generation.MaxCount, workforce.ErrConfiguration)
		}
		cfg.Generation.Count = opts.count
	}
	if opts.seedSet {
		cfg.Generation.SeedUsed = opts.seed
	}
	if opts.asOfSet {
		asOf, err := config.ParseDate(opts.asOf)
		if err != nil {
			return nil, fmt.Errorf("--as-of %q: %w", opts.asOf, workforce.ErrInvalidDate)
		}
		cfg.Generation.AsOf = &asOf
	}
	return cfg, nil
}

// reportInput は設定から 1 回分の入力を組み立てます。
func reportInput(cfg *config.Config) workforce.ReportInput {
	return workforce.ReportInput{
		Count: cfg.Generation.Count,
		Seed:  cfg.Generation.SeedUsed,
		AsOf:  cfg.Generation.AsOf,
	}
}

// app は 1 コマンド実行分の依存関係です。
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *workforce.Service
	close   func()
}

// newApp はロガー、出力先、データベースを設定に従って組み立てます。
// withSideEffects が false の場合は出力も永続化も構成しません。
func newApp(ctx context.Context, cfg *config.Config, logOut io.Writer, withSideEffects bool) (*app, error) {
	log, err := logger.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	gen := workforce.NewGenerator(plpl.Factory, nil)
	a := &app{cfg: cfg, logger: log, close: func() {}}

	if !withSideEffects {
		a.service = workforce.NewService(gen, nil, nil).WithLogger(log)
		return a, nil
	}

	var exporters []workforce.Exporter
	if cfg.Export.CSVPath != "" {
		exporters = append(exporters, csvexport.New(cfg.Export.CSVPath))
	}
	if cfg.Export.XLSXPath != "" {
		exporters = append(exporters, xlsxexport.New(cfg.Export.XLSXPath))
	}

	pool, err := pg.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	var (
		repo workforce.Repository
		tx   workforce.TransactionManager
	)
	if pool != nil {
		repo = postgres.NewEmployeeRepository(pool)
		tx = pg.NewTransactionManager(pool)
		a.close = pool.Close
	}

	a.service = workforce.NewService(gen, repo, tx, exporters...).WithLogger(log)
	return a, nil
}
