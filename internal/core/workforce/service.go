package workforce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// UseCase はレポート生成ユースケースの公開インターフェースです。
type UseCase interface {
	BuildReport(ctx context.Context, in ReportInput) (*Report, error)
	Run(ctx context.Context, in ReportInput) (*RunResult, error)
	Query(ctx context.Context) (*StoredSummary, error)
}

// ReportInput はレポート生成時の入力です。AsOf が nil の場合は生成日を評価日とします。
type ReportInput struct {
	Count int
	Seed  int64
	AsOf  *time.Time
}

// Report は 1 回の実行で得られる集計結果です。
type Report struct {
	Dataset            *Dataset
	CountByGender      map[Gender]int
	MeanSalaryByGender map[Gender]Money
	// SalaryGap はどちらかの性別が空の場合 nil です。
	SalaryGap    *Money
	AgeBrackets  []AgeBracketMean
	GenderTenure []GenderTenureMean
	GenderAge    []GenderAgeMean
}

// RunResult は外部協調者まで含めたパイプライン全体の結果です。
type RunResult struct {
	Report        *Report
	Exported      []string
	PersistedRows int64
	QueryResult   []GenderTenureMean
}

// StoredSummary は保存済みテーブルに対する集計結果です。
type StoredSummary struct {
	Rows         int64
	GenderTenure []GenderTenureMean
}

// Service は生成・導出・集計・出力を順に実行します。
type Service struct {
	gen       *Generator
	repo      Repository
	tx        TransactionManager
	exporters []Exporter
	logger    *slog.Logger
}

// NewService は Service を生成します。repo が nil の場合は永続化と照合を行いません。
func NewService(gen *Generator, repo Repository, tx TransactionManager, exporters ...Exporter) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{gen: gen, repo: repo, tx: tx, exporters: exporters, logger: slog.Default()}
}

// WithLogger はログ出力先を差し替えます。
func (s *Service) WithLogger(logger *slog.Logger) *Service {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// BuildReport はデータセットを生成し、指標を導出して集計します。I/O は行いません。
func (s *Service) BuildReport(ctx context.Context, in ReportInput) (*Report, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("generator is required: %w", ErrConfiguration)
	}

	ds, err := s.gen.Generate(in.Count, in.Seed)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "dataset generated", "count", ds.Len(), "seed", in.Seed, "generated_on", FormatDate(ds.GeneratedOn))

	asOf := ds.GeneratedOn
	if in.AsOf != nil {
		asOf = *in.AsOf
	}
	if err := Derive(ds, asOf); err != nil {
		return nil, err
	}

	agg, err := NewAggregator(ds)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Dataset:            ds,
		CountByGender:      agg.CountByGender(),
		MeanSalaryByGender: agg.MeanSalaryByGender(),
		AgeBrackets:        agg.MeanSalaryByAgeBracket(),
		GenderTenure:       agg.MeanSalaryByGenderAndTenureBracket(),
		GenderAge:          agg.MeanSalaryByGenderAndAgeBracket(),
	}

	gap, err := agg.SalaryGenderGap()
	switch {
	case err == nil:
		report.SalaryGap = &gap
	case errors.Is(err, ErrInsufficientData):
		s.logger.WarnContext(ctx, "salary gap unavailable", "error", err)
	default:
		return nil, err
	}

	return report, nil
}

// Run は BuildReport の後、出力と永続化、SQL 集計との照合を行います。
// BuildReport が失敗した場合、外部協調者は一切呼び出されません。
func (s *Service) Run(ctx context.Context, in ReportInput) (*RunResult, error) {
	report, err := s.BuildReport(ctx, in)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Report: report}
	for _, exp := range s.exporters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := exp.Export(report.Dataset); err != nil {
			return nil, fmt.Errorf("export %s: %w", exp.Name(), err)
		}
		result.Exported = append(result.Exported, exp.Name())
		s.logger.InfoContext(ctx, "dataset exported", "exporter", exp.Name())
	}

	if s.repo == nil {
		return result, nil
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		n, err := s.repo.ReplaceAll(txCtx, report.Dataset)
		if err != nil {
			return err
		}
		rows, err := s.repo.MeanSalaryByGenderAndTenureBracket(txCtx)
		if err != nil {
			return err
		}
		result.PersistedRows = n
		result.QueryResult = rows
		return nil
	}); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "dataset persisted", "rows", result.PersistedRows)

	if err := CompareGenderTenure(report.GenderTenure, result.QueryResult); err != nil {
		return nil, err
	}

	return result, nil
}

// CompareGenderTenure は集計結果と SQL 結果を項目単位で比較します。
func CompareGenderTenure(want, got []GenderTenureMean) error {
	if len(want) != len(got) {
		return fmt.Errorf("%d groups vs %d rows: %w", len(want), len(got), ErrCrossCheckMismatch)
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("row %d: %+v vs %+v: %w", i, want[i], got[i], ErrCrossCheckMismatch)
		}
	}
	return nil
}

// Query は保存済みのテーブルを読み取り専用トランザクションで集計します。
// 生成は行わず、直前の Run で永続化された内容をそのまま対象にします。
func (s *Service) Query(ctx context.Context) (*StoredSummary, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("repository is required: %w", ErrConfiguration)
	}

	summary := &StoredSummary{}
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		n, err := s.repo.Count(txCtx)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("stored table is empty: %w", ErrInsufficientData)
		}
		rows, err := s.repo.MeanSalaryByGenderAndTenureBracket(txCtx)
		if err != nil {
			return err
		}
		summary.Rows = n
		summary.GenderTenure = rows
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stored table queried", "rows", summary.Rows, "groups", len(summary.GenderTenure))
	return summary, nil
}
