package handler

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/grpc/reportv1"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ReportDefaults はリクエストで省略された値の既定値と、受け付ける件数の上限です。
type ReportDefaults struct {
	Count int
	Seed  int64
	// AsOf が nil の場合は生成日を評価日とします。
	AsOf *time.Time
	// MaxCount が 0 以下の場合は DefaultMaxCount を使います。
	MaxCount int
}

// DefaultMaxCount は 1 リクエストで生成できる件数の既定の上限です。
const DefaultMaxCount = 100000

// ReportHandler は gRPC 層からレポート生成ユースケースを呼び出すアダプタです。
type ReportHandler struct {
	uc       workforce.UseCase
	defaults ReportDefaults
}

var _ reportv1.ReportServiceServer = (*ReportHandler)(nil)

// NewReportHandler は ReportHandler を生成します。
func NewReportHandler(uc workforce.UseCase, defaults ReportDefaults) *ReportHandler {
	return &ReportHandler{uc: uc, defaults: defaults}
}

// GenerateReport はリクエストの count / seed / as_of でデータセットを生成し、集計結果を返します。
// 出力や永続化は行いません。
func (h *ReportHandler) GenerateReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := h.parseInput(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	report, err := h.uc.BuildReport(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	resp, err := structpb.NewStruct(reportToMap(in, report))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (h *ReportHandler) parseInput(req *structpb.Struct) (workforce.ReportInput, error) {
	in := workforce.ReportInput{Count: h.defaults.Count, Seed: h.defaults.Seed, AsOf: h.defaults.AsOf}
	fields := req.GetFields()

	maxCount := h.defaults.MaxCount
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}

	if v, ok := fields["count"]; ok {
		n, err := integerValue(v)
		if err != nil {
			return in, fmt.Errorf("count: %w", err)
		}
		if n <= 0 || n > int64(maxCount) {
			return in, fmt.Errorf("count must be between 1 and %d", maxCount)
		}
		in.Count = int(n)
	}

	if v, ok := fields["seed"]; ok {
		n, err := integerValue(v)
		if err != nil {
			return in, fmt.Errorf("seed: %w", err)
		}
		in.Seed = n
	}

	if v, ok := fields["as_of"]; ok {
		raw, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return in, fmt.Errorf("as_of must be a YYYY-MM-DD string")
		}
		asOf, err := time.ParseInLocation(time.DateOnly, raw.StringValue, time.UTC)
		if err != nil {
			return in, fmt.Errorf("as_of: %w", err)
		}
		in.AsOf = &asOf
	}

	return in, nil
}

// integerValue は数値または 10 進文字列の整数を受け付けます。
func integerValue(v *structpb.Value) (int64, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return 0, fmt.Errorf("%v is not an exact integer", f)
		}
		return int64(f), nil
	case *structpb.Value_StringValue:
		return strconv.ParseInt(kind.StringValue, 10, 64)
	default:
		return 0, fmt.Errorf("expected a number")
	}
}

func reportToMap(in workforce.ReportInput, r *workforce.Report) map[string]any {
	ds := r.Dataset

	countByGender := make(map[string]any, len(r.CountByGender))
	for g, n := range r.CountByGender {
		countByGender[string(g)] = n
	}
	meanByGender := make(map[string]any, len(r.MeanSalaryByGender))
	for g, m := range r.MeanSalaryByGender {
		meanByGender[string(g)] = m.Float64()
	}

	var gap any
	if r.SalaryGap != nil {
		gap = r.SalaryGap.Float64()
	}

	ageBrackets := make([]any, 0, len(r.AgeBrackets))
	for _, item := range r.AgeBrackets {
		ageBrackets = append(ageBrackets, map[string]any{
			"age_bracket": item.Bracket.String(),
			"count":       item.Count,
			"mean_salary": item.Mean.Float64(),
		})
	}

	genderTenure := make([]any, 0, len(r.GenderTenure))
	for _, item := range r.GenderTenure {
		genderTenure = append(genderTenure, map[string]any{
			"gender":         string(item.Gender),
			"tenure_bracket": item.Tenure.String(),
			"count":          item.Count,
			"mean_salary":    item.Mean.Float64(),
		})
	}

	genderAge := make([]any, 0, len(r.GenderAge))
	for _, item := range r.GenderAge {
		genderAge = append(genderAge, map[string]any{
			"gender":      string(item.Gender),
			"age_bracket": item.Bracket.String(),
			"count":       item.Count,
			"mean_salary": item.Mean.Float64(),
		})
	}

	return map[string]any{
		"seed":                  strconv.FormatInt(in.Seed, 10),
		"count":                 ds.Len(),
		"generated_on":          workforce.FormatDate(ds.GeneratedOn),
		"as_of":                 workforce.FormatDate(ds.AsOf()),
		"count_by_gender":       countByGender,
		"mean_salary_by_gender": meanByGender,
		"salary_gap":            gap,
		"age_brackets":          ageBrackets,
		"gender_tenure":         genderTenure,
		"gender_age":            genderAge,
	}
}
