package workforce

import "context"

// Repository は生成済みデータセットを関係テーブルとして永続化し、問い合わせる抽象です。
type Repository interface {
	// ReplaceAll はテーブルの内容をデータセットで置き換え、書き込んだ行数を返します。
	ReplaceAll(ctx context.Context, ds *Dataset) (int64, error)
	// Count は保存済みの行数を返します。
	Count(ctx context.Context) (int64, error)
	// MeanSalaryByGenderAndTenureBracket は SQL で性別・勤続階級ごとの平均給与を求めます。
	MeanSalaryByGenderAndTenureBracket(ctx context.Context) ([]GenderTenureMean, error)
}

// Exporter はデータセットをファイル等へ書き出す外部協調者です。
type Exporter interface {
	Name() string
	Export(ds *Dataset) error
}
