package workforce

import (
	"fmt"
	"sort"
)

// AgeBracketMean は年齢階級ごとの平均給与です。
type AgeBracketMean struct {
	Bracket AgeBracket
	Count   int
	Mean    Money
}

// GenderTenureMean は性別・勤続階級ごとの平均給与です。
type GenderTenureMean struct {
	Gender  Gender
	Tenure  TenureBracket
	Count   int
	Mean    Money
}

// GenderAgeMean は性別・年齢階級ごとの平均給与です。
type GenderAgeMean struct {
	Gender  Gender
	Bracket AgeBracket
	Count   int
	Mean    Money
}

// Aggregator はデータセットに対する読み取り専用の集計を提供します。
type Aggregator struct {
	ds *Dataset
}

// NewAggregator は導出指標付きのデータセットから Aggregator を生成します。
func NewAggregator(ds *Dataset) (*Aggregator, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is required: %w", ErrConfiguration)
	}
	if !ds.Derived() {
		return nil, ErrNotDerived
	}
	return &Aggregator{ds: ds}, nil
}

// salaryAccumulator はグループの合計と件数を保持します。
type salaryAccumulator struct {
	sum   int64
	count int
}

func (a *salaryAccumulator) add(m Money) {
	a.sum += int64(m)
	a.count++
}

// mean は合計を件数で割り、1 グロシュ単位で四捨五入 (0 から遠い方向) します。
func (a salaryAccumulator) mean() Money {
	return roundDiv(a.sum, int64(a.count))
}

func roundDiv(sum, n int64) Money {
	if sum >= 0 {
		return Money((2*sum + n) / (2 * n))
	}
	return -Money((-2*sum + n) / (2 * n))
}

// CountByGender は性別ごとの人数を返します。該当者のいない性別は含みません。
func (a *Aggregator) CountByGender() map[Gender]int {
	counts := make(map[Gender]int, len(Genders))
	for _, rec := range a.ds.Records {
		counts[rec.Gender]++
	}
	return counts
}

// MeanSalaryByGender は性別ごとの平均給与を返します。空のグループは含みません。
func (a *Aggregator) MeanSalaryByGender() map[Gender]Money {
	acc := make(map[Gender]*salaryAccumulator, len(Genders))
	for _, rec := range a.ds.Records {
		bucket, ok := acc[rec.Gender]
		if !ok {
			bucket = &salaryAccumulator{}
			acc[rec.Gender] = bucket
		}
		bucket.add(rec.Salary)
	}

	means := make(map[Gender]Money, len(acc))
	for g, bucket := range acc {
		means[g] = bucket.mean()
	}
	return means
}

// SalaryGenderGap は男性平均から女性平均を引いた差額を返します。
func (a *Aggregator) SalaryGenderGap() (Money, error) {
	means := a.MeanSalaryByGender()
	male, ok := means[GenderMale]
	if !ok {
		return 0, fmt.Errorf("no %s records: %w", GenderMale, ErrInsufficientData)
	}
	female, ok := means[GenderFemale]
	if !ok {
		return 0, fmt.Errorf("no %s records: %w", GenderFemale, ErrInsufficientData)
	}
	return male - female, nil
}

// MeanSalaryByAgeBracket は年齢階級ごとの平均給与を年齢の昇順で返します。
func (a *Aggregator) MeanSalaryByAgeBracket() []AgeBracketMean {
	acc := make(map[AgeBracket]*salaryAccumulator)
	for i, rec := range a.ds.Records {
		m := a.ds.metrics[i]
		bucket, ok := acc[m.AgeBracket]
		if !ok {
			bucket = &salaryAccumulator{}
			acc[m.AgeBracket] = bucket
		}
		bucket.add(rec.Salary)
	}

	result := make([]AgeBracketMean, 0, len(acc))
	for _, b := range AgeBrackets {
		bucket, ok := acc[b]
		if !ok {
			continue
		}
		result = append(result, AgeBracketMean{Bracket: b, Count: bucket.count, Mean: bucket.mean()})
	}
	return result
}

// MeanSalaryByGenderAndTenureBracket は (性別, 勤続階級) 順に平均給与を返します。
func (a *Aggregator) MeanSalaryByGenderAndTenureBracket() []GenderTenureMean {
	type key struct {
		gender Gender
		tenure TenureBracket
	}
	acc := make(map[key]*salaryAccumulator)
	for i, rec := range a.ds.Records {
		k := key{gender: rec.Gender, tenure: a.ds.metrics[i].TenureBracket}
		bucket, ok := acc[k]
		if !ok {
			bucket = &salaryAccumulator{}
			acc[k] = bucket
		}
		bucket.add(rec.Salary)
	}

	result := make([]GenderTenureMean, 0, len(acc))
	for k, bucket := range acc {
		result = append(result, GenderTenureMean{
			Gender: k.gender,
			Tenure: k.tenure,
			Count:  bucket.count,
			Mean:   bucket.mean(),
		})
	}
	SortGenderTenureMeans(result)
	return result
}

// MeanSalaryByGenderAndAgeBracket は性別ごとに年齢階級の平均給与を返します。
func (a *Aggregator) MeanSalaryByGenderAndAgeBracket() []GenderAgeMean {
	type key struct {
		gender  Gender
		bracket AgeBracket
	}
	acc := make(map[key]*salaryAccumulator)
	for i, rec := range a.ds.Records {
		k := key{gender: rec.Gender, bracket: a.ds.metrics[i].AgeBracket}
		bucket, ok := acc[k]
		if !ok {
			bucket = &salaryAccumulator{}
			acc[k] = bucket
		}
		bucket.add(rec.Salary)
	}

	result := make([]GenderAgeMean, 0, len(acc))
	for _, g := range Genders {
		for _, b := range AgeBrackets {
			bucket, ok := acc[key{gender: g, bracket: b}]
			if !ok {
				continue
			}
			result = append(result, GenderAgeMean{Gender: g, Bracket: b, Count: bucket.count, Mean: bucket.mean()})
		}
	}
	return result
}

// SortGenderTenureMeans は (性別, 勤続階級) の昇順に並べ替えます。
func SortGenderTenureMeans(items []GenderTenureMean) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Gender != items[j].Gender {
			return genderRank(items[i].Gender) < genderRank(items[j].Gender)
		}
		return items[i].Tenure < items[j].Tenure
	})
}

func genderRank(g Gender) int {
	for i, candidate := range Genders {
		if candidate == g {
			return i
		}
	}
	return len(Genders)
}
