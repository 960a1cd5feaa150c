package workforce

import (
	"fmt"
	"time"
)

// AgeBracket は年齢階級です。値の大小がそのまま昇順を表します。
type AgeBracket int

const (
	AgeBracket18to25 AgeBracket = iota
	AgeBracket26to35
	AgeBracket36to45
	AgeBracket46to55
	AgeBracket56to65
	AgeBracket66to75
	// AgeBracketOutOfRange は [18,76) の外側の年齢です。常に最後に並びます。
	AgeBracketOutOfRange
)

// AgeBrackets は全ての年齢階級を昇順で並べたものです。
var AgeBrackets = []AgeBracket{
	AgeBracket18to25,
	AgeBracket26to35,
	AgeBracket36to45,
	AgeBracket46to55,
	AgeBracket56to65,
	AgeBracket66to75,
	AgeBracketOutOfRange,
}

// ageBracketEdges は左閉右開の境界です。
var ageBracketEdges = []int{18, 26, 36, 46, 56, 66, 76}

var ageBracketLabels = map[AgeBracket]string{
	AgeBracket18to25:     "18-25",
	AgeBracket26to35:     "26-35",
	AgeBracket36to45:     "36-45",
	AgeBracket46to55:     "46-55",
	AgeBracket56to65:     "56-65",
	AgeBracket66to75:     "66-75",
	AgeBracketOutOfRange: "out-of-range",
}

func (b AgeBracket) String() string {
	if label, ok := ageBracketLabels[b]; ok {
		return label
	}
	return fmt.Sprintf("AgeBracket(%d)", int(b))
}

// AgeBracketOf は年齢を階級に振り分けます。
func AgeBracketOf(age int) AgeBracket {
	for i := 0; i < len(ageBracketEdges)-1; i++ {
		if age >= ageBracketEdges[i] && age < ageBracketEdges[i+1] {
			return AgeBracket(i)
		}
	}
	return AgeBracketOutOfRange
}

// TenureBracket は勤続年数の階級です。
type TenureBracket int

const (
	TenureBracket0to5 TenureBracket = iota
	TenureBracket6to10
	TenureBracket11Plus
)

// TenureBrackets は全ての勤続階級を昇順で並べたものです。
var TenureBrackets = []TenureBracket{TenureBracket0to5, TenureBracket6to10, TenureBracket11Plus}

func (b TenureBracket) String() string {
	switch b {
	case TenureBracket0to5:
		return "0-5"
	case TenureBracket6to10:
		return "6-10"
	case TenureBracket11Plus:
		return "11+"
	default:
		return fmt.Sprintf("TenureBracket(%d)", int(b))
	}
}

// ParseTenureBracket はラベルから勤続階級を復元します。
func ParseTenureBracket(label string) (TenureBracket, error) {
	for _, b := range TenureBrackets {
		if b.String() == label {
			return b, nil
		}
	}
	return 0, fmt.Errorf("tenure bracket %q: %w", label, ErrInvalidRecord)
}

// TenureBracketOf は勤続年数を階級に振り分けます。
// 0-5 / 6-10 / それ以外 の順で判定し、SQL の CASE 式と同じ結果になります。
func TenureBracketOf(tenure int) TenureBracket {
	switch {
	case tenure >= 0 && tenure <= 5:
		return TenureBracket0to5
	case tenure >= 6 && tenure <= 10:
		return TenureBracket6to10
	default:
		return TenureBracket11Plus
	}
}

// DeriveAge は asOf 時点の満年齢を返します。
func DeriveAge(birthDate, asOf time.Time) (int, error) {
	years, err := fullYearsBetween(birthDate, asOf)
	if err != nil {
		return 0, fmt.Errorf("birth date: %w", err)
	}
	return years, nil
}

// DeriveTenure は asOf 時点の満勤続年数を返します。
func DeriveTenure(hireDate, asOf time.Time) (int, error) {
	years, err := fullYearsBetween(hireDate, asOf)
	if err != nil {
		return 0, fmt.Errorf("hire date: %w", err)
	}
	return years, nil
}

// Derive はデータセットの全レコードに導出指標を付与します。
// 失敗した場合、データセットは変更されません。
func Derive(ds *Dataset, asOf time.Time) error {
	if ds == nil {
		return fmt.Errorf("dataset is required: %w", ErrConfiguration)
	}
	asOf = normalizeDate(asOf)

	metrics := make([]Metrics, len(ds.Records))
	for i, rec := range ds.Records {
		age, err := DeriveAge(rec.BirthDate, asOf)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}
		tenure, err := DeriveTenure(rec.HireDate, asOf)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}
		metrics[i] = Metrics{
			Age:           age,
			Tenure:        tenure,
			AgeBracket:    AgeBracketOf(age),
			TenureBracket: TenureBracketOf(tenure),
		}
	}

	ds.asOf = asOf
	ds.metrics = metrics
	return nil
}

func fullYearsBetween(date, asOf time.Time) (int, error) {
	date = normalizeDate(date)
	asOf = normalizeDate(asOf)
	if date.After(asOf) {
		return 0, fmt.Errorf("%s is after %s: %w", date.Format(time.DateOnly), asOf.Format(time.DateOnly), ErrInvalidDate)
	}

	years := asOf.Year() - date.Year()
	if asOf.Month() < date.Month() || (asOf.Month() == date.Month() && asOf.Day() < date.Day()) {
		years--
	}
	return years, nil
}
