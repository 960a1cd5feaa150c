package workforce

import (
	"fmt"
	"strings"
	"time"
)

// Gender は性別を表します。
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Genders は集計時の並び順を定義します。
var Genders = []Gender{GenderFemale, GenderMale}

// DisabilityLevel は障害等級を表します。
type DisabilityLevel string

const (
	DisabilityNone        DisabilityLevel = "none"
	DisabilityMild        DisabilityLevel = "mild"
	DisabilityModerate    DisabilityLevel = "moderate"
	DisabilitySignificant DisabilityLevel = "significant"
)

// DisabilityLevels は抽選に使う順序付きの等級一覧です。
var DisabilityLevels = []DisabilityLevel{
	DisabilityNone,
	DisabilityMild,
	DisabilityModerate,
	DisabilitySignificant,
}

const (
	// MinSalary と MaxSalary は給与の生成範囲 (グロシュ単位) です。
	MinSalary Money = 466600
	MaxSalary Money = 1500000
)

// Money は 1/100 単位 (グロシュ) で表した金額です。
type Money int64

// Float64 は金額を PLN 単位の浮動小数点で返します。
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// String は小数点以下 2 桁の文字列を返します。
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Record は生成された社員 1 名分のデータです。
type Record struct {
	ID              string
	FirstName       string
	LastName        string
	Gender          Gender
	PESEL           string
	Address         string
	Country         string
	City            string
	PostalCode      string
	JobTitle        string
	InsuranceNumber string
	Email           string
	Phone           string
	CardNumber      string
	Login           string
	Password        string
	BirthDate       time.Time
	HireDate        time.Time
	Salary          Money
	Disability      DisabilityLevel
}

// Validate はレコードの必須項目と値域を検証します。
func (r Record) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"id", r.ID},
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"pesel", r.PESEL},
		{"address", r.Address},
		{"country", r.Country},
		{"city", r.City},
		{"postal_code", r.PostalCode},
		{"job_title", r.JobTitle},
		{"insurance_number", r.InsuranceNumber},
		{"email", r.Email},
		{"phone", r.Phone},
		{"card_number", r.CardNumber},
		{"login", r.Login},
		{"password", r.Password},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, ErrInvalidRecord)
		}
	}

	if !isValidGender(r.Gender) {
		return fmt.Errorf("gender %q: %w", r.Gender, ErrInvalidRecord)
	}
	if !isValidDisability(r.Disability) {
		return fmt.Errorf("disability %q: %w", r.Disability, ErrInvalidRecord)
	}
	if r.Salary < MinSalary || r.Salary > MaxSalary {
		return fmt.Errorf("salary %s: %w", r.Salary, ErrInvalidRecord)
	}
	if r.BirthDate.IsZero() || r.HireDate.IsZero() {
		return fmt.Errorf("dates: %w", ErrInvalidRecord)
	}
	if r.HireDate.Before(r.BirthDate) {
		return fmt.Errorf("hire date before birth date: %w", ErrInvalidRecord)
	}
	return nil
}

// Metrics はレコードから導出される指標です。
type Metrics struct {
	Age           int
	Tenure        int
	AgeBracket    AgeBracket
	TenureBracket TenureBracket
}

// Dataset は 1 回の生成で得られた順序付きレコード集合です。
type Dataset struct {
	Seed        int64
	GeneratedOn time.Time
	Records     []Record

	asOf    time.Time
	metrics []Metrics
}

// Len はレコード数を返します。
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Derived は導出指標が付与済みかどうかを返します。
func (d *Dataset) Derived() bool {
	return d.metrics != nil
}

// AsOf は導出時の評価日を返します。
func (d *Dataset) AsOf() time.Time {
	return d.asOf
}

// Metrics は i 番目のレコードの導出指標を返します。
func (d *Dataset) Metrics(i int) (Metrics, bool) {
	if d.metrics == nil || i < 0 || i >= len(d.metrics) {
		return Metrics{}, false
	}
	return d.metrics[i], true
}

func isValidGender(g Gender) bool {
	switch g {
	case GenderFemale, GenderMale:
		return true
	default:
		return false
	}
}

func isValidDisability(l DisabilityLevel) bool {
	switch l {
	case DisabilityNone, DisabilityMild, DisabilityModerate, DisabilitySignificant:
		return true
	default:
		return false
	}
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
