package workforce

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	minAge       = 18
	maxAge       = 70
	maxHireYears = 10
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// RandomSource はレコード生成で共有される単一の乱数列です。
// *rand.Rand はこのインターフェースを満たします。
type RandomSource interface {
	Intn(n int) int
	Float64() float64
	Read(p []byte) (int, error)
}

// NewRandomSource はシードから決定的な乱数列を生成します。
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Provider はロケールに応じた項目値を返す外部の値プロバイダです。
// 実装は渡された RandomSource 以外の乱数を使ってはいけません。
type Provider interface {
	FirstName(g Gender) string
	LastName(g Gender) string
	PESEL(g Gender) string
	Address() string
	Country() string
	City() string
	PostalCode() string
	Job() string
	InsuranceNumber() string
	Email() string
	Phone() string
	CardNumber() string
	Login() string
	Password() string
}

// ProviderFactory は乱数列を共有する Provider を生成します。
type ProviderFactory func(src RandomSource) Provider

// Generator は社員レコードの集合を生成します。
type Generator struct {
	newProvider ProviderFactory
	clock       Clock
}

// NewGenerator は Generator を生成します。
func NewGenerator(newProvider ProviderFactory, clock Clock) *Generator {
	if clock == nil {
		clock = realClock{}
	}
	return &Generator{newProvider: newProvider, clock: clock}
}

// Generate は count 件のレコードを seed から決定的に生成します。
func (g *Generator) Generate(count int, seed int64) (*Dataset, error) {
	return g.generate(count, seed, NewRandomSource(seed))
}

// generate の抽選順序は固定です。順序を変えると同じシードでも結果が変わります。
//
//	gender, first name, last name, id, pesel, address, country, city,
//	postal code, job, insurance number, email, phone, card, login, password,
//	birth date, hire date, salary, disability
func (g *Generator) generate(count int, seed int64, src RandomSource) (*Dataset, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrConfiguration)
	}
	if g.newProvider == nil {
		return nil, fmt.Errorf("provider is required: %w", ErrConfiguration)
	}

	today := normalizeDate(g.clock.Now())
	provider := g.newProvider(src)

	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		gender := Genders[src.Intn(len(Genders))]

		rec := Record{Gender: gender}
		rec.FirstName = provider.FirstName(gender)
		rec.LastName = provider.LastName(gender)

		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("record %d: id: %w", i, err)
		}
		rec.ID = id.String()

		rec.PESEL = provider.PESEL(gender)
		rec.Address = provider.Address()
		rec.Country = provider.Country()
		rec.City = provider.City()
		rec.PostalCode = provider.PostalCode()
		rec.JobTitle = provider.Job()
		rec.InsuranceNumber = provider.InsuranceNumber()
		rec.Email = provider.Email()
		rec.Phone = provider.Phone()
		rec.CardNumber = provider.CardNumber()
		rec.Login = provider.Login()
		rec.Password = provider.Password()

		rec.BirthDate = drawBirthDate(src, today)
		rec.HireDate = drawHireDate(src, today)
		rec.Salary = drawSalary(src)
		rec.Disability = DisabilityLevels[src.Intn(len(DisabilityLevels))]

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return &Dataset{Seed: seed, GeneratedOn: today, Records: records}, nil
}

// drawBirthDate は today 時点で 18〜70 歳となる生年月日を返します。
func drawBirthDate(src RandomSource, today time.Time) time.Time {
	start := yearsBefore(today, maxAge+1).AddDate(0, 0, 1)
	end := yearsBefore(today, minAge)
	return drawDate(src, start, end)
}

// drawHireDate は [today-10y, today-1d] の入社日を返します。
func drawHireDate(src RandomSource, today time.Time) time.Time {
	start := yearsBefore(today, maxHireYears)
	end := today.AddDate(0, 0, -1)
	return drawDate(src, start, end)
}

func drawDate(src RandomSource, start, end time.Time) time.Time {
	span := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, src.Intn(span+1))
}

func drawSalary(src RandomSource) Money {
	lo, hi := MinSalary.Float64(), MaxSalary.Float64()
	v := lo + src.Float64()*(hi-lo)
	return Money(math.Round(v * 100))
}

// yearsBefore は n 年前の同月同日を返します。存在しない日 (2/29) は月末に丸めます。
func yearsBefore(t time.Time, n int) time.Time {
	year := t.Year() - n
	day := t.Day()
	if last := daysIn(t.Month(), year); day > last {
		day = last
	}
	return time.Date(year, t.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
