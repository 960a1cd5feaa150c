// Package plpl はポーランド語ロケールの値プロバイダです。
// 全ての値は注入された乱数列からのみ生成されるため、同じシードからは同じ値列が得られます。
package plpl

import (
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
)

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+"
	allPassChars = lowerChars + upperChars + digitChars + symbolChars

	defaultPasswordLen = 10
)

var (
	peselWeights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	nipWeights   = []int{6, 5, 7, 2, 3, 4, 5, 6, 7}

	peselFrom = time.Date(1940, time.January, 1, 0, 0, 0, 0, time.UTC)
	peselTo   = time.Date(2007, time.December, 31, 0, 0, 0, 0, time.UTC)
)

var asciiFolder = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n", "ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "A", "Ć", "C", "Ę", "E", "Ł", "L", "Ń", "N", "Ó", "O", "Ś", "S", "Ź", "Z", "Ż", "Z",
)

// Provider は workforce.Provider のポーランド語実装です。
type Provider struct {
	src workforce.RandomSource
}

// New は乱数列を共有する Provider を生成します。
func New(src workforce.RandomSource) *Provider {
	return &Provider{src: src}
}

// Factory は workforce.ProviderFactory として使える生成関数です。
func Factory(src workforce.RandomSource) workforce.Provider {
	return New(src)
}

// FirstName は性別に応じた名を返します。
func (p *Provider) FirstName(g workforce.Gender) string {
	if g == workforce.GenderFemale {
		return p.pick(femaleFirstNames)
	}
	return p.pick(maleFirstNames)
}

// LastName は性別に応じた語形の姓を返します。
func (p *Provider) LastName(g workforce.Gender) string {
	pair := lastNames[p.src.Intn(len(lastNames))]
	if g == workforce.GenderFemale {
		return pair.female
	}
	return pair.male
}

// PESEL はチェックディジット付きの PESEL 番号を返します。10 桁目の偶奇は性別と一致します。
// 埋め込まれる生年月日は Record.BirthDate とは独立に抽選され、両者が一致するとは限りません。
func (p *Provider) PESEL(g workforce.Gender) string {
	span := int(peselTo.Sub(peselFrom).Hours() / 24)
	birth := peselFrom.AddDate(0, 0, p.src.Intn(span+1))
	serial := p.src.Intn(1000)
	sexDigit := 2 * p.src.Intn(5)
	if g == workforce.GenderMale {
		sexDigit++
	}

	month := int(birth.Month())
	if birth.Year() >= 2000 {
		month += 20
	}

	digits := fmt.Sprintf("%02d%02d%02d%03d%d", birth.Year()%100, month, birth.Day(), serial, sexDigit)
	return digits + fmt.Sprint(peselChecksum(digits))
}

// Address は「ul. Polna 12/3, 00-950 Kraków」形式の住所を返します。
func (p *Provider) Address() string {
	prefix := p.pick(streetPrefixes)
	street := p.pick(streetNames)
	building := 1 + p.src.Intn(199)
	flat := 1 + p.src.Intn(99)
	return fmt.Sprintf("%s %s %d/%d, %s %s", prefix, street, building, flat, p.PostalCode(), p.City())
}

// Country は国名を返します。
func (p *Provider) Country() string {
	return p.pick(countries)
}

// City は都市名を返します。
func (p *Provider) City() string {
	return p.pick(cities)
}

// PostalCode は NN-NNN 形式の郵便番号を返します。
func (p *Provider) PostalCode() string {
	return fmt.Sprintf("%02d-%03d", p.src.Intn(100), p.src.Intn(1000))
}

// Job は職種を返します。
func (p *Provider) Job() string {
	return p.pick(jobs)
}

// InsuranceNumber はチェックディジット付きの NIP 番号 (XXX-XXX-XX-XX) を返します。
// チェックディジットが 10 になる場合は引き直します。
func (p *Provider) InsuranceNumber() string {
	for {
		var b strings.Builder
		b.WriteByte(byte('1' + p.src.Intn(9)))
		for i := 1; i < 9; i++ {
			b.WriteByte(byte('0' + p.src.Intn(10)))
		}
		digits := b.String()

		check := weightedSum(digits, nipWeights) % 11
		if check == 10 {
			continue
		}
		full := digits + fmt.Sprint(check)
		return full[0:3] + "-" + full[3:6] + "-" + full[6:8] + "-" + full[8:10]
	}
}

// Email は <word>.<word><NN>@<domain> 形式のアドレスを返します。
func (p *Provider) Email() string {
	first := p.pick(emailWords)
	second := p.pick(emailWords)
	return fmt.Sprintf("%s.%s%02d@%s", first, second, p.src.Intn(100), p.pick(emailDomains))
}

// Phone は +48 の携帯番号を返します。
func (p *Provider) Phone() string {
	return fmt.Sprintf("+48 %03d %03d %03d", 500+p.src.Intn(400), p.src.Intn(1000), p.src.Intn(1000))
}

// CardNumber は Luhn チェックを満たす 16 桁のカード番号を返します。
func (p *Provider) CardNumber() string {
	var b strings.Builder
	b.WriteByte('4')
	for i := 1; i < 15; i++ {
		b.WriteByte(byte('0' + p.src.Intn(10)))
	}
	digits := b.String()
	return digits + fmt.Sprint(luhnCheckDigit(digits))
}

// Login は英小文字と数字からなるログイン名を返します。
func (p *Provider) Login() string {
	surname := lastNames[p.src.Intn(len(lastNames))].male
	return fmt.Sprintf("%s%s%d", p.pick(emailWords), strings.ToLower(asciiFolder.Replace(surname)), p.src.Intn(1000))
}

// Password は各文字種を最低 1 文字含むパスワードを返します。
func (p *Provider) Password() string {
	buf := make([]byte, defaultPasswordLen)

	// guarantee one from each class
	buf[0] = p.pickByte(lowerChars)
	buf[1] = p.pickByte(upperChars)
	buf[2] = p.pickByte(digitChars)
	buf[3] = p.pickByte(symbolChars)

	for i := 4; i < len(buf); i++ {
		buf[i] = p.pickByte(allPassChars)
	}

	// shuffle using Fisher-Yates
	for i := len(buf) - 1; i > 0; i-- {
		j := p.src.Intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

func (p *Provider) pick(s []string) string {
	return s[p.src.Intn(len(s))]
}

func (p *Provider) pickByte(s string) byte {
	return s[p.src.Intn(len(s))]
}

func peselChecksum(digits string) int {
	return (10 - weightedSum(digits, peselWeights)%10) % 10
}

func weightedSum(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	return sum
}

// luhnCheckDigit は payload に付与するチェックディジットを返します。
func luhnCheckDigit(payload string) int {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
