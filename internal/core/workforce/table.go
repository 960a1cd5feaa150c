package workforce

import "time"

// ColumnType は表形式出力の列型です。
type ColumnType string

const (
	ColumnString ColumnType = "string"
	ColumnDate   ColumnType = "date"
	ColumnInt    ColumnType = "int"
	ColumnMoney  ColumnType = "money"
)

// Column は表形式出力の列定義です。
type Column struct {
	Name string
	Type ColumnType
}

// RecordColumns は生成時に確定する列です。
var RecordColumns = []Column{
	{Name: "id", Type: ColumnString},
	{Name: "first_name", Type: ColumnString},
	{Name: "last_name", Type: ColumnString},
	{Name: "gender", Type: ColumnString},
	{Name: "pesel", Type: ColumnString},
	{Name: "address", Type: ColumnString},
	{Name: "country", Type: ColumnString},
	{Name: "city", Type: ColumnString},
	{Name: "postal_code", Type: ColumnString},
	{Name: "job_title", Type: ColumnString},
	{Name: "insurance_number", Type: ColumnString},
	{Name: "email", Type: ColumnString},
	{Name: "phone", Type: ColumnString},
	{Name: "card_number", Type: ColumnString},
	{Name: "login", Type: ColumnString},
	{Name: "password", Type: ColumnString},
	{Name: "birth_date", Type: ColumnDate},
	{Name: "hire_date", Type: ColumnDate},
	{Name: "salary", Type: ColumnMoney},
	{Name: "disability_level", Type: ColumnString},
}

// DerivedColumns は導出後に追加される列です。
var DerivedColumns = []Column{
	{Name: "age", Type: ColumnInt},
	{Name: "tenure", Type: ColumnInt},
	{Name: "age_bracket", Type: ColumnString},
	{Name: "tenure_bracket", Type: ColumnString},
}

// Columns はデータセットの現在の列構成を返します。
func (d *Dataset) Columns() []Column {
	cols := make([]Column, 0, len(RecordColumns)+len(DerivedColumns))
	cols = append(cols, RecordColumns...)
	if d.Derived() {
		cols = append(cols, DerivedColumns...)
	}
	return cols
}

// Row は i 番目のレコードを Columns の順に返します。
// 値の型は string / time.Time / int / Money のいずれかです。
func (d *Dataset) Row(i int) []any {
	r := d.Records[i]
	row := []any{
		r.ID,
		r.FirstName,
		r.LastName,
		string(r.Gender),
		r.PESEL,
		r.Address,
		r.Country,
		r.City,
		r.PostalCode,
		r.JobTitle,
		r.InsuranceNumber,
		r.Email,
		r.Phone,
		r.CardNumber,
		r.Login,
		r.Password,
		r.BirthDate,
		r.HireDate,
		r.Salary,
		string(r.Disability),
	}
	if m, ok := d.Metrics(i); ok {
		row = append(row, m.Age, m.Tenure, m.AgeBracket.String(), m.TenureBracket.String())
	}
	return row
}

// FormatDate は表形式出力で使う日付表現です。
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
