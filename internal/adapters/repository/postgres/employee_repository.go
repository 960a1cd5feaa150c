package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	pgdb "github.com/ogurasousui/codex-workforce-synth/internal/platform/db/postgres"
)

const (
	employeeUniqueViolationCode = "23505"
	employeeCheckViolationCode  = "23514"
	undefinedTableCode          = "42P01"
)

// ErrSchemaMissing は employees テーブルが存在しない場合に返されます。
var ErrSchemaMissing = errors.New("postgres: employees table is missing, run migrations first")

var employeesTable = pgx.Identifier{"employees"}

// employeeColumns は COPY で書き込む列です。salary は salary_grosze から生成されます。
var employeeColumns = []string{
	"id",
	"first_name",
	"last_name",
	"gender",
	"pesel",
	"address",
	"country",
	"city",
	"postal_code",
	"job_title",
	"insurance_number",
	"email",
	"phone",
	"card_number",
	"login",
	"password",
	"birth_date",
	"hire_date",
	"salary_grosze",
	"disability_level",
	"age",
	"tenure",
	"age_bracket",
	"tenure_bracket",
}

const meanSalaryByGenderAndTenureQuery = `
        SELECT gender,
               CASE
                   WHEN tenure BETWEEN 0 AND 5 THEN '0-5'
                   WHEN tenure BETWEEN 6 AND 10 THEN '6-10'
                   ELSE '11+'
               END AS tenure_group,
               COUNT(*) AS employees,
               ROUND(AVG(salary_grosze))::bigint AS mean_salary
          FROM employees
         GROUP BY gender, tenure_group
         ORDER BY gender, MIN(tenure)
    `

// EmployeeRepository は PostgreSQL を利用した従業員テーブルの実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// ReplaceAll は employees を空にしてからデータセットを COPY で一括投入します。
// 原子性は呼び出し側のトランザクションで担保します。
func (r *EmployeeRepository) ReplaceAll(ctx context.Context, ds *workforce.Dataset) (int64, error) {
	rows, err := employeeRows(ds)
	if err != nil {
		return 0, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `TRUNCATE TABLE employees`); err != nil {
		return 0, translateEmployeePgError(err)
	}

	n, err := exec.CopyFrom(ctx, employeesTable, employeeColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, translateEmployeePgError(err)
	}
	return n, nil
}

// Count は employees の行数を返します。
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var n int64
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, translateEmployeePgError(err)
	}
	return n, nil
}

// MeanSalaryByGenderAndTenureBracket は性別・勤続階級ごとの人数と平均給与を SQL で求めます。
func (r *EmployeeRepository) MeanSalaryByGenderAndTenureBracket(ctx context.Context) ([]workforce.GenderTenureMean, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, meanSalaryByGenderAndTenureQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	var result []workforce.GenderTenureMean
	for rows.Next() {
		item, err := scanGenderTenureMean(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return result, nil
}

func employeeRows(ds *workforce.Dataset) ([][]any, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is required: %w", workforce.ErrConfiguration)
	}
	if !ds.Derived() {
		return nil, workforce.ErrNotDerived
	}

	rows := make([][]any, 0, ds.Len())
	for i, rec := range ds.Records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("record %d id %q: %w", i, rec.ID, workforce.ErrInvalidRecord)
		}
		m, _ := ds.Metrics(i)
		rows = append(rows, []any{
			id,
			rec.FirstName,
			rec.LastName,
			string(rec.Gender),
			rec.PESEL,
			rec.Address,
			rec.Country,
			rec.City,
			rec.PostalCode,
			rec.JobTitle,
			rec.InsuranceNumber,
			rec.Email,
			rec.Phone,
			rec.CardNumber,
			rec.Login,
			rec.Password,
			rec.BirthDate,
			rec.HireDate,
			int64(rec.Salary),
			string(rec.Disability),
			int32(m.Age),
			int32(m.Tenure),
			m.AgeBracket.String(),
			m.TenureBracket.String(),
		})
	}
	return rows, nil
}

func scanGenderTenureMean(row pgx.Row) (workforce.GenderTenureMean, error) {
	var (
		gender string
		label  string
		count  int64
		mean   int64
	)
	if err := row.Scan(&gender, &label, &count, &mean); err != nil {
		return workforce.GenderTenureMean{}, translateEmployeePgError(err)
	}

	bracket, err := workforce.ParseTenureBracket(label)
	if err != nil {
		return workforce.GenderTenureMean{}, err
	}

	return workforce.GenderTenureMean{
		Gender: workforce.Gender(gender),
		Tenure: bracket,
		Count:  int(count),
		Mean:   workforce.Money(mean),
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case undefinedTableCode:
			return fmt.Errorf("%w: %s", ErrSchemaMissing, pgErr.Message)
		case employeeUniqueViolationCode, employeeCheckViolationCode:
			return fmt.Errorf("%s: %w", pgErr.Message, workforce.ErrInvalidRecord)
		}
	}

	return err
}
