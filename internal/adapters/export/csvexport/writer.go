package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
)

// Writer はデータセットを CSV ファイルへ書き出します。
type Writer struct {
	path string
}

// New は path へ書き出す Writer を生成します。
func New(path string) *Writer {
	return &Writer{path: path}
}

// Name は出力先の識別名です。
func (w *Writer) Name() string {
	return "csv"
}

// Export はファイルを作成 (既存なら上書き) してデータセットを書き出します。
func (w *Writer) Export(ds *workforce.Dataset) (err error) {
	if w.path == "" {
		return fmt.Errorf("csvexport: path is required: %w", workforce.ErrConfiguration)
	}
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csvexport: create dir: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("csvexport: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csvexport: close file: %w", cerr)
		}
	}()

	return Write(f, ds)
}

// Write はヘッダー行に続けて全レコードを書き出します。
func Write(out io.Writer, ds *workforce.Dataset) error {
	if ds == nil {
		return fmt.Errorf("csvexport: dataset is required: %w", workforce.ErrConfiguration)
	}

	cw := csv.NewWriter(out)

	cols := ds.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvexport: write header: %w", err)
	}

	record := make([]string, len(cols))
	for i := 0; i < ds.Len(); i++ {
		for j, v := range ds.Row(i) {
			record[j] = formatCell(cols[j].Type, v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvexport: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvexport: flush: %w", err)
	}
	return nil
}

// formatCell は列型に従ってセルを文字列化します。
func formatCell(typ workforce.ColumnType, v any) string {
	switch typ {
	case workforce.ColumnDate:
		if t, ok := v.(time.Time); ok {
			return workforce.FormatDate(t)
		}
	case workforce.ColumnInt:
		if n, ok := v.(int); ok {
			return strconv.Itoa(n)
		}
	case workforce.ColumnMoney:
		if m, ok := v.(workforce.Money); ok {
			return m.String()
		}
	case workforce.ColumnString:
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fmt.Sprint(v)
}
