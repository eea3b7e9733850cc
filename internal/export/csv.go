// Package export serializes the account collection to a spreadsheet-friendly
// CSV file: header row, RFC 4180 quoting, CRLF line endings and a UTF-8 BOM
// so Excel detects the encoding.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appdate/appdate/internal/models"
)

// Header is the fixed CSV header row.
var Header = []string{"Name", "Email", "DateOfBirth", "Course", "Password"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write serializes the full account collection to w.
func Write(w io.Writer, accounts []models.Account) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, a := range accounts {
		record := []string{a.Name, a.Email, a.DOB, a.Course, a.Password}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the collection to path, creating parent directories as
// needed. The file is rewritten whole on every call.
func WriteFile(path string, accounts []models.Account) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, accounts); err != nil {
		return err
	}
	return f.Close()
}

// Read parses an exported account collection, tolerating a leading BOM and a
// missing header row.
func Read(r io.Reader) ([]models.Account, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = len(Header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	accounts := []models.Account{}
	for i, rec := range records {
		if i == 0 && rec[0] == Header[0] {
			continue
		}
		accounts = append(accounts, models.Account{
			Name:     rec[0],
			Email:    rec[1],
			DOB:      rec[2],
			Course:   rec[3],
			Password: rec[4],
		})
	}
	return accounts, nil
}

// ReadFile reads an exported collection from path.
func ReadFile(path string) ([]models.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
