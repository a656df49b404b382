package payroll

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"motorph/internal/domain/employee"
	cryptoutil "motorph/internal/platform/crypto"
)

// PDFRenderer draws payslips and optionally archives them, encrypted when a
// data key is configured.
type PDFRenderer struct {
	ArchiveDir string
	Crypto     *cryptoutil.Service
}

func NewPDFRenderer(archiveDir string, crypto *cryptoutil.Service) *PDFRenderer {
	return &PDFRenderer{ArchiveDir: archiveDir, Crypto: crypto}
}

// Render draws the payslip for result. period labels the pay period and may be empty.
func (r *PDFRenderer) Render(e *employee.Employee, result Result, period string) ([]byte, error) {
	if e == nil {
		return nil, ErrNilEmployee
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+e.FullName(), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, CompanyName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (#%d)", e.FullName(), e.ID()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", e.Position()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", e.Department()))
	pdf.Ln(7)
	if period != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Basis: %s (%s hours)", result.Basis, FormatAmount(result.Hours)))
	pdf.Ln(10)

	lines := []struct {
		label  string
		amount float64
	}{
		{"Basic Pay", result.BasicPay},
		{"Rice Subsidy", e.RiceSubsidy()},
		{"Phone Allowance", e.PhoneAllowance()},
		{"Clothing Allowance", e.ClothingAllowance()},
		{"Gross Salary", result.Gross},
		{"SSS", result.Breakdown.SSS},
		{"PhilHealth", result.Breakdown.PhilHealth},
		{"Pag-IBIG", result.Breakdown.PagIBIG},
		{"Withholding Tax", result.Breakdown.WithholdingTax},
		{"Total Deductions", result.TotalDeductions},
		{"Net Salary", result.Net},
	}
	for _, line := range lines {
		pdf.CellFormat(80, 8, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, FormatAmount(line.amount), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive writes data under ArchiveDir and returns the file path. It is a
// no-op returning "" when no directory is configured.
func (r *PDFRenderer) Archive(employeeID int, data []byte, now time.Time) (string, error) {
	if r.ArchiveDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(r.ArchiveDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(r.ArchiveDir, fmt.Sprintf("%d-%s.pdf", employeeID, now.UTC().Format("20060102T150405")))

	if r.Crypto != nil && r.Crypto.Configured() {
		encrypted, err := r.Crypto.Encrypt(data)
		if err != nil {
			return "", err
		}
		filePath += ".enc"
		if err := os.WriteFile(filePath, encrypted, 0o600); err != nil {
			return "", err
		}
		return filePath, nil
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}
