package payslip

import (
	"bytes"
	"fmt"
	"strings"
)

type pdfLine struct {
	Label string
	Value string
}

func payslipDocument(row FinalizedPayroll) []pdfLine {
	return []pdfLine{
		{"PERIOD", fmt.Sprintf("%s - %s", row.StartDate, row.EndDate)},
		{"EMPLOYEE NUMBER", row.EmployeeNumber},
		{"NAME", row.Name},
		{"GROSS SALARY", amount(row.GrossSalary)},
		{"ABS", amount(row.Abs)},
		{"WITHHOLDING TAX", amount(row.WithholdingTax)},
		{"PERSONAL LIFE RET INS", amount(row.PersonalLifeRetIns)},
		{"GSIS SALARY LOAN", amount(row.GsisSalaryLoan)},
		{"GSIS POLICY LOAN", amount(row.GsisPolicyLoan)},
		{"GSIS ARREARS", amount(row.GsisArrears)},
		{"CPL", amount(row.Cpl)},
		{"MPL", amount(row.Mpl)},
		{"MPL LITE", amount(row.MplLite)},
		{"PAG-IBIG FUND CONT", amount(row.PagibigFundCont)},
		{"PHILHEALTH", amount(row.PhilHealthCont)},
		{"PAG-IBIG 2", amount(row.Pagibig2)},
		{"FEU", amount(row.Feu)},
		{"TOTAL DEDUCTIONS", amount(row.TotalDeductions)},
		{"NET SALARY", amount(row.NetSalary)},
		{"1ST QUINCENA", amount(row.Pay1st)},
		{"2ND QUINCENA", amount(row.Pay2nd)},
	}
}

func amount(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *v)
}

// buildPayslipPDF writes a one-page label/value payslip as a minimal
// PDF 1.4 document, avoiding a PDF library for a layout this small.
func buildPayslipPDF(lines []pdfLine) ([]byte, error) {
	var text strings.Builder
	text.WriteString("BT\n/F1 14 Tf\n16 TL\n50 792 Td\n(PAYSLIP) Tj\n")
	text.WriteString("/F1 10 Tf\nT*\n")
	for _, line := range lines {
		text.WriteString(fmt.Sprintf("T* (%s) Tj\n", escapeText(line.Label)))
		text.WriteString(fmt.Sprintf("230 0 Td (%s) Tj\n-230 0 Td\n", escapeText(line.Value)))
	}
	text.WriteString("ET")

	stream := text.String()

	var doc bytes.Buffer
	doc.WriteString("%PDF-1.4\n")

	offsets := []int{0}
	writeObj := func(body string) {
		offsets = append(offsets, doc.Len())
		doc.WriteString(body)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	writeObj("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")
	writeObj(fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))

	xref := doc.Len()
	doc.WriteString(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(offsets)))
	for _, off := range offsets[1:] {
		doc.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	doc.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xref))

	return doc.Bytes(), nil
}

func escapeText(v string) string {
	return strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)").Replace(v)
}
