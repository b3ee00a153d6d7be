package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"pma_workorders/internal/domain/entities"
	"pma_workorders/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	companyName    = "AIRSONIC MECHANICAL INC."
	companyTagline = "Residential & Commercial HVAC Services"

	pageWidth  = 210.0 // A4 portrait, mm
	marginSide = 10.0
	contentW   = pageWidth - 2*marginSide
)

// docTable is a bordered table with one row per input entry, order preserved.
type docTable struct {
	Headers []string
	Widths  []float64
	Rows    [][]string
}

// docSection is one block of the printed work order: labeled fields, a
// free-text body, or a table.
type docSection struct {
	Title  string
	Fields [][2]string
	Text   string
	Table  *docTable
}

// PDFRenderer renders a work order into a paginated A4 PDF. It is a pure
// function of the record and the supplied clock; long text wraps and grows
// the document onto additional pages.
type PDFRenderer struct{}

var _ interfaces.IWorkOrderExporter = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// buildSections assembles the printable blocks in their fixed order.
// Comments and recommendations are omitted entirely when empty, as are the
// materials and hours tables.
func buildSections(wo entities.WorkOrder) []docSection {
	sections := []docSection{
		{
			Title: "Customer Information",
			Fields: [][2]string{
				{"Customer ID", wo.CustomerID},
				{"Customer Name", wo.CustomerName},
				{"Address", wo.Address},
			},
		},
		{
			Title: "Service Information",
			Fields: [][2]string{
				{"Type of PMA", wo.PMAType},
				{"Date", wo.Date},
				{"Overall Condition", string(wo.OverallCondition)},
				{"Indoor Air Quality", string(wo.IndoorAirQuality)},
			},
		},
	}

	if wo.Comments != "" {
		sections = append(sections, docSection{Title: "Comments", Text: wo.Comments})
	}
	if wo.Recommendations != "" {
		sections = append(sections, docSection{Title: "Recommendations", Text: wo.Recommendations})
	}

	sections = append(sections, docSection{
		Title: "Status",
		Fields: [][2]string{
			{"Immediate Attention Required", yesNo(wo.ImmediateAttentionRequired)},
			{"Recommendation to Follow", yesNo(wo.RecommendationToFollow)},
		},
	})

	if len(wo.Materials) > 0 {
		rows := make([][]string, 0, len(wo.Materials))
		for _, m := range wo.Materials {
			rows = append(rows, []string{m.Source, strconv.Itoa(m.Qty), m.Description, m.PO})
		}
		sections = append(sections, docSection{
			Title: "Materials / Miscellaneous",
			Table: &docTable{
				Headers: []string{"Source", "QTY", "Description", "PO"},
				Widths:  []float64{40, 15, 95, 40},
				Rows:    rows,
			},
		})
	}

	if len(wo.Hours) > 0 {
		rows := make([][]string, 0, len(wo.Hours))
		for _, h := range wo.Hours {
			rows = append(rows, []string{
				h.Date,
				strconv.Itoa(h.Hours),
				strconv.Itoa(h.OT),
				strconv.Itoa(h.RT),
				strconv.Itoa(h.Parking),
				h.Tech,
				h.Initial,
			})
		}
		sections = append(sections, docSection{
			Title: "Hours Worked",
			Table: &docTable{
				Headers: []string{"Date", "Hours", "OT", "RT", "Parking", "Tech", "Initial"},
				Widths:  []float64{28, 18, 15, 15, 22, 62, 30},
				Rows:    rows,
			},
		})
	}

	return sections
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func (r *PDFRenderer) Render(wo entities.WorkOrder, now time.Time) ([]byte, error) {
	code := wo.WorkOrderID
	if code == "" {
		code = wo.ID
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Work Order %s", code), true)
	pdf.SetMargins(marginSide, 12, marginSide)
	pdf.SetAutoPageBreak(true, 22)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetFont("Arial", "", 7)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentW, 4,
			fmt.Sprintf("Generated on %s | Work Order ID: %s", now.Format("2006-01-02"), code),
			"", 1, "C", false, 0, "")
		pdf.CellFormat(contentW, 4,
			fmt.Sprintf("%s | %s", companyName, companyTagline),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	r.drawHeader(pdf, code)

	for _, s := range buildSections(wo) {
		r.drawSection(pdf, s)
	}

	r.drawSignatures(pdf, wo, now)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) drawHeader(pdf *gofpdf.Fpdf, code string) {
	// Branded band.
	pdf.SetFillColor(220, 20, 60)
	pdf.Rect(0, 0, pageWidth, 24, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(marginSide, 6)
	pdf.CellFormat(contentW, 8, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetX(marginSide)
	pdf.CellFormat(contentW, 5, companyTagline, "", 1, "C", false, 0, "")

	// QR of the work-order code for paper-to-record lookup.
	if code != "" {
		if png, err := qrcode.Encode(code, qrcode.Low, 256); err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
			pdf.RegisterImageOptionsReader("workorder_qr", opts, bytes.NewReader(png))
			pdf.ImageOptions("workorder_qr", pageWidth-marginSide-18, 28, 18, 18, false, opts, 0, "")
		}
	}

	pdf.SetXY(marginSide, 30)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(contentW, 7, "PMA WORK ORDER", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Work Order ID: %s", code), "", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func (r *PDFRenderer) drawSection(pdf *gofpdf.Fpdf, s docSection) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetX(marginSide)
	pdf.CellFormat(contentW, 7, s.Title, "", 1, "L", true, 0, "")
	pdf.Ln(1)

	for _, f := range s.Fields {
		pdf.SetX(marginSide)
		pdf.SetFont("Arial", "B", 8)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(55, 5, f[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(contentW-55, 5, f[1], "", "L", false)
	}

	if s.Text != "" {
		pdf.SetX(marginSide)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(contentW, 5, s.Text, "", "L", false)
	}

	if s.Table != nil {
		r.drawTable(pdf, s.Table)
	}

	pdf.Ln(4)
}

func (r *PDFRenderer) drawTable(pdf *gofpdf.Fpdf, t *docTable) {
	pdf.SetX(marginSide)
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(220, 20, 60)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Headers {
		pdf.CellFormat(t.Widths[i], 6, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range t.Rows {
		pdf.SetX(marginSide)
		for i, cell := range row {
			pdf.CellFormat(t.Widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (r *PDFRenderer) drawSignatures(pdf *gofpdf.Fpdf, wo entities.WorkOrder, now time.Time) {
	// Keep both signature blocks on one page.
	if pdf.GetY() > 240 {
		pdf.AddPage()
	}
	pdf.Ln(12)

	colW := contentW / 2
	y := pdf.GetY()

	pdf.Line(marginSide+8, y, marginSide+colW-8, y)
	pdf.Line(marginSide+colW+8, y, pageWidth-marginSide-8, y)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(marginSide, y+1)
	pdf.CellFormat(colW, 4, "Customer Signature", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 4, "Technician Signature", "", 1, "C", false, 0, "")

	tech := wo.AuthorizedBy
	if tech == "" {
		tech = "_______________"
	}
	pdf.SetX(marginSide)
	pdf.CellFormat(colW, 4, fmt.Sprintf("Date: %s", now.Format("2006-01-02")), "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 4, fmt.Sprintf("Tech: %s", tech), "", 1, "C", false, 0, "")
}
