package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"dealpipeline/internal/models"
)

// Generator renders memos as PDF documents.
type Generator interface {
	RenderMemo(deal *models.Deal, memo *models.Memo) ([]byte, string, error)
}

type MemoGenerator struct {
	firmName string
}

func NewMemoGenerator(firmName string) *MemoGenerator {
	if firmName == "" {
		firmName = "Deal Pipeline"
	}
	return &MemoGenerator{firmName: firmName}
}

// RenderMemo produces the PDF bytes and a suggested filename.
func (g *MemoGenerator) RenderMemo(deal *models.Deal, memo *models.Memo) ([]byte, string, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Investment Memo - %s", deal.Name), true)
	doc.SetAuthor(g.firmName, false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Investment Memo", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("%s  |  stage: %s  |  %s", deal.Name, deal.Stage, memo.CreatedAt.Format("02 Jan 2006"))
	doc.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(doc)

	sections := []struct {
		title string
		body  string
	}{
		{"Summary", memo.Summary},
		{"Market", memo.Market},
		{"Product", memo.Product},
		{"Traction", memo.Traction},
		{"Risks", memo.Risks},
		{"Open Questions", memo.OpenQuestions},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		doc.SetFont("Helvetica", "B", 13)
		doc.CellFormat(0, 8, s.title, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 5.5, s.body, "", "L", false)
		doc.Ln(3)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render memo pdf: %w", err)
	}
	filename := fmt.Sprintf("memo_deal_%d.pdf", deal.ID)
	return buf.Bytes(), filename, nil
}

func (g *MemoGenerator) hr(doc *gofpdf.Fpdf) {
	doc.Ln(2)
	x, y := doc.GetXY()
	pageW, _ := doc.GetPageSize()
	doc.SetDrawColor(120, 120, 120)
	doc.Line(x, y, pageW-20, y)
	doc.Ln(4)
}
