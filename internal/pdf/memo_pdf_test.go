package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealpipeline/internal/models"
	"dealpipeline/internal/pdf"
)

func TestRenderMemo(t *testing.T) {
	gen := pdf.NewMemoGenerator("Test Capital")
	deal := &models.Deal{ID: 9, Name: "Acme", Stage: models.StageDiligence}
	memo := &models.Memo{
		ID:     3,
		DealID: 9,
		MemoFields: models.MemoFields{
			Summary: "Strong founding team in a growing market.",
			Risks:   "Single large customer.",
		},
		CreatedAt: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	data, filename, err := gen.RenderMemo(deal, memo)
	require.NoError(t, err)
	require.Equal(t, "memo_deal_9.pdf", filename)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderMemoEmptySections(t *testing.T) {
	gen := pdf.NewMemoGenerator("")
	deal := &models.Deal{ID: 1, Name: "Bare", Stage: models.StageSourced}
	memo := &models.Memo{ID: 1, DealID: 1, CreatedAt: time.Now()}

	data, _, err := gen.RenderMemo(deal, memo)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
