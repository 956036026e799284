package infra

import (
	"bytes"
	"fmt"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"

	"github.com/go-pdf/fpdf"
)

// RenderInvoicePDF renders an A4 invoice for one sale: header block, item
// table, bold total. The caller serves it as Facture_<invoice_number>.pdf.
func RenderInvoicePDF(sale *dto.SaleDetailResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "FACTURE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, sale.InvoiceNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Date : "+sale.Date, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Caissier : "+sale.Cashier, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Client : "+sale.Customer, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.46 // product
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.20 // line total

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(col1, 8, "Produit", "1", 0, "L", true, 0, "")
	pdf.CellFormat(col2, 8, "Qté", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col3, 8, "Prix unitaire", "1", 0, "R", true, 0, "")
	pdf.CellFormat(col4, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range sale.Items {
		pdf.CellFormat(col1, 7, item.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 7, item.UnitPrice+" €", "1", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 7, item.LineTotal+" €", "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 9, "TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 9, sale.TotalAmount+" €", "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 5, "Merci de votre confiance.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
