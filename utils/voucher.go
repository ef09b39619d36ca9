package utils

import (
	"bytes"
	"fmt"

	"hotel-admin-backend/models"

	"github.com/phpdave11/gofpdf"
)

const voucherDateLayout = "02/01/2006"

// BuildReservationVoucher renders the printable confirmation for one
// reservation.
func BuildReservationVoucher(res models.Reservation) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Comprobante de Reserva"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Referencia: %s", res.CodigoReferencia)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(value), "", 1, "L", false, 0, "")
	}

	row("Huésped:", res.NombreHuesped)
	row("Habitación:", res.NombreHabitacion)
	row("Entrada:", res.FechaEntrada.Format(voucherDateLayout))
	row("Salida:", res.FechaSalida.Format(voucherDateLayout))
	row("Noches:", fmt.Sprintf("%d", res.NumeroNoches))
	row("Huéspedes:", fmt.Sprintf("%d", res.NumeroHuespedes))
	row("Estado:", res.Estado)
	pdf.Ln(4)
	row("Precio por noche:", fmt.Sprintf("$ %.2f", res.PrecioPorNoche))
	row("Precio total:", fmt.Sprintf("$ %.2f", res.PrecioTotal))

	if res.Observaciones != nil && *res.Observaciones != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, tr("Observaciones:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(*res.Observaciones), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render voucher: %w", err)
	}
	return &buf, nil
}
