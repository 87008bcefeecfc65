package export

import (
	"strconv"
	"strings"

	"github.com/shenikar/fire_ops_system/internal/models"
)

// FireDuesReport - сборы с адресами и владельцами
func FireDuesReport(rows []models.FireDueWithDetails) Table {
	t := Table{Headers: []string{"Parcel ID", "Address", "Owner", "Year", "Amount", "Status", "Payment Date"}}
	for _, d := range rows {
		t.Rows = append(t.Rows, []string{
			d.ParcelID,
			d.Address,
			d.OwnerName,
			strconv.Itoa(d.Year),
			Money(d.Amount),
			d.Status,
			datePtr(d.PaymentDate),
		})
	}
	return t
}

// IncidentsReport - список отчетов NFIRS
func IncidentsReport(incidents []models.Incident) Table {
	t := Table{Headers: []string{"Incident Number", "Date", "Type", "Address", "Status", "Personnel", "Apparatus", "Property Loss"}}
	for _, inc := range incidents {
		t.Rows = append(t.Rows, []string{
			inc.IncidentNumber,
			date(inc.Date),
			inc.Type,
			inc.Address,
			inc.Status,
			strconv.Itoa(len(inc.RespondingPersonnelIDs)),
			strconv.Itoa(len(inc.RespondingApparatusIDs)),
			Money(inc.Modules.Basic.PropertyLoss),
		})
	}
	return t
}

// InvoicesReport - счета за выезды
func InvoicesReport(invoices []models.Invoice) Table {
	t := Table{Headers: []string{"Invoice Number", "Incident ID", "Property ID", "Issued", "Due", "Paid", "Total", "Status", "Items"}}
	for _, inv := range invoices {
		items := make([]string, 0, len(inv.LineItems))
		for _, li := range inv.LineItems {
			items = append(items, li.Description)
		}
		t.Rows = append(t.Rows, []string{
			inv.InvoiceNumber,
			inv.IncidentID,
			inv.PropertyID,
			date(inv.IssuedDate),
			date(inv.DueDate),
			datePtr(inv.PaidDate),
			Money(inv.TotalAmount),
			inv.Status,
			strings.Join(items, "; "),
		})
	}
	return t
}
